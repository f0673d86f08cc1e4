// Command fliprot reduces chains of square-image flips and rotations to
// their shortest equivalent and demonstrates the result on real pixels.
package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fliprot/fliprot/dihedral"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "fliprot",
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fliprot",
		Short: "Canonicalize chains of square-image flips and rotations",
		Long: `fliprot rewrites any chain of the five image transforms
(flip-horizontal, flip-vertical, rotate-left, rotate-180, rotate-right)
to the shortest chain with the exact same visual effect — never more
than three transforms, pixel-identical on every image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReduceCmd(), newRenderCmd(), newDemoCmd())
	return root
}

// parseSequence resolves CLI arguments to transforms, accepting the
// spellings dihedral.ParseTransform recognizes.
func parseSequence(args []string) ([]dihedral.Transform, error) {
	seq := make([]dihedral.Transform, 0, len(args))
	for _, arg := range args {
		t, err := dihedral.ParseTransform(arg)
		if err != nil {
			return nil, err
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// formatSequence spells a transform chain for terminal output.
func formatSequence(seq []dihedral.Transform) string {
	if len(seq) == 0 {
		return "(identity — no transforms needed)"
	}
	names := make([]string, len(seq))
	for i, t := range seq {
		names[i] = t.String()
	}
	return strings.Join(names, " → ")
}
