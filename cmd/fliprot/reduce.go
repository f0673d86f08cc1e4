package main

import (
	"github.com/spf13/cobra"

	"github.com/fliprot/fliprot/dihedral"
)

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <transform>...",
		Short: "Print the shortest equivalent transform chain",
		Example: `  fliprot reduce rotate-right rotate-right rotate-right
  fliprot reduce flip-vertical rotate-right rotate-right`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args)
			if err != nil {
				return err
			}
			reduced, err := dihedral.Reduce(seq)
			if err != nil {
				return err
			}
			logger.Info("reduced", "in", len(seq), "out", len(reduced))
			cmd.Println(formatSequence(reduced))
			return nil
		},
	}
}
