package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fliprot/fliprot/dihedral"
	"github.com/fliprot/fliprot/pixgrid"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestReduceCmd runs the headline scenario end to end.
func TestReduceCmd(t *testing.T) {
	out, err := execute(t, "reduce", "rotate-right", "rotate-right", "rotate-right")
	require.NoError(t, err)
	assert.Equal(t, "RotateLeft", strings.TrimSpace(out))
}

// TestReduceCmd_Identity prints the identity marker for a cancelling chain.
func TestReduceCmd_Identity(t *testing.T) {
	out, err := execute(t, "reduce", "rotate-right", "flip-vertical", "rotate-right", "flip-vertical")
	require.NoError(t, err)
	assert.Contains(t, out, "identity")
}

// TestReduceCmd_UnknownName rejects bad input at the boundary.
func TestReduceCmd_UnknownName(t *testing.T) {
	_, err := execute(t, "reduce", "rotate-45")
	assert.ErrorIs(t, err, dihedral.ErrUnknownTransform)
}

// TestRenderCmd writes both PNGs from the built-in pattern.
func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	fullPath := filepath.Join(dir, "full.png")
	shortPath := filepath.Join(dir, "reduced.png")

	_, err := execute(t, "render",
		"--out-full", fullPath,
		"--out-reduced", shortPath,
		"rotate-left", "rotate-left", "flip-horizontal")
	require.NoError(t, err)

	full, err := pixgrid.LoadPNG(fullPath)
	require.NoError(t, err)
	short, err := pixgrid.LoadPNG(shortPath)
	require.NoError(t, err)
	assert.True(t, pixgrid.Equal(full, short), "saved renders must be pixel-identical")
}

// TestParseSequence maps names in order.
func TestParseSequence(t *testing.T) {
	seq, err := parseSequence([]string{"rotate180", "FlipVertical"})
	require.NoError(t, err)
	assert.Equal(t, []dihedral.Transform{dihedral.Rotate180, dihedral.FlipVertical}, seq)

	_, err = parseSequence([]string{"sideways"})
	assert.ErrorIs(t, err, dihedral.ErrUnknownTransform)
}

// TestDemoModel drives the TUI model directly: appends, reductions and
// reset behave like the external demo contract demands.
func TestDemoModel(t *testing.T) {
	img, err := pixgrid.TestPattern(8, 8)
	require.NoError(t, err)
	m := newDemoModel(img)

	press := func(key string) {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = next.(demoModel)
	}

	for i := 0; i < 3; i++ {
		press("r")
	}
	assert.Len(t, m.chain, 3)
	assert.Equal(t, []dihedral.Transform{dihedral.RotateLeft}, m.reduced)
	assert.True(t, pixgrid.Equal(m.fullImg, m.reducedImg),
		"both previews must render identically")

	view := m.View()
	assert.Contains(t, view, "All transformations (3)")
	assert.Contains(t, view, "Reduced (1)")

	// Reset clears the accumulated chain.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(demoModel)
	assert.Empty(t, m.chain)
	assert.Empty(t, m.reduced)
	assert.True(t, pixgrid.Equal(img, m.fullImg))
}
