// Package dihedral defines the public transform vocabulary and the
// two-generator algebra underpinning sequence reduction.
package dihedral

import (
	"fmt"
	"strings"
)

// Transform is one of the five user-facing image operations.
// Values are immutable and stateless; sequences of them are the unit
// of work for Reduce and for pixgrid.Apply.
type Transform int

const (
	// FlipHorizontal mirrors the image left-to-right (about the vertical axis).
	FlipHorizontal Transform = iota
	// FlipVertical mirrors the image top-to-bottom (about the horizontal axis).
	FlipVertical
	// RotateLeft rotates the image 90° counterclockwise.
	RotateLeft
	// Rotate180 rotates the image 180°.
	Rotate180
	// RotateRight rotates the image 90° clockwise.
	RotateRight

	numTransforms
)

// transformNames holds the canonical spelling for each Transform.
var transformNames = [numTransforms]string{
	FlipHorizontal: "FlipHorizontal",
	FlipVertical:   "FlipVertical",
	RotateLeft:     "RotateLeft",
	Rotate180:      "Rotate180",
	RotateRight:    "RotateRight",
}

// String returns the canonical name of t, or a diagnostic form for
// out-of-range values.
func (t Transform) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Transform(%d)", int(t))
	}
	return transformNames[t]
}

// Valid reports whether t is one of the five recognized transforms.
func (t Transform) Valid() bool {
	return t >= 0 && t < numTransforms
}

// Transforms returns all five transforms in a fresh slice, in declaration order.
func Transforms() []Transform {
	return []Transform{FlipHorizontal, FlipVertical, RotateLeft, Rotate180, RotateRight}
}

// ParseTransform resolves a textual name to a Transform. Matching is
// case-insensitive and ignores "-" and "_", so "rotate-left",
// "ROTATE_LEFT" and "RotateLeft" all resolve to RotateLeft.
// Unrecognized names return ErrUnknownTransform.
func ParseTransform(name string) (Transform, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for t, canonical := range transformNames {
		if norm == strings.ToLower(canonical) {
			return Transform(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
}

// Generator is one of the two primitive operations generating the full
// dihedral group of the square under composition.
type Generator int

const (
	// Flip reflects about the horizontal axis (top-bottom mirror).
	Flip Generator = iota
	// Rotate rotates 90° clockwise.
	Rotate

	numGenerators
)

// String returns the generator's name, or a diagnostic form for
// out-of-range values.
func (g Generator) String() string {
	switch g {
	case Flip:
		return "Flip"
	case Rotate:
		return "Rotate"
	default:
		return fmt.Sprintf("Generator(%d)", int(g))
	}
}

// Valid reports whether g is Flip or Rotate.
func (g Generator) Valid() bool {
	return g >= 0 && g < numGenerators
}
