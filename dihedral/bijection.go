package dihedral

import "fmt"

// expansions spells each transform in generators. Fixed data, never
// computed: RotateRight is the rotation generator itself, FlipVertical
// the flip generator, and the rest are their shortest compositions.
var expansions = [numTransforms][]Generator{
	FlipHorizontal: {f, r, r},
	FlipVertical:   {f},
	RotateLeft:     {r, r, r},
	Rotate180:      {r, r},
	RotateRight:    {r},
}

// richForms spells each canonical generator form back in transforms,
// indexed by class identifier. Together with expansions this is the
// two-way seam between the five-name public vocabulary and the
// two-generator algebra; both directions are enumerated exhaustively.
var richForms = [numClasses][]Transform{
	classID:  {},
	classR:   {RotateRight},
	classF:   {FlipVertical},
	classR2:  {Rotate180},
	classRF:  {RotateRight, FlipVertical},
	classFR:  {FlipVertical, RotateRight},
	classR3:  {RotateLeft},
	classFR2: {FlipHorizontal},
}

// Expand rewrites a single transform as its fixed generator expansion.
// Returns ErrUnknownTransform for values outside the five names.
func Expand(t Transform) ([]Generator, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTransform, t)
	}
	exp := expansions[t]
	out := make([]Generator, len(exp))
	copy(out, exp)
	return out, nil
}

// Contract rewrites a canonical generator sequence as its equivalent
// transform sequence. Only the eight canonical forms (the class
// representatives, empty sequence included) are valid input; anything
// else returns ErrNotCanonical.
func Contract(seq []Generator) ([]Transform, error) {
	if err := validGenerators(seq); err != nil {
		return nil, err
	}
	if len(seq) > maxWindow {
		return nil, fmt.Errorf("%w: length %d", ErrNotCanonical, len(seq))
	}
	key := packKey(seq)
	id := classOf[key]
	if packKey(classes[id][0]) != key {
		return nil, fmt.Errorf("%w: %v", ErrNotCanonical, seq)
	}
	rich := richForms[id]
	out := make([]Transform, len(rich))
	copy(out, rich)
	return out, nil
}
