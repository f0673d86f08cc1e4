package dihedral

import "errors"

var (
	// ErrUnknownTransform indicates a Transform value outside the five recognized names.
	ErrUnknownTransform = errors.New("dihedral: unknown transform")
	// ErrUnknownGenerator indicates a Generator value other than Flip or Rotate.
	ErrUnknownGenerator = errors.New("dihedral: unknown generator")
	// ErrSequenceTooLong indicates a table lookup outside the length ≤ 4 domain;
	// the reduction engine's windowing guarantees this never happens internally.
	ErrSequenceTooLong = errors.New("dihedral: sequence exceeds table lookup domain")
	// ErrNotCanonical indicates Contract was given a sequence that is not one of
	// the eight canonical forms.
	ErrNotCanonical = errors.New("dihedral: sequence is not a canonical form")
)
