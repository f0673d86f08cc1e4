package dihedral

import "fmt"

// ReduceBase rewrites a generator sequence of any length to the
// canonical representative of its equivalence class.
//
// Algorithm:
//
//	While more than four generators remain, replace the leading four
//	with their class representative and keep the tail. Representatives
//	of nonempty classes have length ≤ 3, so every pass removes at least
//	one generator and termination is guaranteed. A final table lookup
//	canonicalizes the remainder.
//
// The result always composes to the same group element as the input and
// is one of the eight canonical forms. The input is never mutated.
// Returns ErrUnknownGenerator if seq contains out-of-range values.
func ReduceBase(seq []Generator) ([]Generator, error) {
	if err := validGenerators(seq); err != nil {
		return nil, err
	}
	cur := make([]Generator, len(seq))
	copy(cur, seq)
	for len(cur) > maxWindow {
		rep := classes[classOf[packKey(cur[:maxWindow])]][0]
		next := make([]Generator, 0, len(rep)+len(cur)-maxWindow)
		next = append(next, rep...)
		next = append(next, cur[maxWindow:]...)
		cur = next
	}
	rep := classes[classOf[packKey(cur)]][0]
	out := make([]Generator, len(rep))
	copy(out, rep)
	return out, nil
}

// Reduce rewrites a transform sequence to the shortest equivalent one.
//
// Pipeline: expand every transform to generators, reduce the
// concatenation to its canonical form, contract back to transforms.
//
// Guarantees:
//
//   - len(result) ≤ 3 for input of any length;
//   - applying result to any image is pixel-identical to applying seq;
//   - Reduce is idempotent: Reduce(Reduce(seq)) == Reduce(seq).
//
// The only possible failure is ErrUnknownTransform for values outside
// the five names, rejected before reaching the algebra.
func Reduce(seq []Transform) ([]Transform, error) {
	base := make([]Generator, 0, maxExpansion*len(seq))
	for _, t := range seq {
		exp, err := Expand(t)
		if err != nil {
			return nil, err
		}
		base = append(base, exp...)
	}
	canonical, err := ReduceBase(base)
	if err != nil {
		return nil, err
	}
	out, err := Contract(canonical)
	if err != nil {
		// Unreachable if the class table is consistent; surfaced loudly
		// rather than coerced so a table regression cannot hide.
		return nil, fmt.Errorf("dihedral: reduction produced a non-canonical form: %w", err)
	}
	return out, nil
}

// maxExpansion is the longest generator expansion of a single transform.
const maxExpansion = 3
