package dihedral_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fliprot/fliprot/dihedral"
)

//----------------------------------------------------------------------------//
// Reference model: generators acting on a tiny byte matrix
//----------------------------------------------------------------------------//

// rot90 returns m rotated 90° clockwise (m is row-major, m[y][x]).
func rot90(m [][]byte) [][]byte {
	h, w := len(m), len(m[0])
	out := make([][]byte, w)
	for y := range out {
		out[y] = make([]byte, h)
		for x := range out[y] {
			out[y][x] = m[h-1-x][y]
		}
	}
	return out
}

// flipTB returns m mirrored top-to-bottom.
func flipTB(m [][]byte) [][]byte {
	h := len(m)
	out := make([][]byte, h)
	for y := range out {
		out[y] = append([]byte(nil), m[h-1-y]...)
	}
	return out
}

// applyGenerators folds seq over an asymmetric 3×3 matrix and returns
// the result; two sequences compose to the same group element iff they
// produce equal matrices.
func applyGenerators(seq []dihedral.Generator) [][]byte {
	m := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	for _, g := range seq {
		switch g {
		case dihedral.Flip:
			m = flipTB(m)
		case dihedral.Rotate:
			m = rot90(m)
		}
	}
	return m
}

//----------------------------------------------------------------------------//
// ReduceBase
//----------------------------------------------------------------------------//

// TestReduceBase_BruteForce checks, for every generator sequence of
// length 0–10 (2047 sequences), that the reduced form acts identically
// on the reference matrix and is one of the eight canonical forms.
func TestReduceBase_BruteForce(t *testing.T) {
	for _, seq := range genSequencesUpTo(10) {
		reduced, err := dihedral.ReduceBase(seq)
		require.NoError(t, err, "ReduceBase(%v)", seq)
		assert.LessOrEqual(t, len(reduced), 3, "canonical forms have length ≤ 3")
		if !reflect.DeepEqual(applyGenerators(seq), applyGenerators(reduced)) {
			t.Fatalf("ReduceBase(%v) = %v changes the group element", seq, reduced)
		}
	}
}

// TestReduceBase_Identities verifies a few identities directly.
func TestReduceBase_Identities(t *testing.T) {
	f, r := dihedral.Flip, dihedral.Rotate

	eightTurns := make([]dihedral.Generator, 8)
	for i := range eightTurns {
		eightTurns[i] = r
	}
	reduced, err := dihedral.ReduceBase(eightTurns)
	require.NoError(t, err)
	assert.Empty(t, reduced, "eight quarter turns are the identity")

	reduced, err = dihedral.ReduceBase([]dihedral.Generator{f, f, f, f, f, f, f})
	require.NoError(t, err)
	assert.Equal(t, []dihedral.Generator{f}, reduced, "odd number of flips is one flip")
}

// TestReduceBase_UnknownGenerator verifies boundary validation.
func TestReduceBase_UnknownGenerator(t *testing.T) {
	_, err := dihedral.ReduceBase([]dihedral.Generator{dihedral.Rotate, -1})
	assert.ErrorIs(t, err, dihedral.ErrUnknownGenerator)
}

//----------------------------------------------------------------------------//
// Reduce
//----------------------------------------------------------------------------//

// TestReduce_Scenarios pins down the headline equivalences.
func TestReduce_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []dihedral.Transform
		want []dihedral.Transform
	}{
		{
			"ThreeRightsMakeALeft",
			[]dihedral.Transform{dihedral.RotateRight, dihedral.RotateRight, dihedral.RotateRight},
			[]dihedral.Transform{dihedral.RotateLeft},
		},
		{
			"FlipVerticalPlusHalfTurn",
			[]dihedral.Transform{dihedral.FlipVertical, dihedral.RotateRight, dihedral.RotateRight},
			[]dihedral.Transform{dihedral.FlipHorizontal},
		},
		{
			"AlternatingCancelsOut",
			[]dihedral.Transform{dihedral.RotateRight, dihedral.FlipVertical, dihedral.RotateRight, dihedral.FlipVertical},
			[]dihedral.Transform{},
		},
		{
			"Empty",
			[]dihedral.Transform{},
			[]dihedral.Transform{},
		},
		{
			"FullCircle",
			repeat(dihedral.RotateRight, 8),
			[]dihedral.Transform{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dihedral.Reduce(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// repeat builds a sequence of n copies of t.
func repeat(t dihedral.Transform, n int) []dihedral.Transform {
	out := make([]dihedral.Transform, n)
	for i := range out {
		out[i] = t
	}
	return out
}

// TestReduce_LengthBoundAndIdempotence verifies, on random transform
// sequences up to length 24, that reduction yields ≤ 3 transforms and
// reducing twice changes nothing.
func TestReduce_LengthBoundAndIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	all := dihedral.Transforms()
	for trial := 0; trial < 500; trial++ {
		seq := make([]dihedral.Transform, rng.Intn(25))
		for i := range seq {
			seq[i] = all[rng.Intn(len(all))]
		}
		once, err := dihedral.Reduce(seq)
		require.NoError(t, err, "Reduce(%v)", seq)
		assert.LessOrEqual(t, len(once), 3, "Reduce(%v) = %v", seq, once)

		twice, err := dihedral.Reduce(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "Reduce must be idempotent on %v", seq)
	}
}

// TestReduce_PreservesGroupElement exhaustively checks every transform
// sequence of length 0–4 (781 sequences) against the reference matrix.
func TestReduce_PreservesGroupElement(t *testing.T) {
	var recurse func(prefix []dihedral.Transform, depth int)
	recurse = func(prefix []dihedral.Transform, depth int) {
		reduced, err := dihedral.Reduce(prefix)
		require.NoError(t, err)
		if !reflect.DeepEqual(applyTransformsToMatrix(prefix), applyTransformsToMatrix(reduced)) {
			t.Fatalf("Reduce(%v) = %v changes the group element", prefix, reduced)
		}
		if depth == 0 {
			return
		}
		for _, tr := range dihedral.Transforms() {
			next := make([]dihedral.Transform, 0, len(prefix)+1)
			next = append(next, prefix...)
			recurse(append(next, tr), depth-1)
		}
	}
	recurse(nil, 4)
}

// applyTransformsToMatrix expands a transform sequence and folds it over
// the reference matrix.
func applyTransformsToMatrix(seq []dihedral.Transform) [][]byte {
	var base []dihedral.Generator
	for _, tr := range seq {
		exp, err := dihedral.Expand(tr)
		if err != nil {
			panic(err)
		}
		base = append(base, exp...)
	}
	return applyGenerators(base)
}

// TestReduce_UnknownTransform verifies rejection at the API boundary.
func TestReduce_UnknownTransform(t *testing.T) {
	_, err := dihedral.Reduce([]dihedral.Transform{dihedral.RotateLeft, dihedral.Transform(99)})
	assert.ErrorIs(t, err, dihedral.ErrUnknownTransform)
}
