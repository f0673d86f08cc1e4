// Package dihedral canonicalizes sequences of square-image isometries:
// any chain of flips and rotations is rewritten to the shortest chain
// with the exact same visual effect.
//
// What:
//
//   - Transform: the five user-facing operations (FlipHorizontal,
//     FlipVertical, RotateLeft, Rotate180, RotateRight).
//   - Generator: the two primitives (Flip, Rotate) whose compositions
//     form the dihedral group of the square — eight elements in total.
//   - Reduce: rewrites any []Transform to an equivalent sequence of at
//     most three transforms, pixel-identical on every image.
//   - ReduceBase / Representative: the underlying generator-level
//     reduction against a precomputed equivalence-class table.
//   - Expand / Contract: the bijection between the five-name public
//     vocabulary and the eight canonical generator forms.
//
// Why:
//
//   - Image pipelines: collapse accumulated user rotations/flips before
//     touching pixels, so at most three cheap passes run.
//   - EXIF-style orientation handling: normalize arbitrary orientation
//     chains to a canonical form.
//   - Deduplication: two sequences are interchangeable iff they reduce
//     to the same canonical form.
//
// How:
//
// All 31 generator sequences of length 0–4 partition into 8 equivalence
// classes, one per group element, each with a minimal-length
// representative. Reduction repeatedly replaces the leading four
// generators with their representative (length ≤ 3), strictly shrinking
// the sequence until a single table lookup finishes the job.
//
// Complexity:
//
//   - Reduce / ReduceBase: O(n) table lookups for an n-element input,
//     each O(1) against a fixed 256-entry direct-indexed table.
//   - Expand / Contract / Representative: O(1).
//
// All tables are built once at init and never mutated, so every function
// here is safe for unsynchronized concurrent use.
//
// Errors:
//
//   - ErrUnknownTransform: a Transform value outside the five names.
//   - ErrUnknownGenerator: a Generator value outside Flip/Rotate.
//   - ErrSequenceTooLong: a table lookup beyond the length-4 domain.
//   - ErrNotCanonical: Contract given a non-canonical sequence.
package dihedral
