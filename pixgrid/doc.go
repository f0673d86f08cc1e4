// Package pixgrid applies named image transforms to RGBA pixel grids,
// supporting validation and demos of the dihedral reduction core.
//
// What:
//
//   - Image: a rectangular RGBA pixel buffer with image.Image bridges
//     and PNG load/save.
//   - Apply: runs a []dihedral.Transform against an Image, allocating a
//     fresh buffer per step so the input is never mutated — full and
//     reduced sequences can be applied independently to the same
//     original for comparison.
//   - Equal: pixel-exact comparison of two images.
//   - Scale / TestPattern: demo helpers (preview downscaling, built-in
//     asymmetric reference image).
//
// Why:
//
//   - The reduction core guarantees apply(reduce(s)) == apply(s) for
//     every image; this package is where that guarantee is exercised.
//   - The interactive demo renders the same original under the full and
//     the reduced sequence side by side — see cmd/fliprot.
//
// Complexity:
//
//   - Apply: O(k·W·H) for k transforms, Memory: O(W·H) per step.
//   - Equal: O(W·H).
//
// Errors:
//
//   - ErrEmptyImage: non-positive dimensions.
//   - ErrNilImage: Apply or Scale given a nil image.
//   - dihedral.ErrUnknownTransform: sequence contains an unknown name.
package pixgrid
