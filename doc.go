// Package fliprot collapses chains of square-image isometries — flips
// and rotations — to the shortest chain with the identical visual
// effect.
//
// 🔄 What is fliprot?
//
//	A small, thread-safe, pure-Go library built on a simple fact: the
//	symmetries of the square form a group of eight elements, so any
//	chain of flips and rotations, however long, equals one of eight
//	canonical chains of at most three transforms:
//		• dihedral/ — the core: generator algebra, equivalence-class
//		  table, windowed reduction, and the Reduce API
//		• pixgrid/  — RGBA pixel grids, transform application, PNG I/O
//		  and pixel-exact comparison for validating the group laws
//		• cmd/fliprot — CLI: headless reduction, render-and-compare,
//		  and an interactive terminal demo
//
// ✨ Why choose fliprot?
//
//   - Provably minimal – every reduction lands on a canonical form of
//     length ≤ 3, pixel-identical to the original chain
//   - Rock-solid guarantees – all tables are immutable after init; every
//     function is safe for unsynchronized concurrent use
//   - Pure Go core – the reduction engine has no dependencies at all
//
// Quick example:
//
//	reduced, _ := dihedral.Reduce([]dihedral.Transform{
//		dihedral.RotateRight, dihedral.RotateRight, dihedral.RotateRight,
//	})
//	// reduced == [RotateLeft]
//
// Dive into dihedral/doc.go for the algebra and examples/ for a
// runnable walk-through.
//
//	go get github.com/fliprot/fliprot
package fliprot
