// Package konieczny computes the Green's-relation structure — the
// partition into D-classes with their internal L-, R- and H-class
// substructure — of a semigroup given by a finite set of generators,
// using Konieczny's algorithm.
//
// The multiplication table is never materialised. Instead the semigroup
// is represented through two orbits on a small point space: the λ-orbit
// of image-like values under the right action, and the ρ-orbit of
// kernel-like values under the left action. Membership of an element in
// a class is decided through products in a cached group: the
// group-index search fixes ρ and scans the SCC of λ for a position
// landing the element in a group H-class.
//
// Outline of a decomposition:
//
//  1. Promote the generators to the common working degree; adjoin an
//     identity when no generator is invertible.
//  2. Enumerate both orbits to completion, with Schreier multipliers
//     to and from every SCC root.
//  3. Seed the top D-class at the identity. Its covering
//     representatives — left representatives extended by one
//     generator — feed per-rank worklists.
//  4. Repeatedly take the highest pending rank, preferring regular
//     representatives; drop those already contained in a known class;
//     open a regular class (anchored at the located idempotent) or a
//     non-regular class (anchored at two idempotents above) for each
//     survivor; dispatch its covering representatives.
//  5. Stop when no representative of positive rank remains.
//
// Usage:
//
//	k, err := konieczny.New[*transform.Transf, uint64, string](
//		transform.Traits{}, gens)
//	if err != nil { ... }
//	if err := k.Run(); err != nil { ... }
//	n, _ := k.Size()
//	classes, _ := k.DClasses()
//
// Errors:
//
//   - ErrEmptyGenerators          — New with no generators.
//   - ErrNotComputed              — accessors before Run.
//   - element.ErrDegreeOutOfRange — a generator or the working-degree
//     identity exceeds the point representation (wrapped by New).
//   - context cancellation        — through WithContext.
//
// Membership queries on elements outside the semigroup are not errors;
// Contains returns false for them.
package konieczny
