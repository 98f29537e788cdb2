// Package greens is a computational algebra toolkit for exploring the
// Green's-relation structure of finitely generated transformation
// monoids and their relatives.
//
// 🚀 What is greens?
//
//	A library that decomposes a semigroup, given only its generators,
//	into D-classes — with full L/R/H substructure — without ever
//	materialising a multiplication table:
//		• Konieczny's algorithm over a pair of group actions
//		• A generic action orbit engine with Gabow SCCs and
//		  Schreier multipliers
//		• Pluggable element kinds through a small trait surface
//		• Transformations and 8×8 boolean matrices out of the box
//
// ✨ Why choose greens?
//
//   - Implicit representation – memory scales with orbits, not with
//     the semigroup
//   - Exact structure – sizes, idempotent counts, class partitions
//   - Extensible – one trait bundle plugs in a new element kind
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under six subpackages:
//
//	element/   — the trait surface element kinds implement
//	cache/     — pooled scratch elements for destination-writing products
//	orbit/     — action orbits, SCCs, Schreier multipliers
//	konieczny/ — the D-class decomposition engine
//	transform/ — total transformations of {0..n−1}
//	bmat8/     — 8×8 boolean matrices in a uint64
//
// Quick example:
//
//	gens := []*transform.Transf{
//		transform.MustNew(1, 0, 2, 3, 4),
//		transform.MustNew(1, 2, 3, 4, 0),
//		transform.MustNew(0, 0, 2, 3, 4),
//	}
//	k, _ := konieczny.New[*transform.Transf, uint64, string](
//		transform.Traits{}, gens)
//	_ = k.Run()
//	n, _ := k.Size() // 3125: the full transformation monoid on 5 points
//
// See cmd/greens for a command-line front end reading generator sets
// from YAML.
package greens
