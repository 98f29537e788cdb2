// Package orbit computes the orbit of a point set under a monoid action,
// together with the structures the Konieczny engine needs on top of the
// bare point set:
//
//   - a Schreier forest recording, for every non-seed point, the
//     generator and parent through which it was first reached;
//   - the generator edge table of the action digraph;
//   - Gabow strongly connected components of that digraph, with ids
//     assigned in completion order;
//   - per-point Schreier multipliers to and from the SCC root, stored as
//     elements (products of the supplied generators), not as words.
//
// Two action flavours share one implementation: a Right orbit advances
// points by pt·g (the λ-orbit of a transformation monoid), a Left orbit
// by g·pt (the ρ-orbit). The flavour decides the composition order of
// the multipliers.
//
// Usage:
//
//	o := orbit.New[*transform.Transf, uint64](orbit.Right, tr, act)
//	_ = o.AddGenerator(g1)
//	_ = o.AddGenerator(g2)
//	seed, _ := tr.Lambda(one)
//	o.AddSeed(seed)
//	if err := o.Run(); err != nil { ... }
//	i := o.Position(pt) // NoPosition when absent
//
// Complexity:
//
//   - Closure: O(|orbit| · |generators|) actions plus hashing.
//   - SCC: O(V + E) on the generator edge table (iterative Gabow).
//   - Multipliers: one product per point and direction.
//
// Errors:
//
//   - ErrFrozen       — AddGenerator after Run (Reset lifts the freeze).
//   - ErrNoGenerators — Run with no generators.
//   - any error surfaced by the action or by the element operations.
package orbit
