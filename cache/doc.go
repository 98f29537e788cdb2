// Package cache pools short-lived scratch elements so that the hot loops
// of the orbit and Konieczny engines can perform destination-writing
// products without allocating on every call.
//
// A Cache owns a pool of deep copies of a prototype element. Push
// materialises copies into the acquirable pool; Acquire moves one to the
// acquired side and hands out a borrow; Release returns it. The count of
// owned elements always equals acquirable + acquired, and Release is
// O(1) through the slot index embedded in the handle.
//
// Guard wraps an Acquire/Release pair for use with defer:
//
//	g, err := cache.NewGuard(pool)
//	if err != nil { ... }
//	defer g.Release()
//	tmp := g.Value()
//
// Kinds whose zero value is already a usable scratch element (small
// value types behind a pointer are not among them) can use NewTrivial,
// where Acquire fabricates a fresh value and Release is a no-op.
//
// Errors:
//
//   - ErrCacheEmpty — Acquire with nothing acquirable.
//   - ErrNotOwned   — Release of a handle this cache did not issue.
package cache
