// Package element defines the trait surface through which the orbit and
// Konieczny engines consume an element kind.
//
// An element kind is any finite-monoid element representation — total
// transformations, boolean matrices, partial permutations — for which the
// bundle of operations in Traits can be supplied. The engines in
// greens/orbit and greens/konieczny are generic over a Traits value and
// never inspect elements directly; providing a Traits implementation is
// the whole of the work needed to plug a new kind in.
//
// Two derived point kinds accompany every element kind:
//
//   - the λ-value (type parameter L): a small invariant of the L-class,
//     typically the image of a transformation or the row-space basis of
//     a boolean matrix;
//   - the ρ-value (type parameter R): a small invariant of the R-class,
//     typically the kernel or the column-space basis.
//
// Both must be comparable Go types, so that the engines can key maps on
// them and on composite (point, component) pairs directly.
//
// Errors:
//
//   - ErrDegreeOutOfRange — an element's degree exceeds the capacity of
//     the λ- or ρ-representation (for example a transformation of degree
//     above 64 with a 64-bit image set).
package element
