// Package transform implements total transformations of the set
// {0, …, n−1} and the trait bundle plugging them into the greens
// engines.
//
// A transformation is stored as its image word: Transf{1,0,2} maps
// 0↦1, 1↦0, 2↦2. Products compose left to right: (x·y)(i) = y(x(i)).
//
// The λ-value of a transformation is its image as a 64-bit set, which
// bounds the supported degree at 64 (element.ErrDegreeOutOfRange
// beyond); the ρ-value is the kernel in first-occurrence canonical
// numbering, encoded as a string so it can key maps directly.
//
// Errors:
//
//   - ErrBadImage — a constructor image value is outside {0, …, n−1}.
package transform
