// Package bmat8 implements 8×8 boolean matrices packed into a single
// uint64, and the trait bundle plugging them into the greens engines.
//
// Bit layout follows the row-major convention: entry (i, j) occupies bit
// 63−(8i+j), so row 0 is the most significant byte. Multiplication is
// boolean (OR of ANDs).
//
// The λ-value of a matrix is its row-space basis in canonical form, the
// ρ-value its column-space basis; both are again BMat8 values and key
// maps directly. Traits.One(n) for n above 8 reports
// element.ErrDegreeOutOfRange, which exercises the engines' fixed-
// capacity error path.
package bmat8
