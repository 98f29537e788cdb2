package bmat8

import (
	"fmt"

	"github.com/katalvlaran/greens/element"
)

// Traits plugs *BMat8 into the greens engines, with both λ- and
// ρ-values of type BMat8 (canonical row- and column-space bases).
type Traits struct{}

var _ element.Traits[*BMat8, BMat8, BMat8] = Traits{}

// Product writes the boolean product x·y into dst.
func (Traits) Product(dst, x, y *BMat8, _ int) { *dst = x.Mul(*y) }

// Equal reports whether x and y are the same matrix.
func (Traits) Equal(x, y *BMat8) bool { return *x == *y }

// Less orders matrices by their packed uint64 value.
func (Traits) Less(x, y *BMat8) bool { return *x < *y }

// Hash mixes the packed value with a splitmix64 round.
func (Traits) Hash(x *BMat8) uint64 {
	v := uint64(*x) + 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb

	return v ^ (v >> 31)
}

// Clone returns an independent copy of x.
func (Traits) Clone(x *BMat8) *BMat8 {
	m := *x

	return &m
}

// Swap exchanges the contents of x and y.
func (Traits) Swap(x, y *BMat8) { *x, *y = *y, *x }

// One returns the identity matrix of dimension n, or
// element.ErrDegreeOutOfRange for n above 8.
func (Traits) One(n int) (*BMat8, error) {
	if n > 8 {
		return nil, fmt.Errorf("bmat8: dimension %d: %w", n, element.ErrDegreeOutOfRange)
	}
	m, err := One(n)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Degree returns the minimum dimension of x, at least 1.
func (Traits) Degree(x *BMat8) int {
	if d := x.MinDim(); d > 1 {
		return d
	}

	return 1
}

// Promote lets x participate in degree-n products. The 8×8 frame
// already embeds every smaller dimension, so promotion only validates
// that n lies between Degree(x) and 8.
func (t Traits) Promote(x *BMat8, n int) (*BMat8, error) {
	if n > 8 {
		return nil, fmt.Errorf("bmat8: dimension %d: %w", n, element.ErrDegreeOutOfRange)
	}
	if d := t.Degree(x); n < d {
		return nil, fmt.Errorf("bmat8: cannot shrink dimension %d to %d: %w", d, n, element.ErrDegreeOutOfRange)
	}
	m := *x

	return &m, nil
}

// Rank returns the size of the row space, zero vector included.
func (Traits) Rank(x *BMat8) int { return x.RowSpaceSize() }

// Invertible reports whether x is a permutation matrix of its own
// dimension: x·xᵀ is the identity.
func (t Traits) Invertible(x *BMat8) bool {
	one, err := One(t.Degree(x))
	if err != nil {
		return false
	}

	return x.Mul(x.Transpose()) == one
}

// Lambda returns the canonical row-space basis of x.
func (Traits) Lambda(x *BMat8) (BMat8, error) { return x.RowSpaceBasis(), nil }

// Rho returns the canonical column-space basis of x.
func (Traits) Rho(x *BMat8) (BMat8, error) { return x.ColSpaceBasis(), nil }

// LambdaAct writes the right action pt·x on row-space bases.
func (Traits) LambdaAct(pt BMat8, x *BMat8) (BMat8, error) {
	return pt.Mul(*x).RowSpaceBasis(), nil
}

// RhoAct writes the left action x·pt on column-space bases.
func (Traits) RhoAct(pt BMat8, x *BMat8) (BMat8, error) {
	return x.Mul(pt).ColSpaceBasis(), nil
}
