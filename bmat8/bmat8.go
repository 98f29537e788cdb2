package bmat8

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// ErrBadEntry is returned by New for an entry other than 0 or 1, or for
// a matrix exceeding 8 rows or columns.
var ErrBadEntry = errors.New("bmat8: matrix entries must be 0/1 within an 8x8 frame")

// BMat8 is an 8×8 boolean matrix packed row-major into a uint64: entry
// (i, j) occupies bit 63−(8i+j).
type BMat8 uint64

// New builds a matrix from 0/1 rows, at most 8 of them with at most 8
// entries each.
func New(rows [][]int) (BMat8, error) {
	if len(rows) > 8 {
		return 0, fmt.Errorf("%w: %d rows", ErrBadEntry, len(rows))
	}
	var v uint64
	for i, row := range rows {
		if len(row) > 8 {
			return 0, fmt.Errorf("%w: row %d has %d entries", ErrBadEntry, i, len(row))
		}
		for j, e := range row {
			switch e {
			case 0:
			case 1:
				v |= 1 << (63 - (8*i + j))
			default:
				return 0, fmt.Errorf("%w: entry (%d,%d) = %d", ErrBadEntry, i, j, e)
			}
		}
	}

	return BMat8(v), nil
}

// MustNew is New panicking on malformed input. Intended for literals in
// tests and examples.
func MustNew(rows [][]int) BMat8 {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// One returns the identity matrix of dimension n ≤ 8.
func One(n int) (BMat8, error) {
	if n < 0 || n > 8 {
		return 0, fmt.Errorf("bmat8: dimension %d outside [0, 8]", n)
	}
	var v uint64
	for i := 0; i < n; i++ {
		v |= 1 << (63 - (8*i + i))
	}

	return BMat8(v), nil
}

// Get reports entry (i, j).
func (m BMat8) Get(i, j int) bool {
	return m>>(63-(8*i+j))&1 == 1
}

// Set returns m with entry (i, j) set to b.
func (m BMat8) Set(i, j int, b bool) BMat8 {
	bit := BMat8(1) << (63 - (8*i + j))
	if b {
		return m | bit
	}

	return m &^ bit
}

// Row returns row i as a byte with column 0 in the most significant
// bit.
func (m BMat8) Row(i int) uint8 {
	return uint8(m >> (8 * (7 - i)))
}

// Transpose returns the transposed matrix.
func (m BMat8) Transpose() BMat8 {
	var out BMat8
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if m.Get(i, j) {
				out = out.Set(j, i, true)
			}
		}
	}

	return out
}

// Mul returns the boolean product m·y.
func (m BMat8) Mul(y BMat8) BMat8 {
	yt := y.Transpose()
	var out BMat8
	for i := 0; i < 8; i++ {
		ri := m.Row(i)
		for j := 0; j < 8; j++ {
			if ri&yt.Row(j) != 0 {
				out = out.Set(i, j, true)
			}
		}
	}

	return out
}

// RowSpaceBasis returns the canonical basis of the row space: the
// distinct nonzero rows that are not unions of other rows, sorted in
// decreasing order and packed from row 0.
func (m BMat8) RowSpaceBasis() BMat8 {
	var rows []uint8
	for i := 0; i < 8; i++ {
		r := m.Row(i)
		if r == 0 {
			continue
		}
		dup := false
		for _, s := range rows {
			if s == r {
				dup = true
				break
			}
		}
		if !dup {
			rows = append(rows, r)
		}
	}

	var basis []uint8
	for _, r := range rows {
		var union uint8
		for _, s := range rows {
			if s != r && s|r == r {
				union |= s
			}
		}
		if union != r {
			basis = append(basis, r)
		}
	}
	sort.Slice(basis, func(a, b int) bool { return basis[a] > basis[b] })

	var out BMat8
	for i, r := range basis {
		out |= BMat8(r) << (8 * (7 - i))
	}

	return out
}

// ColSpaceBasis returns the canonical basis of the column space: the
// row-space basis of the transpose, transposed back into columns.
func (m BMat8) ColSpaceBasis() BMat8 {
	return m.Transpose().RowSpaceBasis().Transpose()
}

// BasisRows returns the number of rows in the canonical row-space
// basis.
func (m BMat8) BasisRows() int {
	b := m.RowSpaceBasis()
	n := 0
	for i := 0; i < 8; i++ {
		if b.Row(i) != 0 {
			n++
		}
	}

	return n
}

// RowSpaceSize returns the number of distinct vectors spanned by the
// rows of m, the empty sum included, so the zero matrix spans exactly
// one vector. Unlike the basis-row count this count never grows under
// products, which makes it the rank grading the decomposition engine
// needs — and it stays strictly positive, so every class is enumerated.
func (m BMat8) RowSpaceSize() int {
	var span [256]bool
	span[0] = true
	count := 1
	for i := 0; i < 8; i++ {
		r := m.Row(i)
		if r == 0 {
			continue
		}
		for v := 0; v < 256; v++ {
			if span[v] && !span[v|int(r)] {
				span[v|int(r)] = true
				count++
			}
		}
	}

	return count
}

// MinDim returns the smallest d such that m fits in the top-left d×d
// block; 0 for the zero matrix.
func (m BMat8) MinDim() int {
	d := uint64(m)
	t := uint64(m.Transpose())
	i := 1
	for i < 9 && (d>>(8*i))<<(8*i) == d && (t>>(8*i))<<(8*i) == t {
		i++
	}

	return 9 - i
}

// Count returns the number of set entries.
func (m BMat8) Count() int { return bits.OnesCount64(uint64(m)) }

// String renders the matrix as eight rows of 0/1 digits.
func (m BMat8) String() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if m.Get(i, j) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if i < 7 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
