// Package bmat8_test verifies the packed boolean matrix operations and
// the trait bundle: bit layout, transpose, boolean products, canonical
// bases, the row-space grading, and the fixed-capacity error path.
package bmat8_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/greens/bmat8"
	"github.com/katalvlaran/greens/element"
)

var tr = bmat8.Traits{}

func TestNew_LayoutAndGet(t *testing.T) {
	m := bmat8.MustNew([][]int{
		{0, 1},
		{1, 0},
	})
	if !m.Get(0, 1) || !m.Get(1, 0) || m.Get(0, 0) || m.Get(1, 1) {
		t.Fatalf("unexpected entries:\n%v", m)
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d, want 2", m.Count())
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := bmat8.New([][]int{{2}}); !errors.Is(err, bmat8.ErrBadEntry) {
		t.Fatalf("expected ErrBadEntry for entry 2, got %v", err)
	}
	if _, err := bmat8.New(make([][]int, 9)); !errors.Is(err, bmat8.ErrBadEntry) {
		t.Fatalf("expected ErrBadEntry for 9 rows, got %v", err)
	}
}

func TestTranspose_Involution(t *testing.T) {
	m := bmat8.MustNew([][]int{
		{1, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	if m.Transpose().Transpose() != m {
		t.Fatal("transpose must be an involution")
	}
	if !m.Transpose().Get(2, 1) {
		t.Fatal("entry (1,2) must move to (2,1)")
	}
}

func TestMul(t *testing.T) {
	a := bmat8.MustNew([][]int{
		{1, 0},
		{1, 1},
	})
	b := bmat8.MustNew([][]int{
		{0, 1},
		{1, 0},
	})
	// Boolean product: row i of a selects rows of b to OR together.
	want := bmat8.MustNew([][]int{
		{0, 1},
		{1, 1},
	})
	if got := a.Mul(b); got != want {
		t.Fatalf("a·b =\n%v\nwant\n%v", got, want)
	}

	one, err := bmat8.One(2)
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if a.Mul(one) != a || one.Mul(a) != a {
		t.Fatal("One(2) must be an identity for 2x2 matrices")
	}
}

func TestRowSpaceBasis(t *testing.T) {
	// Row 2 is the union of rows 0 and 1, row 3 duplicates row 0.
	m := bmat8.MustNew([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
		{1, 0, 0},
	})
	b := m.RowSpaceBasis()
	if b.BasisRows() != 2 {
		t.Fatalf("basis rows = %d, want 2:\n%v", b.BasisRows(), b)
	}
	// Basis invariance: the basis of a basis is itself.
	if b.RowSpaceBasis() != b {
		t.Fatal("basis must be canonical")
	}
}

func TestRowSpaceSize(t *testing.T) {
	one, _ := bmat8.One(3)
	if got := one.RowSpaceSize(); got != 8 {
		t.Fatalf("row space of 1₃ has %d vectors, want 8", got)
	}
	// The zero matrix spans only the empty sum.
	if got := bmat8.BMat8(0).RowSpaceSize(); got != 1 {
		t.Fatalf("zero matrix row space size = %d, want 1", got)
	}
}

// TestRank_MonotoneUnderProducts locks in the grading property the
// decomposition engine relies on.
func TestRank_MonotoneUnderProducts(t *testing.T) {
	mats := []bmat8.BMat8{
		bmat8.MustNew([][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 0}}),
		bmat8.MustNew([][]int{{0, 1, 0}, {1, 0, 1}, {1, 1, 1}}),
		bmat8.MustNew([][]int{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}}),
	}
	for _, x := range mats {
		for _, y := range mats {
			p := x.Mul(y)
			if p.RowSpaceSize() > x.RowSpaceSize() || p.RowSpaceSize() > y.RowSpaceSize() {
				t.Fatalf("rank grew under product:\n%v\n·\n%v", x, y)
			}
		}
	}
}

func TestMinDim(t *testing.T) {
	tests := []struct {
		name string
		m    bmat8.BMat8
		want int
	}{
		{"2x2 swap", bmat8.MustNew([][]int{{0, 1}, {1, 0}}), 2},
		{"entry (4,4)", bmat8.BMat8(0).Set(4, 4, true), 5},
		{"zero", bmat8.BMat8(0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MinDim(); got != tc.want {
				t.Fatalf("MinDim = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTraits_OneDegreeOutOfRange(t *testing.T) {
	if _, err := tr.One(9); !errors.Is(err, element.ErrDegreeOutOfRange) {
		t.Fatalf("expected ErrDegreeOutOfRange from One(9), got %v", err)
	}
	one, err := tr.One(8)
	if err != nil {
		t.Fatalf("One(8): %v", err)
	}
	if tr.Degree(one) != 8 {
		t.Fatalf("Degree(1₈) = %d", tr.Degree(one))
	}
}

func TestTraits_Invertible(t *testing.T) {
	swap := bmat8.MustNew([][]int{{0, 1}, {1, 0}})
	if !tr.Invertible(&swap) {
		t.Fatal("a permutation matrix must be invertible")
	}
	lower := bmat8.MustNew([][]int{{1, 0}, {1, 1}})
	if tr.Invertible(&lower) {
		t.Fatal("a non-permutation must not be invertible")
	}
}

// TestActions_AgreeWithProducts mirrors the defining law of the two
// actions on the matrix kind.
func TestActions_AgreeWithProducts(t *testing.T) {
	zs := []bmat8.BMat8{
		bmat8.MustNew([][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
		bmat8.MustNew([][]int{{1, 1, 0}, {0, 0, 1}, {0, 0, 1}}),
	}
	xs := []bmat8.BMat8{
		bmat8.MustNew([][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}),
		bmat8.MustNew([][]int{{1, 0, 0}, {1, 0, 0}, {0, 1, 1}}),
	}
	for _, z := range zs {
		for _, x := range xs {
			zl, _ := tr.Lambda(&z)
			zr, _ := tr.Rho(&z)

			zx := z.Mul(x)
			wantL, _ := tr.Lambda(&zx)
			gotL, err := tr.LambdaAct(zl, &x)
			if err != nil {
				t.Fatalf("LambdaAct: %v", err)
			}
			if gotL != wantL {
				t.Fatalf("λ action disagrees:\n%v\nvs\n%v", gotL, wantL)
			}

			xz := x.Mul(z)
			wantR, _ := tr.Rho(&xz)
			gotR, err := tr.RhoAct(zr, &x)
			if err != nil {
				t.Fatalf("RhoAct: %v", err)
			}
			if gotR != wantR {
				t.Fatalf("ρ action disagrees:\n%v\nvs\n%v", gotR, wantR)
			}
		}
	}
}
