// Decompositions over the boolean matrix kind, cross-checked against a
// brute-force closure.
package konieczny_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greens/bmat8"
	"github.com/katalvlaran/greens/konieczny"
)

// matClosureOf enumerates the generated matrix semigroup by brute
// force.
func matClosureOf(gens ...bmat8.BMat8) []bmat8.BMat8 {
	seen := make(map[bmat8.BMat8]bool)
	var out []bmat8.BMat8
	for _, g := range gens {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	for i := 0; i < len(out); i++ {
		for _, g := range gens {
			p := out[i].Mul(g)
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	return out
}

func TestBMat8Monoid_CrossCheckedAgainstClosure(t *testing.T) {
	mats := []bmat8.BMat8{
		bmat8.MustNew([][]int{{0, 1}, {1, 0}}),
		bmat8.MustNew([][]int{{1, 0}, {1, 1}}),
		bmat8.MustNew([][]int{{1, 0}, {0, 0}}),
	}
	gens := make([]*bmat8.BMat8, len(mats))
	for i := range mats {
		gens[i] = &mats[i]
	}

	k, err := konieczny.New[*bmat8.BMat8, bmat8.BMat8, bmat8.BMat8](bmat8.Traits{}, gens)
	require.NoError(t, err)
	require.NoError(t, k.Run())
	require.Equal(t, 2, k.Degree())
	require.False(t, k.IdentityAdjoined(), "the swap matrix is invertible")

	elements := matClosureOf(mats...)
	size, err := k.Size()
	require.NoError(t, err)
	require.EqualValues(t, len(elements), size)

	var bruteIdems uint64
	for i := range elements {
		x := elements[i]
		ok, err := k.Contains(&x)
		require.NoError(t, err)
		require.True(t, ok, "closure element must be contained:\n%v", x)
		if x.Mul(x) == x {
			bruteIdems++
		}
	}
	ni, err := k.NumberOfIdempotents()
	require.NoError(t, err)
	require.Equal(t, bruteIdems, ni)

	// The class sizes partition the closure.
	ds, err := k.DClasses()
	require.NoError(t, err)
	var sum uint64
	for _, d := range ds {
		sum += d.Size()
	}
	require.EqualValues(t, len(elements), sum)
}

func TestBMat8Monoid_NonMembers(t *testing.T) {
	swap := bmat8.MustNew([][]int{{0, 1}, {1, 0}})
	k, err := konieczny.New[*bmat8.BMat8, bmat8.BMat8, bmat8.BMat8](
		bmat8.Traits{}, []*bmat8.BMat8{&swap})
	require.NoError(t, err)
	require.NoError(t, k.Run())

	size, err := k.Size()
	require.NoError(t, err)
	require.EqualValues(t, 2, size, "⟨swap⟩ = {1, swap}")

	lower := bmat8.MustNew([][]int{{1, 0}, {1, 1}})
	ok, err := k.Contains(&lower)
	require.NoError(t, err)
	require.False(t, ok)
}
