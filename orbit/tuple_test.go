// Tuple-orbit scenario: the symmetric group on 20 points acting
// coordinate-wise on ordered 4-tuples. The orbit of a tuple of distinct
// points is the full set of 4-arrangements, 20·19·18·17 = 116280.
package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greens/orbit"
	"github.com/katalvlaran/greens/transform"
)

type tuple4 [4]uint8

// s20Gens returns the standard generators of the symmetric group on 20
// points: a transposition and a 20-cycle.
func s20Gens() []*transform.Transf {
	swap := make([]uint8, 20)
	cycle := make([]uint8, 20)
	for i := range swap {
		swap[i] = uint8(i)
		cycle[i] = uint8((i + 1) % 20)
	}
	swap[0], swap[1] = 1, 0

	return []*transform.Transf{transform.MustNew(swap...), transform.MustNew(cycle...)}
}

func TestOrbit_SymmetricGroupOnTuples(t *testing.T) {
	if testing.Short() {
		t.Skip("116280-point orbit")
	}
	act := func(pt tuple4, x *transform.Transf) (tuple4, error) {
		var out tuple4
		for i, v := range pt {
			out[i] = x.At(int(v))
		}

		return out, nil
	}
	o := orbit.New[*transform.Transf, tuple4](orbit.Right, tr, act)
	for _, g := range s20Gens() {
		require.NoError(t, o.AddGenerator(g))
	}

	seed := tuple4{0, 1, 2, 3}
	require.Equal(t, 0, o.AddSeed(seed))
	require.NoError(t, o.Run())

	require.Equal(t, 116280, o.Size())
	require.Equal(t, 0, o.Position(seed))

	// The designated probe tuple is in the orbit and round-trips.
	probe := tuple4{9, 0, 2, 19}
	pos := o.Position(probe)
	require.NotEqual(t, orbit.NoPosition, pos)
	require.Equal(t, probe, o.At(pos))

	// Permutation actions keep all coordinates distinct, so the whole
	// orbit is one SCC rooted at the seed.
	require.Equal(t, 1, o.SCCCount())
	require.Equal(t, 0, o.SCC(0)[0])

	// Sampled multiplier law.
	for _, i := range []int{0, 1, 257, 25295, 116279} {
		root := o.SCC(o.SCCID(i))[0]
		got, err := act(o.At(i), o.MultiplierToRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(root), got)
		got, err = act(o.At(root), o.MultiplierFromRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(i), got)
	}
}
