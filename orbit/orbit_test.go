// Package orbit_test verifies the orbit engine against the
// transformation kind: closure, the Schreier forest, the edge-table
// law, SCC well-formedness, and the multiplier laws in both action
// flavours.
package orbit_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greens/orbit"
	"github.com/katalvlaran/greens/transform"
)

var tr = transform.Traits{}

// t3Gens generates the full transformation monoid on 3 points.
func t3Gens() []*transform.Transf {
	return []*transform.Transf{
		transform.MustNew(1, 0, 2),
		transform.MustNew(1, 2, 0),
		transform.MustNew(0, 0, 2),
	}
}

func newLambdaOrbit(t *testing.T, gens []*transform.Transf) *orbit.Orbit[*transform.Transf, uint64] {
	t.Helper()
	o := orbit.New[*transform.Transf, uint64](orbit.Right, tr,
		func(pt uint64, x *transform.Transf) (uint64, error) { return tr.LambdaAct(pt, x) })
	for _, g := range gens {
		require.NoError(t, o.AddGenerator(g))
	}

	return o
}

func newRhoOrbit(t *testing.T, gens []*transform.Transf) *orbit.Orbit[*transform.Transf, string] {
	t.Helper()
	o := orbit.New[*transform.Transf, string](orbit.Left, tr,
		func(pt string, x *transform.Transf) (string, error) { return tr.RhoAct(pt, x) })
	for _, g := range gens {
		require.NoError(t, o.AddGenerator(g))
	}

	return o
}

func TestOrbit_LambdaClosure(t *testing.T) {
	o := newLambdaOrbit(t, t3Gens())
	seed, err := tr.Lambda(transform.Identity(3))
	require.NoError(t, err)
	require.Equal(t, 0, o.AddSeed(seed))
	require.NoError(t, o.Run())

	// All nonempty subsets of {0,1,2} are reachable from the full set.
	require.Equal(t, 7, o.Size())
	require.Equal(t, 0, o.Position(seed))

	// position/at round trip.
	for i := 0; i < o.Size(); i++ {
		require.Equal(t, i, o.Position(o.At(i)))
	}
	require.Equal(t, orbit.NoPosition, o.Position(uint64(0)))
}

func TestOrbit_EdgeAndSchreierLaws(t *testing.T) {
	gens := t3Gens()
	o := newLambdaOrbit(t, gens)
	seed, _ := tr.Lambda(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	for i := 0; i < o.Size(); i++ {
		// Edge law: the edge table target is the acted point.
		for gi, g := range gens {
			img, err := tr.LambdaAct(o.At(i), g)
			require.NoError(t, err)
			require.Equal(t, o.Position(img), o.Edge(i, gi))
		}
		// Schreier law: each non-seed point is its parent acted on by
		// the recorded generator.
		if o.PathGenerator(i) >= 0 {
			img, err := tr.LambdaAct(o.At(o.PathParent(i)), gens[o.PathGenerator(i)])
			require.NoError(t, err)
			require.Equal(t, o.At(i), img)
		}
	}
}

func TestOrbit_SCCWellFormed(t *testing.T) {
	o := newLambdaOrbit(t, t3Gens())
	seed, _ := tr.Lambda(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	// Full set, the three 2-subsets, the three singletons.
	require.Equal(t, 3, o.SCCCount())

	// Every point in exactly one SCC; members share their popcount
	// stratum; the root leads its member list.
	seen := make(map[int]bool)
	for id := 0; id < o.SCCCount(); id++ {
		comp := o.SCC(id)
		require.NotEmpty(t, comp)
		for _, i := range comp {
			require.False(t, seen[i])
			seen[i] = true
			require.Equal(t, id, o.SCCID(i))
			require.Equal(t, bits.OnesCount64(o.At(comp[0])), bits.OnesCount64(o.At(i)))
		}
	}
	require.Len(t, seen, o.Size())

	// Edges only reach components of equal or earlier id: ids complete
	// bottom-up.
	for i := 0; i < o.Size(); i++ {
		for gi := range t3Gens() {
			j := o.Edge(i, gi)
			require.LessOrEqual(t, o.SCCID(j), o.SCCID(i))
		}
	}
}

func TestOrbit_MultiplierLaws_Right(t *testing.T) {
	o := newLambdaOrbit(t, t3Gens())
	seed, _ := tr.Lambda(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	for i := 0; i < o.Size(); i++ {
		root := o.SCC(o.SCCID(i))[0]

		toRoot, err := tr.LambdaAct(o.At(i), o.MultiplierToRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(root), toRoot, "points[%d]·toRoot must reach the root", i)

		fromRoot, err := tr.LambdaAct(o.At(root), o.MultiplierFromRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(i), fromRoot, "root·fromRoot must reach points[%d]", i)
	}
}

func TestOrbit_MultiplierLaws_Left(t *testing.T) {
	o := newRhoOrbit(t, t3Gens())
	seed, _ := tr.Rho(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	for i := 0; i < o.Size(); i++ {
		root := o.SCC(o.SCCID(i))[0]

		toRoot, err := tr.RhoAct(o.At(i), o.MultiplierToRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(root), toRoot, "toRoot·points[%d] must reach the root", i)

		fromRoot, err := tr.RhoAct(o.At(root), o.MultiplierFromRoot(i))
		require.NoError(t, err)
		require.Equal(t, o.At(i), fromRoot, "fromRoot·root must reach points[%d]", i)
	}
}

func TestOrbit_EvaluatePath(t *testing.T) {
	gens := t3Gens()
	o := newLambdaOrbit(t, gens)
	seed, _ := tr.Lambda(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	for i := 0; i < o.Size(); i++ {
		m, ok, err := o.EvaluatePath(i)
		require.NoError(t, err)
		if !ok {
			require.Equal(t, 0, i, "only the seed has an empty path")
			continue
		}
		img, err := tr.LambdaAct(seed, m)
		require.NoError(t, err)
		require.Equal(t, o.At(i), img)
	}
}

func TestOrbit_FrozenAndReset(t *testing.T) {
	o := newLambdaOrbit(t, t3Gens())
	seed, _ := tr.Lambda(transform.Identity(3))
	o.AddSeed(seed)
	require.NoError(t, o.Run())

	require.ErrorIs(t, o.AddGenerator(transform.MustNew(2, 2, 2)), orbit.ErrFrozen)

	o.Reset()
	require.NoError(t, o.AddGenerator(transform.MustNew(2, 2, 2)))
	o.AddSeed(seed)
	require.NoError(t, o.Run())
	require.Equal(t, 7, o.Size())
}

func TestOrbit_RunWithoutGenerators(t *testing.T) {
	o := orbit.New[*transform.Transf, uint64](orbit.Right, tr,
		func(pt uint64, x *transform.Transf) (uint64, error) { return tr.LambdaAct(pt, x) })
	o.AddSeed(uint64(1))
	require.ErrorIs(t, o.Run(), orbit.ErrNoGenerators)
}

func TestOrbit_AddSeedExisting(t *testing.T) {
	o := newLambdaOrbit(t, t3Gens())
	require.Equal(t, 0, o.AddSeed(uint64(0b111)))
	require.Equal(t, 1, o.AddSeed(uint64(0b011)))
	require.Equal(t, 0, o.AddSeed(uint64(0b111)))
}

func TestGraded_ShuntsLowerGrades(t *testing.T) {
	grader := func(pt uint64) int { return bits.OnesCount64(pt) }
	g := orbit.NewGraded[*transform.Transf, uint64](orbit.Right, tr,
		func(pt uint64, x *transform.Transf) (uint64, error) { return tr.LambdaAct(pt, x) },
		grader)
	for _, gen := range t3Gens() {
		require.NoError(t, g.AddGenerator(gen))
	}

	require.Equal(t, 0, g.AddSeed(uint64(0b111)))
	require.Equal(t, 3, g.Grade())

	// A lower-graded seed is refused, not expanded.
	require.Equal(t, orbit.NoPosition, g.AddSeed(uint64(0b011)))
	require.Len(t, g.Refused(), 1)

	require.NoError(t, g.Run())
	// Only the full set has grade 3; the rank-2 image reached through
	// the collapsing generator is deferred.
	require.Equal(t, 1, g.Size())
	deferred := g.Deferred()
	require.Len(t, deferred, 1)
	require.Equal(t, uint64(0b101), deferred[0])
}
