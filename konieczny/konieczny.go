package konieczny

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/greens/cache"
	"github.com/katalvlaran/greens/element"
	"github.com/katalvlaran/greens/orbit"
)

// Konieczny decomposes the semigroup generated by a finite set of
// elements into its D-classes, following Konieczny's algorithm: the
// semigroup is represented implicitly through the λ-orbit (right
// action) and the ρ-orbit (left action) of the generators, and every
// element's class membership is decided through products in a cached
// group rather than through a multiplication table.
//
// Construct with New, then call Run; the accessors fail with
// ErrNotComputed beforehand. A Konieczny is not safe for concurrent
// use.
type Konieczny[E any, L comparable, R comparable] struct {
	tr   element.Traits[E, L, R]
	opts Options
	pool *cache.Cache[E]

	gens             []E
	degree           int
	one              E
	identityAdjoined bool

	lambdaOrb *orbit.Orbit[E, L]
	rhoOrb    *orbit.Orbit[E, R]

	classes []dclass[E]
	regular []*regularDClass[E, L, R]
	dRels   [][]int

	groupIndices    map[groupKey[R]]int
	groupIndicesAlt map[altKey]int

	ran bool
}

// New validates the generating set and prepares the engine. It fails
// with ErrEmptyGenerators for an empty set, and with any error the
// trait surface reports while promoting generators to the working
// degree or while computing λ and ρ of the identity (the construction
// smoke test). A failed construction leaves no partial state.
func New[E any, L comparable, R comparable](tr element.Traits[E, L, R], gens []E, opts ...Option) (*Konieczny[E, L, R], error) {
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Working degree: the maximum the trait surface reports across the
	// generators; every generator is promoted to it.
	degree := 0
	for _, g := range gens {
		if d := tr.Degree(g); d > degree {
			degree = d
		}
	}
	owned := make([]E, 0, len(gens)+1)
	unit := false
	for i, g := range gens {
		p, err := tr.Promote(g, degree)
		if err != nil {
			return nil, fmt.Errorf("konieczny: generator %d: %w", i, err)
		}
		if tr.Invertible(p) {
			unit = true
		}
		owned = append(owned, p)
	}

	one, err := tr.One(degree)
	if err != nil {
		return nil, fmt.Errorf("konieczny: identity of degree %d: %w", degree, err)
	}
	// Smoke test: λ and ρ of the identity must be representable.
	if _, err = tr.Lambda(one); err != nil {
		return nil, fmt.Errorf("konieczny: λ smoke test: %w", err)
	}
	if _, err = tr.Rho(one); err != nil {
		return nil, fmt.Errorf("konieczny: ρ smoke test: %w", err)
	}

	adjoined := false
	if !unit {
		owned = append(owned, tr.Clone(one))
		adjoined = true
	}

	k := &Konieczny[E, L, R]{
		tr:               tr,
		opts:             o,
		pool:             cache.New(tr.Clone),
		gens:             owned,
		degree:           degree,
		one:              one,
		identityAdjoined: adjoined,
		groupIndices:     make(map[groupKey[R]]int),
		groupIndicesAlt:  make(map[altKey]int),
	}
	k.pool.Push(one, 4)

	k.lambdaOrb = orbit.New[E, L](orbit.Right, tr,
		func(pt L, x E) (L, error) { return tr.LambdaAct(pt, x) },
		orbit.WithContext(o.Ctx))
	k.rhoOrb = orbit.New[E, R](orbit.Left, tr,
		func(pt R, x E) (R, error) { return tr.RhoAct(pt, x) },
		orbit.WithContext(o.Ctx))
	for _, g := range owned {
		if err = k.lambdaOrb.AddGenerator(g); err != nil {
			return nil, err
		}
		if err = k.rhoOrb.AddGenerator(g); err != nil {
			return nil, err
		}
	}

	return k, nil
}

// Run enumerates both orbits to completion and computes the full
// D-class decomposition. Running twice is a no-op.
func (k *Konieczny[E, L, R]) Run() error {
	if k.ran {
		return nil
	}
	lseed, err := k.tr.Lambda(k.one)
	if err != nil {
		return err
	}
	rseed, err := k.tr.Rho(k.one)
	if err != nil {
		return err
	}
	k.lambdaOrb.AddSeed(lseed)
	k.rhoOrb.AddSeed(rseed)
	if err = k.lambdaOrb.Run(); err != nil {
		return fmt.Errorf("konieczny: λ-orbit: %w", err)
	}
	if err = k.rhoOrb.Run(); err != nil {
		return fmt.Errorf("konieczny: ρ-orbit: %w", err)
	}
	if err = k.computeDClasses(); err != nil {
		return err
	}
	k.ran = true

	return nil
}

// ----------------------------------------------------------------------
// Internal products and point helpers.
// ----------------------------------------------------------------------

// mul returns xs[0]·xs[1]·…·xs[last] as a fresh element, accumulating
// through a pooled scratch element.
func (k *Konieczny[E, L, R]) mul(xs ...E) E {
	out := k.tr.Clone(xs[0])
	if len(xs) == 1 {
		return out
	}
	if k.pool.Acquirable() == 0 {
		k.pool.Push(k.one, 1)
	}
	guard, err := cache.NewGuard(k.pool)
	if err != nil {
		// The pool was just refilled; an empty pool here means the cache
		// itself is broken, which the tests for the cache rule out.
		panic(err)
	}
	defer guard.Release()
	tmp := guard.Value()
	for _, y := range xs[1:] {
		k.tr.Product(tmp, out, y, 0)
		k.tr.Swap(tmp, out)
	}

	return out
}

// lambda and rho ignore the trait error: every element reaching them
// has the validated working degree, for which the construction smoke
// test proved both computations succeed.
func (k *Konieczny[E, L, R]) lambda(x E) L {
	v, _ := k.tr.Lambda(x)

	return v
}

func (k *Konieczny[E, L, R]) rho(x E) R {
	v, _ := k.tr.Rho(x)

	return v
}

// ----------------------------------------------------------------------
// Group-index search, regularity, idempotents.
// ----------------------------------------------------------------------

// isGroupElement reports whether y lies in a group H-class: y² must be
// H-equivalent to y.
func (k *Konieczny[E, L, R]) isGroupElement(y E) bool {
	y2 := k.mul(y, y)

	return k.lambda(y2) == k.lambda(y) && k.rho(y2) == k.rho(y)
}

// findGroupIndex finds the group index of the R-class of x: a λ-orbit
// index j in the SCC of λ(x) such that steering x's λ-value to
// position j lands x in a group H-class. Returns NoIndex when x is not
// regular. Results are memoised on (ρ(x), SCC of λ(x)).
func (k *Konieczny[E, L, R]) findGroupIndex(x E) int {
	pos := k.lambdaOrb.Position(k.lambda(x))
	if pos == orbit.NoPosition {
		return NoIndex
	}
	scc := k.lambdaOrb.SCCID(pos)
	key := groupKey[R]{rho: k.rho(x), scc: scc}
	if j, ok := k.groupIndices[key]; ok {
		return j
	}
	base := k.mul(x, k.lambdaOrb.MultiplierToRoot(pos))
	for _, j := range k.lambdaOrb.SCC(scc) {
		y := k.mul(base, k.lambdaOrb.MultiplierFromRoot(j))
		if k.isGroupElement(y) {
			k.groupIndices[key] = j

			return j
		}
	}
	k.groupIndices[key] = NoIndex

	return NoIndex
}

// isRegularElement reports whether x has a group index.
func (k *Konieczny[E, L, R]) isRegularElement(x E) bool {
	return k.findGroupIndex(x) != NoIndex
}

// groupInverse returns the inverse of x in the group H-class with
// identity id: the power of x one step before the cycle returns to id.
func (k *Konieczny[E, L, R]) groupInverse(id, x E) E {
	tmp := k.tr.Clone(x)
	var y E
	for {
		y = tmp
		tmp = k.mul(x, y)
		if k.tr.Equal(tmp, id) {
			return y
		}
	}
}

// idemInH returns the unique idempotent of the group H-class of y.
func (k *Konieczny[E, L, R]) idemInH(y E) E {
	t := k.tr.Clone(y)
	for {
		tt := k.mul(t, t)
		if k.tr.Equal(tt, t) {
			return t
		}
		t = k.mul(t, y)
	}
}

// findIdem locates the idempotent in the D-class of x. ok is false when
// x is not regular.
func (k *Konieczny[E, L, R]) findIdem(x E) (E, bool) {
	if k.tr.Equal(k.mul(x, x), x) {
		return k.tr.Clone(x), true
	}
	j := k.findGroupIndex(x)
	if j == NoIndex {
		var zero E

		return zero, false
	}
	pos := k.lambdaOrb.Position(k.lambda(x))
	y := k.mul(x, k.lambdaOrb.MultiplierToRoot(pos), k.lambdaOrb.MultiplierFromRoot(j))

	return k.idemInH(y), true
}

// ----------------------------------------------------------------------
// Public accessors.
// ----------------------------------------------------------------------

// Generators returns the generators the engine works with, including a
// conditionally adjoined identity. Callers must not mutate the slice.
func (k *Konieczny[E, L, R]) Generators() []E { return k.gens }

// Degree returns the working degree.
func (k *Konieczny[E, L, R]) Degree() int { return k.degree }

// IdentityAdjoined reports whether the engine appended an identity to
// the generating set because no generator was invertible. The adjoined
// identity is not a member of the semigroup.
func (k *Konieczny[E, L, R]) IdentityAdjoined() bool { return k.identityAdjoined }

// LambdaOrbitSize returns the size of the λ-orbit.
func (k *Konieczny[E, L, R]) LambdaOrbitSize() (int, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}

	return k.lambdaOrb.Size(), nil
}

// RhoOrbitSize returns the size of the ρ-orbit.
func (k *Konieczny[E, L, R]) RhoOrbitSize() (int, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}

	return k.rhoOrb.Size(), nil
}

// visible returns the classes of the semigroup proper: the artificial
// class of an adjoined identity is skipped.
func (k *Konieczny[E, L, R]) visible() []dclass[E] {
	if k.identityAdjoined {
		return k.classes[1:]
	}

	return k.classes
}

// Size returns the cardinality of the semigroup.
func (k *Konieczny[E, L, R]) Size() (uint64, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}
	var out uint64
	for _, d := range k.visible() {
		out += d.Size()
	}

	return out, nil
}

// DClasses returns the D-classes in discovery order, the class of the
// identity first and then by decreasing rank of the seeding
// representative. The artificial class of an adjoined identity is not
// included.
func (k *Konieczny[E, L, R]) DClasses() ([]DClass[E], error) {
	if !k.ran {
		return nil, ErrNotComputed
	}
	vis := k.visible()
	out := make([]DClass[E], len(vis))
	for i, d := range vis {
		out[i] = d
	}

	return out, nil
}

// RegularDClasses returns the regular D-classes in discovery order,
// skipping the artificial class of an adjoined identity.
func (k *Konieczny[E, L, R]) RegularDClasses() ([]DClass[E], error) {
	if !k.ran {
		return nil, ErrNotComputed
	}
	out := make([]DClass[E], 0, len(k.regular))
	for _, d := range k.regular {
		if k.identityAdjoined && d.Index() == 0 {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}

// NumberOfDClasses counts the D-classes of the semigroup.
func (k *Konieczny[E, L, R]) NumberOfDClasses() (int, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}

	return len(k.visible()), nil
}

// NumberOfLClasses counts the L-classes across all D-classes.
func (k *Konieczny[E, L, R]) NumberOfLClasses() (int, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}
	n := 0
	for _, d := range k.visible() {
		n += len(d.LeftReps())
	}

	return n, nil
}

// NumberOfRClasses counts the R-classes across all D-classes.
func (k *Konieczny[E, L, R]) NumberOfRClasses() (int, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}
	n := 0
	for _, d := range k.visible() {
		n += len(d.RightReps())
	}

	return n, nil
}

// NumberOfIdempotents counts the idempotents of the semigroup.
func (k *Konieczny[E, L, R]) NumberOfIdempotents() (uint64, error) {
	if !k.ran {
		return 0, ErrNotComputed
	}
	var n uint64
	for _, d := range k.visible() {
		n += d.NumberOfIdempotents()
	}

	return n, nil
}

// Contains reports whether x is a member of the semigroup. Elements
// whose degree exceeds the working degree, the adjoined identity, and
// elements whose λ- or ρ-value never arises are rejected without
// touching the classes. Elements of smaller degree (matrices living in
// a smaller block) resolve through the point lookups like any other.
func (k *Konieczny[E, L, R]) Contains(x E) (bool, error) {
	if !k.ran {
		return false, ErrNotComputed
	}
	if k.tr.Degree(x) > k.degree {
		return false, nil
	}
	if k.identityAdjoined && k.tr.Equal(x, k.one) {
		return false, nil
	}
	lv, err := k.tr.Lambda(x)
	if err != nil {
		return false, nil
	}
	rv, err := k.tr.Rho(x)
	if err != nil {
		return false, nil
	}
	if k.lambdaOrb.Position(lv) == orbit.NoPosition || k.rhoOrb.Position(rv) == orbit.NoPosition {
		return false, nil
	}
	rank := k.tr.Rank(x)
	for _, d := range k.visible() {
		if d.containsRank(x, rank) {
			return true, nil
		}
	}

	return false, nil
}

// DClassOf returns the D-class containing x, with ok=false when x is
// not a member of the semigroup.
func (k *Konieczny[E, L, R]) DClassOf(x E) (DClass[E], bool, error) {
	if !k.ran {
		return nil, false, ErrNotComputed
	}
	if k.tr.Degree(x) > k.degree {
		return nil, false, nil
	}
	if k.identityAdjoined && k.tr.Equal(x, k.one) {
		return nil, false, nil
	}
	rank := k.tr.Rank(x)
	for _, d := range k.visible() {
		if d.containsRank(x, rank) {
			return d, true, nil
		}
	}

	return nil, false, nil
}

// IsRegularElement reports whether x is a regular element of the
// monoid generated by the generators and the working-degree identity:
// whether its R-class admits a group H-class.
func (k *Konieczny[E, L, R]) IsRegularElement(x E) (bool, error) {
	if !k.ran {
		return false, ErrNotComputed
	}
	if k.tr.Degree(x) > k.degree {
		return false, nil
	}

	return k.isRegularElement(x), nil
}

// FindIdempotent locates the idempotent in the D-class of x. An
// idempotent x is returned as a copy of itself with ok=true. Otherwise
// ok is false when x is not regular, or when x's λ-value never arises
// in the computation.
func (k *Konieczny[E, L, R]) FindIdempotent(x E) (E, bool, error) {
	var zero E
	if !k.ran {
		return zero, false, ErrNotComputed
	}
	if k.tr.Degree(x) > k.degree {
		return zero, false, nil
	}
	e, ok := k.findIdem(x)

	return e, ok, nil
}

// intersect merges two sorted, deduplicated element slices into their
// intersection.
func (k *Konieczny[E, L, R]) intersect(a, b []E) []E {
	var out []E
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case k.tr.Equal(a[i], b[j]):
			out = append(out, a[i])
			i++
			j++
		case k.tr.Less(a[i], b[j]):
			i++
		default:
			j++
		}
	}

	return out
}

// sortDedup sorts batch by the trait order and removes duplicates.
func (k *Konieczny[E, L, R]) sortDedup(batch []E) []E {
	sort.Slice(batch, func(a, b int) bool { return k.tr.Less(batch[a], batch[b]) })
	out := batch[:0]
	for i, x := range batch {
		if i == 0 || !k.tr.Equal(out[len(out)-1], x) {
			out = append(out, x)
		}
	}

	return out
}
