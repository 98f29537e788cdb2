package konieczny

import "sort"

// nonRegularDClass is a D-class without idempotents. It leans on the
// two regular classes holding a left and a right identity of its
// representative: their H-classes, translated through the
// representative, intersect into this class's H-class, and their
// multiplier systems seed this class's left and right cosets.
type nonRegularDClass[E any, L comparable, R comparable] struct {
	baseDClass[E, L, R]

	leftIdemAbove  E
	rightIdemAbove E
	leftIdemClass  *regularDClass[E, L, R]
	rightIdemClass *regularDClass[E, L, R]

	lambdaPos map[L][]int // λ-value → positions in leftReps
	rhoPos    map[R][]int // ρ-value → positions in rightReps
}

// newNonRegular wraps a non-idempotent representative; the engine only
// constructs non-regular classes for elements with no group index.
func newNonRegular[E any, L comparable, R comparable](k *Konieczny[E, L, R], rep E) *nonRegularDClass[E, L, R] {
	return &nonRegularDClass[E, L, R]{
		baseDClass: newBase(k, rep),
		lambdaPos:  make(map[L][]int),
		rhoPos:     make(map[R][]int),
	}
}

// IsRegular reports false.
func (d *nonRegularDClass[E, L, R]) IsRegular() bool { return false }

// NumberOfIdempotents reports zero: a class with an idempotent is
// regular by definition.
func (d *nonRegularDClass[E, L, R]) NumberOfIdempotents() uint64 { return 0 }

func (d *nonRegularDClass[E, L, R]) initClass() {
	if d.computed {
		return
	}
	d.findIdemsAbove()
	d.computeClass()
	d.computed = true
}

// findIdemsAbove locates, among the previously constructed regular
// classes in reverse discovery order, a left identity idempotent e with
// rep·e = rep and a right identity f with f·rep = rep. Both exist: the
// representative lies in the ideals generated by each.
func (d *nonRegularDClass[E, L, R]) findIdemsAbove() {
	k := d.k
	leftFound, rightFound := false, false
	for ri := len(k.regular) - 1; ri >= 0 && (!leftFound || !rightFound); ri-- {
		reg := k.regular[ri]
		if !leftFound {
			for _, e := range reg.LeftIdemReps() {
				if k.tr.Equal(k.mul(d.rep, e), d.rep) {
					d.leftIdemAbove = e
					d.leftIdemClass = reg
					leftFound = true
					break
				}
			}
		}
		if !rightFound {
			for _, f := range reg.RightIdemReps() {
				if k.tr.Equal(k.mul(f, d.rep), d.rep) {
					d.rightIdemAbove = f
					d.rightIdemClass = reg
					rightFound = true
					break
				}
			}
		}
	}
}

// computeClass builds the H-class, the left and right representatives,
// and their inverted multipliers in one pass over the idempotents'
// translated H-classes.
func (d *nonRegularDClass[E, L, R]) computeClass() {
	k := d.k

	leftLi, leftRi, _ := d.leftIdemClass.indexPositions(d.leftIdemAbove)
	leftIdemLeftMult := d.leftIdemClass.leftMults[leftLi]
	leftIdemRightMult := d.leftIdemClass.rightMults[leftRi]

	rightLi, rightRi, _ := d.rightIdemClass.indexPositions(d.rightIdemAbove)
	rightIdemLeftMult := d.rightIdemClass.leftMults[rightLi]
	rightIdemRightMult := d.rightIdemClass.rightMults[rightRi]

	leftIdemH := make([]E, 0, len(d.leftIdemClass.hClass))
	for _, h := range d.leftIdemClass.hClass {
		leftIdemH = append(leftIdemH, k.mul(leftIdemRightMult, h, leftIdemLeftMult))
	}
	rightIdemH := make([]E, 0, len(d.rightIdemClass.hClass))
	for _, h := range d.rightIdemClass.hClass {
		rightIdemH = append(rightIdemH, k.mul(rightIdemRightMult, h, rightIdemLeftMult))
	}

	leftIdemLeftReps := make([]E, 0, len(d.leftIdemClass.leftMults))
	for _, b := range d.leftIdemClass.leftMults {
		leftIdemLeftReps = append(leftIdemLeftReps, k.mul(leftIdemRightMult, d.leftIdemClass.rep, b))
	}
	rightIdemRightReps := make([]E, 0, len(d.rightIdemClass.rightMults))
	for _, c := range d.rightIdemClass.rightMults {
		rightIdemRightReps = append(rightIdemRightReps, k.mul(c, d.rightIdemClass.rep, rightIdemLeftMult))
	}

	// H = (right idem H-class)·rep ∩ rep·(left idem H-class).
	hex := make([]E, 0, len(rightIdemH))
	for _, t := range rightIdemH {
		hex = append(hex, k.mul(t, d.rep))
	}
	xhf := make([]E, 0, len(leftIdemH))
	for _, s := range leftIdemH {
		xhf = append(xhf, k.mul(d.rep, s))
	}
	hex = k.sortDedup(hex)
	xhf = k.sortDedup(xhf)
	d.recordHClass(k.intersect(hex, xhf))

	// Left cosets: distinct H·x·h·w translate sets, one representative
	// and multiplier pair each.
	cosets := newVecSet(k.tr.Hash, k.tr.Equal)
	for _, h := range leftIdemH {
		for i, w := range leftIdemLeftReps {
			coset := make([]E, 0, len(d.hClass))
			for _, s := range d.hClass {
				coset = append(coset, k.mul(s, h, w))
			}
			sort.Slice(coset, func(a, b int) bool { return k.tr.Less(coset[a], coset[b]) })
			if !cosets.add(coset) {
				continue
			}
			a := k.mul(d.rep, h, w)
			inv := k.mul(
				k.groupInverse(d.leftIdemAbove,
					k.mul(w, d.leftIdemClass.leftMultsInv[i], leftIdemLeftMult)),
				k.groupInverse(d.leftIdemAbove, h),
			)
			d.lambdaPos[k.lambda(a)] = append(d.lambdaPos[k.lambda(a)], len(d.leftReps))
			d.leftReps = append(d.leftReps, a)
			d.leftMults = append(d.leftMults, k.mul(h, w))
			d.leftMultsInv = append(d.leftMultsInv,
				k.mul(d.leftIdemClass.leftMultsInv[i], leftIdemLeftMult, inv))
		}
	}

	// Right cosets, symmetrically.
	cosets = newVecSet(k.tr.Hash, k.tr.Equal)
	for _, h := range rightIdemH {
		for i, z := range rightIdemRightReps {
			coset := make([]E, 0, len(d.hClass))
			for _, s := range d.hClass {
				coset = append(coset, k.mul(z, h, s))
			}
			sort.Slice(coset, func(a, b int) bool { return k.tr.Less(coset[a], coset[b]) })
			if !cosets.add(coset) {
				continue
			}
			b := k.mul(z, h, d.rep)
			inv := k.mul(
				k.groupInverse(d.rightIdemAbove, h),
				k.groupInverse(d.rightIdemAbove,
					k.mul(rightIdemRightMult, d.rightIdemClass.rightMultsInv[i], z)),
			)
			d.rhoPos[k.rho(b)] = append(d.rhoPos[k.rho(b)], len(d.rightReps))
			d.rightReps = append(d.rightReps, b)
			d.rightMults = append(d.rightMults, k.mul(z, h))
			d.rightMultsInv = append(d.rightMultsInv,
				k.mul(inv, rightIdemRightMult, d.rightIdemClass.rightMultsInv[i]))
		}
	}
}

// containsElt tests membership through the per-(λ, ρ) multi-index
// tables: some pair of recorded cosets must steer x into the H-class.
func (d *nonRegularDClass[E, L, R]) containsElt(x E) bool {
	d.initClass()
	k := d.k
	lis, ok := d.lambdaPos[k.lambda(x)]
	if !ok {
		return false
	}
	ris, ok := d.rhoPos[k.rho(x)]
	if !ok {
		return false
	}
	for _, i := range lis {
		for _, j := range ris {
			if d.hSet.contains(k.mul(d.rightMultsInv[j], x, d.leftMultsInv[i])) {
				return true
			}
		}
	}

	return false
}

func (d *nonRegularDClass[E, L, R]) containsRank(x E, rank int) bool {
	return rank == d.rank && d.containsElt(x)
}

func (d *nonRegularDClass[E, L, R]) coveringReps() []E {
	d.initClass()

	return d.covering(d)
}
