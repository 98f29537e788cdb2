package konieczny

// regularDClass is a D-class containing an idempotent. Its
// representative is the idempotent located for the seeding element, its
// left and right indices live in the λ- and ρ-orbit SCCs of that
// representative, and membership reduces to two point lookups plus one
// H-class test.
type regularDClass[E any, L comparable, R comparable] struct {
	baseDClass[E, L, R]

	hGens         []E
	leftIndices   []int // λ-orbit indices admitting a group H-class
	rightIndices  []int // ρ-orbit indices admitting a group H-class
	leftIdemReps  []E
	rightIdemReps []E
	lambdaPos     map[L]int // λ-value → position in leftIndices
	rhoPos        map[R]int // ρ-value → position in rightIndices
}

// newRegular wraps an idempotent representative. The caller guarantees
// idempotency; the engine only constructs regular classes from findIdem
// results.
func newRegular[E any, L comparable, R comparable](k *Konieczny[E, L, R], idemRep E) *regularDClass[E, L, R] {
	return &regularDClass[E, L, R]{
		baseDClass: newBase(k, idemRep),
		lambdaPos:  make(map[L]int),
		rhoPos:     make(map[R]int),
	}
}

// IsRegular reports true.
func (d *regularDClass[E, L, R]) IsRegular() bool { return true }

func (d *regularDClass[E, L, R]) initClass() {
	if d.computed {
		return
	}
	d.computeLeftIndices()
	d.computeRightIndices()
	d.computeMults()
	d.computeReps()
	d.computeIdemReps()
	d.computeHGens()
	d.computeHClass()
	d.computed = true
}

// computeLeftIndices walks the λ-orbit SCC of the representative and
// admits every index whose L-class inside this D-class holds a group
// H-class. The search swaps the roles of rows and columns, so results
// are memoised in the engine's alt map.
func (d *regularDClass[E, L, R]) computeLeftIndices() {
	k := d.k
	lpos := k.lambdaOrb.Position(k.lambda(d.rep))
	rpos := k.rhoOrb.Position(k.rho(d.rep))
	lscc := k.lambdaOrb.SCCID(lpos)
	rscc := k.rhoOrb.SCCID(rpos)

	for _, i := range k.lambdaOrb.SCC(lscc) {
		key := altKey{rhoSCC: rscc, lambdaIdx: i}
		if _, ok := k.groupIndicesAlt[key]; !ok {
			found := NoIndex
			for _, j := range k.rhoOrb.SCC(rscc) {
				// z has λ-value at index i and ρ-value at index j; the
				// H-class of z is a group exactly when (i, j) is a
				// group position.
				z := k.mul(
					k.rhoOrb.MultiplierFromRoot(j),
					k.rhoOrb.MultiplierToRoot(rpos),
					d.rep,
					k.lambdaOrb.MultiplierToRoot(lpos),
					k.lambdaOrb.MultiplierFromRoot(i),
				)
				if k.isGroupElement(z) {
					found = j
					break
				}
			}
			k.groupIndicesAlt[key] = found
		}
		if k.groupIndicesAlt[key] != NoIndex {
			d.lambdaPos[k.lambdaOrb.At(i)] = len(d.leftIndices)
			d.leftIndices = append(d.leftIndices, i)
		}
	}
}

// computeRightIndices walks the ρ-orbit SCC of the representative and
// admits every index whose translated representative has a group index.
func (d *regularDClass[E, L, R]) computeRightIndices() {
	k := d.k
	rpos := k.rhoOrb.Position(k.rho(d.rep))
	rscc := k.rhoOrb.SCCID(rpos)
	for _, j := range k.rhoOrb.SCC(rscc) {
		x := k.mul(
			k.rhoOrb.MultiplierFromRoot(j),
			k.rhoOrb.MultiplierToRoot(rpos),
			d.rep,
		)
		if k.findGroupIndex(x) != NoIndex {
			d.rhoPos[k.rhoOrb.At(j)] = len(d.rightIndices)
			d.rightIndices = append(d.rightIndices, j)
		}
	}
}

// computeMults fills the multiplier pairs for every admitted index:
// left multipliers steer the representative's λ-value to the index and
// back, right multipliers its ρ-value.
func (d *regularDClass[E, L, R]) computeMults() {
	k := d.k
	lpos := k.lambdaOrb.Position(k.lambda(d.rep))
	rpos := k.rhoOrb.Position(k.rho(d.rep))

	for _, i := range d.leftIndices {
		b := k.mul(k.lambdaOrb.MultiplierToRoot(lpos), k.lambdaOrb.MultiplierFromRoot(i))
		c := k.mul(k.lambdaOrb.MultiplierToRoot(i), k.lambdaOrb.MultiplierFromRoot(lpos))
		d.leftMults = append(d.leftMults, b)
		d.leftMultsInv = append(d.leftMultsInv, c)
	}
	for _, j := range d.rightIndices {
		c := k.mul(k.rhoOrb.MultiplierFromRoot(j), k.rhoOrb.MultiplierToRoot(rpos))
		inv := k.mul(k.rhoOrb.MultiplierFromRoot(rpos), k.rhoOrb.MultiplierToRoot(j))
		d.rightMults = append(d.rightMults, c)
		d.rightMultsInv = append(d.rightMultsInv, inv)
	}
}

// computeReps materialises the left and right representatives from the
// multipliers.
func (d *regularDClass[E, L, R]) computeReps() {
	k := d.k
	d.leftReps = d.leftReps[:0]
	d.rightReps = d.rightReps[:0]
	for _, b := range d.leftMults {
		d.leftReps = append(d.leftReps, k.mul(d.rep, b))
	}
	for _, c := range d.rightMults {
		d.rightReps = append(d.rightReps, k.mul(c, d.rep))
	}
}

// computeIdemReps locates, for every admitted left (resp. right) index,
// the idempotent of the group H-class that justified its admission.
func (d *regularDClass[E, L, R]) computeIdemReps() {
	k := d.k
	lpos := k.lambdaOrb.Position(k.lambda(d.rep))
	rpos := k.rhoOrb.Position(k.rho(d.rep))
	lscc := k.lambdaOrb.SCCID(lpos)
	rscc := k.rhoOrb.SCCID(rpos)

	for ipos, i := range d.leftIndices {
		key := altKey{rhoSCC: rscc, lambdaIdx: i}
		kIdx := k.groupIndicesAlt[key]
		j := 0
		for d.rightIndices[j] != kIdx {
			j++
		}
		x := k.mul(d.rightMults[j], d.rep, d.leftMults[ipos])
		d.leftIdemReps = append(d.leftIdemReps, k.idemInH(x))
	}

	for jpos, j := range d.rightIndices {
		key := groupKey[R]{rho: k.rhoOrb.At(j), scc: lscc}
		kIdx := k.groupIndices[key]
		i := 0
		for d.leftIndices[i] != kIdx {
			i++
		}
		x := k.mul(d.rightMults[jpos], d.rep, d.leftMults[i])
		d.rightIdemReps = append(d.rightIdemReps, k.idemInH(x))
	}
}

// computeHGens derives the generators of the representative's H-class:
// every left representative extended by every generator is steered back
// into the H-class by the pre-computed right inverse of its landing
// L-class.
func (d *regularDClass[E, L, R]) computeHGens() {
	k := d.k
	rpos := k.rhoOrb.Position(k.rho(d.rep))
	rscc := k.rhoOrb.SCCID(rpos)

	rightInvs := make([]E, 0, len(d.leftIndices))
	for ipos, i := range d.leftIndices {
		p := d.leftReps[ipos]
		key := altKey{rhoSCC: rscc, lambdaIdx: i}
		kIdx := k.groupIndicesAlt[key]
		j := d.rhoPos[k.rhoOrb.At(kIdx)]
		q := d.rightReps[j]
		// The inverse of p·q in the group H-class of the representative.
		y := k.groupInverse(d.rep, k.mul(p, q))
		rightInvs = append(rightInvs, k.mul(q, y))
	}

	var gens []E
	seen := newEltSet(k.tr.Hash, k.tr.Equal)
	for ipos := range d.leftIndices {
		p := d.leftReps[ipos]
		for _, g := range k.gens {
			x := k.mul(p, g)
			s := k.lambda(x)
			for jpos, j := range d.leftIndices {
				if k.lambdaOrb.At(j) == s {
					h := k.mul(x, rightInvs[jpos])
					if seen.add(h) {
						gens = append(gens, h)
					}
					break
				}
			}
		}
	}
	d.hGens = gens
}

// computeHClass closes the H-generators into the full H-class.
func (d *regularDClass[E, L, R]) computeHClass() {
	k := d.k
	set := newEltSet(k.tr.Hash, k.tr.Equal)
	h := make([]E, 0, len(d.hGens))
	for _, x := range d.hGens {
		if set.add(x) {
			h = append(h, x)
		}
	}
	for i := 0; i < len(h); i++ {
		for _, g := range d.hGens {
			y := k.mul(h[i], g)
			if set.add(y) {
				h = append(h, y)
			}
		}
	}
	d.recordHClass(h)
}

// indexPositions returns the positions of x's L- and R-class inside the
// class, with ok=false when either point is foreign to it.
func (d *regularDClass[E, L, R]) indexPositions(x E) (int, int, bool) {
	d.initClass()
	li, ok := d.lambdaPos[d.k.lambda(x)]
	if !ok {
		return 0, 0, false
	}
	ri, ok := d.rhoPos[d.k.rho(x)]
	if !ok {
		return 0, 0, false
	}

	return li, ri, true
}

// containsElt verifies membership fully: the (λ, ρ) lookup places x on
// a candidate H-class, and the steered translate must then lie in the
// representative's H-class. The lookup alone would wrongly admit
// ambient elements that share both points with a member.
func (d *regularDClass[E, L, R]) containsElt(x E) bool {
	li, ri, ok := d.indexPositions(x)
	if !ok {
		return false
	}
	h := d.k.mul(d.rightMultsInv[ri], x, d.leftMultsInv[li])

	return d.hSet.contains(h)
}

func (d *regularDClass[E, L, R]) containsRank(x E, rank int) bool {
	return rank == d.rank && d.containsElt(x)
}

// NumberOfIdempotents counts the group H-classes of the class, one
// idempotent each.
func (d *regularDClass[E, L, R]) NumberOfIdempotents() uint64 {
	d.initClass()
	var n uint64
	for jpos := range d.rightIndices {
		for ipos := range d.leftIndices {
			z := d.k.mul(d.rightMults[jpos], d.rep, d.leftMults[ipos])
			if d.k.isGroupElement(z) {
				n++
			}
		}
	}

	return n
}

// LeftIdemReps returns the idempotent representative of every L-class.
func (d *regularDClass[E, L, R]) LeftIdemReps() []E {
	d.initClass()

	return d.leftIdemReps
}

// RightIdemReps returns the idempotent representative of every R-class.
func (d *regularDClass[E, L, R]) RightIdemReps() []E {
	d.initClass()

	return d.rightIdemReps
}

func (d *regularDClass[E, L, R]) coveringReps() []E {
	d.initClass()

	return d.covering(d)
}
