package konieczny

// baseDClass carries the state shared by regular and non-regular
// D-classes: the representative, the rank, the H-class of the
// representative, and the left/right multiplier pairs with the
// representatives they generate.
//
// Elements stored here are owned by the class; the engine hands
// ownership over on construction and reclaims it with the engine's
// lifetime.
type baseDClass[E any, L comparable, R comparable] struct {
	k        *Konieczny[E, L, R]
	idx      int
	rep      E
	rank     int
	computed bool

	hClass []E
	hSet   *eltSet[E]

	leftMults     []E
	leftMultsInv  []E
	leftReps      []E
	rightMults    []E
	rightMultsInv []E
	rightReps     []E
}

func newBase[E any, L comparable, R comparable](k *Konieczny[E, L, R], rep E) baseDClass[E, L, R] {
	return baseDClass[E, L, R]{
		k:    k,
		idx:  -1,
		rep:  rep,
		rank: k.tr.Rank(rep),
		hSet: newEltSet(k.tr.Hash, k.tr.Equal),
	}
}

// Rep returns the class representative.
func (d *baseDClass[E, L, R]) Rep() E { return d.rep }

// Rank returns the common rank of every member.
func (d *baseDClass[E, L, R]) Rank() int { return d.rank }

// Index returns the class's position in discovery order.
func (d *baseDClass[E, L, R]) Index() int { return d.idx }

func (d *baseDClass[E, L, R]) setIndex(i int) { d.idx = i }

// HClass returns the H-class of the representative.
func (d *baseDClass[E, L, R]) HClass() []E { return d.hClass }

// LeftReps returns one representative per L-class.
func (d *baseDClass[E, L, R]) LeftReps() []E { return d.leftReps }

// RightReps returns one representative per R-class.
func (d *baseDClass[E, L, R]) RightReps() []E { return d.rightReps }

// Size returns |H|·|L-reps|·|R-reps|.
func (d *baseDClass[E, L, R]) Size() uint64 {
	return uint64(len(d.hClass)) * uint64(len(d.leftReps)) * uint64(len(d.rightReps))
}

// RelationsAbove returns this class's forward edges in the D-relation
// graph.
func (d *baseDClass[E, L, R]) RelationsAbove() []int { return d.k.dRels[d.idx] }

// covering returns the covering representatives of the class: every
// left (or right, whichever orbit is smaller) representative extended
// by every generator, minus the extensions the class absorbs, sorted
// and deduplicated. These are the candidate representatives for classes
// of equal or smaller rank.
func (d *baseDClass[E, L, R]) covering(self dclass[E]) []E {
	k := d.k
	var out []E
	if k.lambdaOrb.Size() < k.rhoOrb.Size() {
		for _, w := range d.leftReps {
			for _, g := range k.gens {
				x := k.mul(w, g)
				if !self.containsElt(x) {
					out = append(out, x)
				}
			}
		}
	} else {
		for _, z := range d.rightReps {
			for _, g := range k.gens {
				x := k.mul(g, z)
				if !self.containsElt(x) {
					out = append(out, x)
				}
			}
		}
	}

	return k.sortDedup(out)
}

// recordHClass registers the enumerated H-class and its membership set.
func (d *baseDClass[E, L, R]) recordHClass(h []E) {
	d.hClass = h
	for _, x := range h {
		d.hSet.add(x)
	}
}
