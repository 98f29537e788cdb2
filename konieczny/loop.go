package konieczny

import "fmt"

// computeDClasses runs the rank-graded main loop: the top class is
// seeded at the identity, and every new class's covering
// representatives feed the per-rank worklists until no representative
// of positive rank remains.
func (k *Konieczny[E, L, R]) computeDClasses() error {
	ctx := k.opts.Ctx
	maxRank := k.tr.Rank(k.one)
	regReps := make([][]repEntry[E], maxRank+1)
	nonRegReps := make([][]repEntry[E], maxRank+1)
	ranks := newRankSet(maxRank)
	ranks.insert(0)

	top := newRegular(k, k.tr.Clone(k.one))
	k.addClass(top)
	top.initClass()
	k.dispatch(top.coveringReps(), top.Index(), regReps, nonRegReps, ranks)

	for ranks.top() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r := ranks.top()
		var batch []repEntry[E]
		regFlag := false
		// Regular representatives first at equal rank: their classes
		// are the idempotent anchors the non-regular ones search.
		if len(regReps[r]) > 0 {
			regFlag = true
			batch, regReps[r] = regReps[r], nil
		} else {
			batch, nonRegReps[r] = nonRegReps[r], nil
		}

		// Drop representatives already contained in a known class,
		// recording the D-relation edge regardless.
		next := batch[:0]
		for _, e := range batch {
			contained := false
			for i, d := range k.classes {
				if d.containsRank(e.elt, r) {
					k.dRels[i] = append(k.dRels[i], e.parent)
					contained = true
					break
				}
			}
			if !contained {
				next = append(next, e)
			}
		}

		for len(next) > 0 {
			e := next[len(next)-1]
			next = next[:len(next)-1]

			var d dclass[E]
			if regFlag {
				idem, ok := k.findIdem(e.elt)
				if !ok {
					return fmt.Errorf("konieczny: rank %d representative queued as regular has no idempotent", r)
				}
				d = newRegular(k, idem)
			} else {
				d = newNonRegular(k, e.elt)
			}
			k.addClass(d)
			d.initClass()
			k.dispatch(d.coveringReps(), d.Index(), regReps, nonRegReps, ranks)

			// D-containment dominates: re-filter the remaining batch
			// against the class just created.
			kept := next[:0]
			for _, f := range next {
				if d.containsElt(f.elt) {
					k.dRels[d.Index()] = append(k.dRels[d.Index()], f.parent)
				} else {
					kept = append(kept, f)
				}
			}
			next = kept
		}

		if len(regReps[r]) == 0 && len(nonRegReps[r]) == 0 {
			ranks.erase(r)
		}
	}

	return nil
}

// addClass appends d to the discovery-ordered class vector and opens
// its D-relation edge list.
func (k *Konieczny[E, L, R]) addClass(d dclass[E]) {
	d.setIndex(len(k.classes))
	k.classes = append(k.classes, d)
	k.dRels = append(k.dRels, nil)
	if rd, ok := d.(*regularDClass[E, L, R]); ok {
		k.regular = append(k.regular, rd)
	}
}

// dispatch routes covering representatives into the per-rank worklists,
// tagged with the index of the class that produced them.
func (k *Konieczny[E, L, R]) dispatch(reps []E, parent int, regReps, nonRegReps [][]repEntry[E], ranks *rankSet) {
	for _, x := range reps {
		r := k.tr.Rank(x)
		ranks.insert(r)
		if k.isRegularElement(x) {
			regReps[r] = append(regReps[r], repEntry[E]{elt: x, parent: parent})
		} else {
			nonRegReps[r] = append(nonRegReps[r], repEntry[E]{elt: x, parent: parent})
		}
	}
}
