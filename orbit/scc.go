package orbit

// computeSCC runs Gabow's path-based strong component algorithm over the
// generator edge table, iteratively. Component ids are assigned in the
// order components complete; edges are examined in generator-index
// order; the first index pushed in a component becomes its root and
// leads its member list.
func (o *Orbit[E, P]) computeSCC() {
	n := len(o.points)
	o.sccID = make([]int, n)
	o.sccComps = o.sccComps[:0]

	pre := make([]int, n)
	for i := range pre {
		pre[i] = -1
		o.sccID[i] = -1
	}

	type frame struct {
		v  int // vertex
		ei int // next edge (generator) index to examine
	}

	var (
		stackS []int // candidate members, in push order
		stackB []int // component boundaries
		frames []frame
		next   int // preorder counter
	)

	for v0 := 0; v0 < n; v0++ {
		if pre[v0] >= 0 {
			continue
		}
		pre[v0] = next
		next++
		stackS = append(stackS, v0)
		stackB = append(stackB, v0)
		frames = append(frames[:0], frame{v: v0})

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.ei < len(o.edges[f.v]) {
				w := o.edges[f.v][f.ei]
				f.ei++
				if w == NoPosition {
					continue
				}
				if pre[w] < 0 {
					pre[w] = next
					next++
					stackS = append(stackS, w)
					stackB = append(stackB, w)
					frames = append(frames, frame{v: w})
				} else if o.sccID[w] < 0 {
					// Back/cross edge into the open part of the path:
					// contract boundaries above w.
					for pre[stackB[len(stackB)-1]] > pre[w] {
						stackB = stackB[:len(stackB)-1]
					}
				}
				continue
			}

			// All edges of f.v examined.
			if stackB[len(stackB)-1] == f.v {
				stackB = stackB[:len(stackB)-1]
				id := len(o.sccComps)
				var comp []int
				for {
					w := stackS[len(stackS)-1]
					stackS = stackS[:len(stackS)-1]
					o.sccID[w] = id
					comp = append(comp, w)
					if w == f.v {
						break
					}
				}
				// comp was collected in reverse push order; the root
				// (first pushed) must lead.
				for l, r := 0, len(comp)-1; l < r; l, r = l+1, r-1 {
					comp[l], comp[r] = comp[r], comp[l]
				}
				o.sccComps = append(o.sccComps, comp)
			}
			frames = frames[:len(frames)-1]
		}
	}
}
