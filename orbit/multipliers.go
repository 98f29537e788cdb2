package orbit

import "github.com/katalvlaran/greens/cache"

// computeMultipliers fills toRoot and fromRoot for every point.
//
// For each SCC a BFS from the root over the induced edges yields
// fromRoot as the product of the generators along the tree path; a
// second BFS over the reversed induced edges yields toRoot — every point
// of an SCC admits a backward path to the root by definition. Products
// honour the action flavour and go through the pooled scratch element.
func (o *Orbit[E, P]) computeMultipliers() error {
	n := len(o.points)
	deg := 0
	for _, g := range o.gens {
		if d := o.ops.Degree(g); d > deg {
			deg = d
		}
	}
	one, err := o.ops.One(deg)
	if err != nil {
		return err
	}
	o.toRoot = make([]E, n)
	o.fromRoot = make([]E, n)
	if o.pool.Acquirable() == 0 {
		o.pool.Push(o.gens[0], 2)
	}

	have := make([]bool, n)
	type rev struct{ from, gen int }
	for _, comp := range o.sccComps {
		root := comp[0]
		id := o.sccID[root]

		// Forward BFS: fromRoot along induced tree edges.
		o.fromRoot[root] = o.ops.Clone(one)
		have[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for gi, w := range o.edges[u] {
				if w == NoPosition || o.sccID[w] != id || have[w] {
					continue
				}
				m, err := o.extend(o.fromRoot[u], o.gens[gi], false)
				if err != nil {
					return err
				}
				o.fromRoot[w] = m
				have[w] = true
				queue = append(queue, w)
			}
		}

		// Reverse adjacency restricted to the component.
		back := make(map[int][]rev, len(comp))
		for _, u := range comp {
			for gi, w := range o.edges[u] {
				if w != NoPosition && o.sccID[w] == id {
					back[w] = append(back[w], rev{from: u, gen: gi})
				}
			}
		}

		// Backward BFS: toRoot against the induced edges.
		haveTo := make(map[int]bool, len(comp))
		o.toRoot[root] = o.ops.Clone(one)
		haveTo[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, e := range back[v] {
				if haveTo[e.from] {
					continue
				}
				m, err := o.extend(o.toRoot[v], o.gens[e.gen], true)
				if err != nil {
					return err
				}
				o.toRoot[e.from] = m
				haveTo[e.from] = true
				queue = append(queue, e.from)
			}
		}
	}

	return nil
}

// extend continues a multiplier product by one generator.
//
// Forward (backward=false), edge u -g-> w:
//
//	Right: fromRoot[w] = fromRoot[u]·g   (root·fromRoot[u]·g = points[w])
//	Left:  fromRoot[w] = g·fromRoot[u]   (g·fromRoot[u]·root = points[w])
//
// Backward (backward=true), edge u -g-> v with toRoot[v] known:
//
//	Right: toRoot[u] = g·toRoot[v]       (points[u]·g·toRoot[v] = root)
//	Left:  toRoot[u] = toRoot[v]·g       (toRoot[v]·g·points[u] = root)
func (o *Orbit[E, P]) extend(acc, g E, backward bool) (E, error) {
	if backward {
		if o.side == Right {
			return o.mulPair(g, acc)
		}

		return o.mulPair(acc, g)
	}
	if o.side == Right {
		return o.mulPair(acc, g)
	}

	return o.mulPair(g, acc)
}

// mulPair returns a·b as a fresh element via a pooled scratch.
func (o *Orbit[E, P]) mulPair(a, b E) (E, error) {
	if o.pool.Acquirable() == 0 {
		o.pool.Push(o.gens[0], 1)
	}
	guard, err := cache.NewGuard(o.pool)
	if err != nil {
		return a, err
	}
	defer guard.Release()
	tmp := guard.Value()
	o.ops.Product(tmp, a, b, 0)

	return o.ops.Clone(tmp), nil
}
