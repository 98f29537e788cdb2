package orbit

import (
	"fmt"

	"github.com/katalvlaran/greens/cache"
)

// Orbit enumerates the closure of a seed set under a generator set, and
// carries the Schreier forest, the generator edge table, the SCC
// decomposition, and the to/from-root multipliers of every point.
//
// An Orbit is not safe for concurrent use.
type Orbit[E any, P comparable] struct {
	side Side
	ops  ElementOps[E]
	act  Action[E, P]
	opts Options
	pool *cache.Cache[E]

	gens   []E
	points []P
	pos    map[P]int

	// Schreier forest: pathGen[i] is the generator index through which
	// points[i] was first reached from points[pathParent[i]]; -1/-1 for
	// seeds.
	pathGen    []int
	pathParent []int

	// edges[i][g] is the index of the point reached by applying
	// generator g to points[i]; NoPosition for targets shunted aside by
	// a grade filter.
	edges [][]int

	sccID    []int
	sccComps [][]int // member indices per SCC, root first
	toRoot   []E
	fromRoot []E

	// accept, when non-nil, filters newly discovered points; rejected
	// points land in deferred instead of the orbit. Set by Graded.
	accept   func(P) bool
	deferred map[P]struct{}

	frozen bool
	done   bool
}

// New returns an empty orbit of the given action flavour.
func New[E any, P comparable](side Side, ops ElementOps[E], act Action[E, P], opts ...Option) *Orbit[E, P] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	hint := o.CapacityHint

	return &Orbit[E, P]{
		side:     side,
		ops:      ops,
		act:      act,
		opts:     o,
		pool:     cache.New(ops.Clone),
		points:   make([]P, 0, hint),
		pos:      make(map[P]int, hint),
		deferred: make(map[P]struct{}),
	}
}

// AddSeed pushes a point and returns its index. Re-adding a known point
// is a no-op that returns the existing index. Adding a seed marks the
// orbit as unfinished; Run must be called again to restore closure.
func (o *Orbit[E, P]) AddSeed(pt P) int {
	if i, ok := o.pos[pt]; ok {
		return i
	}
	i := len(o.points)
	o.points = append(o.points, pt)
	o.pos[pt] = i
	o.pathGen = append(o.pathGen, -1)
	o.pathParent = append(o.pathParent, -1)
	o.done = false

	return i
}

// AddGenerator inserts g as a generator. It fails with ErrFrozen once
// Run has been called; Reset lifts the freeze.
func (o *Orbit[E, P]) AddGenerator(g E) error {
	if o.frozen {
		return ErrFrozen
	}
	o.gens = append(o.gens, o.ops.Clone(g))

	return nil
}

// Reset discards the enumeration state — points, forest, edge table,
// SCC data and multipliers — and unfreezes the generator set. The
// generators themselves are kept; seeds must be re-added.
func (o *Orbit[E, P]) Reset() {
	o.points = o.points[:0]
	o.pos = make(map[P]int)
	o.pathGen = o.pathGen[:0]
	o.pathParent = o.pathParent[:0]
	o.edges = nil
	o.sccID = nil
	o.sccComps = nil
	o.toRoot = nil
	o.fromRoot = nil
	o.deferred = make(map[P]struct{})
	o.frozen = false
	o.done = false
}

// Run closes the orbit under the generators and recomputes the edge
// table, the SCC decomposition, and the multipliers. Running a finished
// orbit is a no-op.
func (o *Orbit[E, P]) Run() error {
	if o.done {
		return nil
	}
	if len(o.gens) == 0 {
		return ErrNoGenerators
	}
	o.frozen = true

	if err := o.close(); err != nil {
		return err
	}
	o.computeSCC()
	if err := o.computeMultipliers(); err != nil {
		return err
	}
	o.done = true

	return nil
}

// close runs the BFS closure over (index, generator) pairs, rebuilding
// the edge table from scratch.
func (o *Orbit[E, P]) close() error {
	ctx := o.opts.Ctx
	o.edges = make([][]int, 0, len(o.points))
	for i := 0; i < len(o.points); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row := make([]int, len(o.gens))
		for gi, g := range o.gens {
			np, err := o.act(o.points[i], g)
			if err != nil {
				return fmt.Errorf("orbit: action on point %d with generator %d: %w", i, gi, err)
			}
			j, ok := o.pos[np]
			if !ok {
				if o.accept != nil && !o.accept(np) {
					o.deferred[np] = struct{}{}
					row[gi] = NoPosition
					continue
				}
				j = len(o.points)
				o.points = append(o.points, np)
				o.pos[np] = j
				o.pathGen = append(o.pathGen, gi)
				o.pathParent = append(o.pathParent, i)
			}
			row[gi] = j
		}
		o.edges = append(o.edges, row)
	}

	return nil
}

// IsDone reports whether the orbit is closed and its SCC data current.
func (o *Orbit[E, P]) IsDone() bool { return o.done }

// Size returns the number of points in the orbit.
func (o *Orbit[E, P]) Size() int { return len(o.points) }

// At returns the point at index i. i must be in [0, Size()).
func (o *Orbit[E, P]) At(i int) P { return o.points[i] }

// Position returns the index of pt, or NoPosition when pt is not in the
// orbit.
func (o *Orbit[E, P]) Position(pt P) int {
	if i, ok := o.pos[pt]; ok {
		return i
	}

	return NoPosition
}

// Generators returns a borrow of the generator slice; callers must not
// mutate it.
func (o *Orbit[E, P]) Generators() []E { return o.gens }

// PathGenerator returns the Schreier-forest generator index of point i,
// or -1 for a seed.
func (o *Orbit[E, P]) PathGenerator(i int) int { return o.pathGen[i] }

// PathParent returns the Schreier-forest parent index of point i, or -1
// for a seed.
func (o *Orbit[E, P]) PathParent(i int) int { return o.pathParent[i] }

// Edge returns the index of the point reached by applying generator g
// to points[i], as recorded in the edge table.
func (o *Orbit[E, P]) Edge(i, g int) int { return o.edges[i][g] }

// SCCID returns the strongly-connected-component id of point i.
// Ids increase in the order components were completed.
func (o *Orbit[E, P]) SCCID(i int) int { return o.sccID[i] }

// SCCCount returns the number of strongly connected components.
func (o *Orbit[E, P]) SCCCount() int { return len(o.sccComps) }

// SCC returns the member indices of component id, root first. Callers
// must not mutate the returned slice.
func (o *Orbit[E, P]) SCC(id int) []int { return o.sccComps[id] }

// MultiplierToRoot returns an element m, a product of generators, with
// points[i]·m = points[root(i)] for a Right orbit, m·points[i] for Left.
func (o *Orbit[E, P]) MultiplierToRoot(i int) E { return o.toRoot[i] }

// MultiplierFromRoot returns an element m with points[root(i)]·m =
// points[i] for a Right orbit, m·points[root(i)] for Left.
func (o *Orbit[E, P]) MultiplierFromRoot(i int) E { return o.fromRoot[i] }

// EvaluatePath returns the product of the Schreier-forest generators
// carrying the seed of point i to points[i], or ok=false for a seed
// (the empty word has no degree to materialise an identity from).
func (o *Orbit[E, P]) EvaluatePath(i int) (E, bool, error) {
	var zero E
	if o.pathGen[i] < 0 {
		return zero, false, nil
	}
	// Collect generator indices from i back to its seed.
	var word []int
	for j := i; o.pathGen[j] >= 0; j = o.pathParent[j] {
		word = append(word, o.pathGen[j])
	}
	out := o.ops.Clone(o.gens[word[len(word)-1]])
	for w := len(word) - 2; w >= 0; w-- {
		next, err := o.compose(out, o.gens[word[w]])
		if err != nil {
			return zero, false, err
		}
		out = next
	}

	return out, true, nil
}

// compose continues a path product by one more generator, honouring the
// action flavour: acc·g for Right, g·acc for Left.
func (o *Orbit[E, P]) compose(acc, g E) (E, error) {
	if o.side == Right {
		return o.mulPair(acc, g)
	}

	return o.mulPair(g, acc)
}
