package orbit_test

import (
	"testing"

	"github.com/katalvlaran/greens/orbit"
	"github.com/katalvlaran/greens/transform"
)

// BenchmarkOrbit_Lambda closes the λ-orbit of a degree-8 monoid: 255
// subset points under four generators.
func BenchmarkOrbit_Lambda(b *testing.B) {
	gens := []*transform.Transf{
		transform.MustNew(1, 0, 2, 3, 4, 5, 6, 7),
		transform.MustNew(1, 2, 3, 4, 5, 6, 7, 0),
		transform.MustNew(0, 0, 2, 3, 4, 5, 6, 7),
		transform.MustNew(0, 1, 2, 3, 4, 5, 6, 6),
	}
	seed, err := tr.Lambda(transform.Identity(8))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o := orbit.New[*transform.Transf, uint64](orbit.Right, tr,
			func(pt uint64, x *transform.Transf) (uint64, error) { return tr.LambdaAct(pt, x) })
		for _, g := range gens {
			if err := o.AddGenerator(g); err != nil {
				b.Fatal(err)
			}
		}
		o.AddSeed(seed)
		if err := o.Run(); err != nil {
			b.Fatal(err)
		}
		if o.Size() != 255 {
			b.Fatalf("orbit size %d", o.Size())
		}
	}
}
