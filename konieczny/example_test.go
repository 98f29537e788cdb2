package konieczny_test

import (
	"fmt"

	"github.com/katalvlaran/greens/konieczny"
	"github.com/katalvlaran/greens/transform"
)

// ExampleKonieczny decomposes the full transformation monoid on five
// points, generated by a transposition, a 5-cycle, and one collapsing
// map.
func ExampleKonieczny() {
	gens := []*transform.Transf{
		transform.MustNew(1, 0, 2, 3, 4),
		transform.MustNew(1, 2, 3, 4, 0),
		transform.MustNew(0, 0, 2, 3, 4),
	}
	k, err := konieczny.New[*transform.Transf, uint64, string](transform.Traits{}, gens)
	if err != nil {
		panic(err)
	}
	if err = k.Run(); err != nil {
		panic(err)
	}

	size, _ := k.Size()
	idems, _ := k.NumberOfIdempotents()
	classes, _ := k.DClasses()
	fmt.Println("size:", size)
	fmt.Println("idempotents:", idems)
	for _, d := range classes {
		fmt.Printf("rank %d: %d elements\n", d.Rank(), d.Size())
	}
	// Output:
	// size: 3125
	// idempotents: 196
	// rank 5: 120 elements
	// rank 4: 1200 elements
	// rank 3: 1500 elements
	// rank 2: 300 elements
	// rank 1: 5 elements
}
