// Package konieczny: shared types, sentinel errors, and functional
// options.
package konieczny

import (
	"context"
	"errors"
)

var (
	// ErrEmptyGenerators is returned by New when no generators are given.
	ErrEmptyGenerators = errors.New("konieczny: at least one generator is required")

	// ErrNotComputed is returned by accessors invoked before Run.
	ErrNotComputed = errors.New("konieczny: decomposition not computed, call Run first")
)

// NoIndex is the sentinel recorded in the group-index memo maps for a
// search that found no group index.
const NoIndex = -1

// DClass is the read-only view of one D-class of the decomposition.
//
// Left and right representatives iterate in λ-SCC (resp. ρ-SCC) index
// order for regular classes and in discovery order for non-regular
// ones. Returned slices are borrows; callers must not mutate them.
type DClass[E any] interface {
	// Rep returns the class representative (an idempotent for regular
	// classes).
	Rep() E

	// Rank returns the common rank of every member.
	Rank() int

	// Size returns |H|·|L-reps|·|R-reps|, the number of elements.
	Size() uint64

	// IsRegular reports whether the class contains an idempotent.
	IsRegular() bool

	// Index returns the class's stable position in discovery order.
	Index() int

	// HClass returns the H-class of the representative.
	HClass() []E

	// LeftReps returns one representative per L-class.
	LeftReps() []E

	// RightReps returns one representative per R-class.
	RightReps() []E

	// NumberOfIdempotents counts the idempotents in the class; zero for
	// a non-regular class.
	NumberOfIdempotents() uint64

	// RelationsAbove returns the indices of representative batches
	// recorded against this class in the D-relation graph: the classes
	// whose covering representatives this class absorbed.
	RelationsAbove() []int
}

// dclass is the engine-side surface of a D-class.
type dclass[E any] interface {
	DClass[E]

	initClass()
	containsElt(x E) bool
	containsRank(x E, rank int) bool
	coveringReps() []E
	setIndex(i int)
}

// repEntry queues a candidate representative together with the index of
// the D-class whose covering representatives produced it.
type repEntry[E any] struct {
	elt    E
	parent int
}

// Option configures optional behavior of the engine.
type Option func(*Options)

// Options holds configurable parameters for the decomposition.
type Options struct {
	// Ctx allows cancellation; checked once per rank stratum and once
	// per orbit expansion. Defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option installing ctx for cancellation.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// groupKey memoises the group-index search: the ρ-value of the probe
// and the SCC id of its λ-value.
type groupKey[R comparable] struct {
	rho R
	scc int
}

// altKey memoises the swapped search used while building the left
// indices of a regular class: the SCC id of the representative's
// ρ-value and a λ-orbit index.
type altKey struct {
	rhoSCC    int
	lambdaIdx int
}
