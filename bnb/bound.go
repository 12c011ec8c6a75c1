// Package bnb — fractional relaxation bound.
//
// Relax is the per-node bound of the search. Given the ratio-ordered items,
// the capacity and the current Assignment it:
//  1. packs every fixed one (both vectors = 1) and sums their weight;
//  2. stops with Infeasible when that weight already exceeds the capacity
//     (values 0, no branching position);
//  3. scans free positions in ratio order, packing each one whose weight
//     fits strictly (used+w < capacity); the first that does not gets the
//     share (capacity−used)/w in the upper vector only and becomes the
//     branching position. The scan stops there: later free items stay 0
//     even if they would fit on their own;
//  4. reports both vectors and their objective values.
//
// The strict comparison means an item that fills the knapsack exactly is
// still treated as the split item with share w/w. Branching therefore stays
// defined whenever upper and lower differ.
//
// Complexity: O(n) time and memory per call.
package bnb

import (
	"math"

	"github.com/katalvlaran/bnbtree/catalog"
)

// roundScale stabilises objective values against floating-point drift so
// that upper == lower comparisons are exact on integral relaxations.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Relaxation is the result of one bound computation.
type Relaxation struct {
	// Upper and Lower are indexed by ratio-order position.
	Upper []Share
	Lower []int

	UpperValue float64
	LowerValue float64

	// Branching is the split position, or -1 if every free item fitted
	// (or the node is infeasible).
	Branching int

	// Infeasible is set when the fixed ones alone exceed the capacity.
	Infeasible bool

	// Used is the weight packed into the lower vector.
	Used float64
}

// Relax computes the fractional relaxation for items (ratio order),
// capacity and the fixed positions in a.
//
// Errors: ErrPositionOutOfRange if a refers to a position ≥ len(items).
func Relax(items []catalog.Item, capacity float64, a Assignment) (Relaxation, error) {
	if a.maxPosition() >= len(items) {
		return Relaxation{}, ErrPositionOutOfRange
	}

	return relax(items, capacity, a), nil
}

// relax is Relax without the range check; the engine only produces
// assignments it derived from Branching, which is always in range.
func relax(items []catalog.Item, capacity float64, a Assignment) Relaxation {
	var (
		n    = len(items)
		used float64
		p, i int
		w    float64
	)
	r := Relaxation{
		Upper:     make([]Share, n),
		Lower:     make([]int, n),
		Branching: -1,
	}
	for i = 0; i < n; i++ {
		r.Upper[i] = zeroShare
	}

	// Stage 1: fixed ones.
	for _, p = range a.Ones() {
		r.Upper[p] = oneShare
		r.Lower[p] = 1
		used += items[p].Weight
	}
	if used > capacity {
		r.Infeasible = true
		r.Used = used

		return r
	}

	// Stage 2: greedy fill of free positions up to the first split.
	for i = 0; i < n; i++ {
		if !a.IsFree(i) {
			continue
		}
		w = items[i].Weight
		if used+w < capacity {
			used += w
			r.Upper[i] = oneShare
			r.Lower[i] = 1

			continue
		}
		r.Upper[i] = Share{Num: capacity - used, Den: w, Split: true}
		r.Branching = i

		break
	}
	r.Used = used

	// Stage 3: objective values.
	var up, lo float64
	for i = 0; i < n; i++ {
		up += items[i].Value * r.Upper[i].Float()
		lo += items[i].Value * float64(r.Lower[i])
	}
	r.UpperValue = round1e9(up)
	r.LowerValue = round1e9(lo)

	return r
}
