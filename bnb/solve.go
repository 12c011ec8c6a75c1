package bnb

import (
	"math"

	"github.com/katalvlaran/bnbtree/catalog"
	"go.uber.org/zap"
)

// Result is the outcome of one Solve call. It is immutable once returned.
type Result struct {
	// Root of the search tree.
	Root Node

	// Catalog is the instance that was solved; Items is its ratio ordering,
	// the order every position in the tree refers to.
	Catalog *catalog.Catalog
	Items   []catalog.Item

	Capacity float64
	Strategy Strategy

	// Incumbent is the optimal objective value.
	Incumbent float64

	// Updates is the incumbent history in discovery order: Updates[0] == 0,
	// non-decreasing, last element == Incumbent.
	Updates []float64

	// Best is the 0/1 vector (ratio order) that achieved Incumbent.
	Best []int

	Stats Stats
}

// Selected returns the items chosen by Best, in ratio order.
func (r *Result) Selected() []catalog.Item {
	out := make([]catalog.Item, 0, len(r.Best))
	for i, x := range r.Best {
		if x == 1 {
			out = append(out, r.Items[i])
		}
	}

	return out
}

// Solve runs the branch-and-bound search for cat under capacity.
//
// The capacity may be any finite number; non-positive capacities produce a
// trivial Infeasible or Optimal root. The optimal value does not depend on
// the strategy; the shape of the tree does.
//
// Errors:
//   - ErrNilCatalog       cat is nil
//   - ErrInvalidCapacity  capacity is NaN or ±Inf
//   - ErrUnknownStrategy  Options.Strategy is not OnesFirst/ZeroesFirst
//   - ErrEngineFault      internal invariant violated (no partial result)
func Solve(cat *catalog.Catalog, capacity float64, opts ...Option) (*Result, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, ErrInvalidCapacity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Strategy.valid() {
		return nil, ErrUnknownStrategy
	}

	items := cat.Ordered()
	e := newEngine(items, capacity, o)
	root, err := e.solve(Assignment{}, 0)
	if err != nil {
		return nil, err
	}

	best := make([]int, len(items))
	if e.inc.best != nil {
		copy(best, e.inc.best)
	}
	e.log.Debug("solve finished",
		zap.Stringer("strategy", o.Strategy),
		zap.Float64("incumbent", e.inc.value),
		zap.Int("nodes", e.stats.Nodes),
		zap.Int("max_depth", e.stats.MaxDepth))

	return &Result{
		Root:      root,
		Catalog:   cat,
		Items:     items,
		Capacity:  capacity,
		Strategy:  o.Strategy,
		Incumbent: e.inc.value,
		Updates:   e.inc.history,
		Best:      best,
		Stats:     e.stats,
	}, nil
}

// Walk visits root and its descendants in pre-order, taking children in
// the evaluation order of s. A non-nil error from fn stops the walk and is
// returned.
func Walk(root Node, s Strategy, fn func(n Node) error) error {
	if root == nil {
		return nil
	}
	if err := fn(root); err != nil {
		return err
	}
	for _, c := range root.Children(s) {
		if err := Walk(c, s, fn); err != nil {
			return err
		}
	}

	return nil
}
