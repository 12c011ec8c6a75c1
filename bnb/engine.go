package bnb

import (
	"fmt"

	"github.com/katalvlaran/bnbtree/catalog"
	"go.uber.org/zap"
)

// engine holds the state of one Solve call.
// A dedicated struct keeps the incumbent's single owner explicit: it lives
// here and nowhere else, and the engine is discarded when Solve returns.
type engine struct {
	// Problem (read-only during the search).
	items    []catalog.Item // ratio order
	capacity float64

	// bound is the per-node relaxation; always relax outside of tests.
	bound func(items []catalog.Item, capacity float64, a Assignment) Relaxation

	// Policy.
	strategy Strategy
	log      *zap.Logger
	onNode   func(Node)
	onInc    func(float64)

	// Mutable search state.
	inc   *incumbent
	stats Stats
}

func newEngine(items []catalog.Item, capacity float64, o Options) *engine {
	return &engine{
		items:    items,
		capacity: capacity,
		bound:    relax,
		strategy: o.Strategy,
		log:      o.Logger,
		onNode:   o.OnNode,
		onInc:    o.OnIncumbent,
		inc:      newIncumbent(),
	}
}

// visit records n in the statistics and fires the pre-order hook.
func (e *engine) visit(n Node) {
	e.stats.add(n)
	if e.onNode != nil {
		e.onNode(n)
	}
}

func (e *engine) terminal(b Bounds, kind Reason) Node {
	t := &Terminal{b: b, kind: kind}
	e.visit(t)

	return t
}

// solve evaluates the node for assignment a and, unless it is terminal,
// both of its subtrees in strategy order.
func (e *engine) solve(a Assignment, depth int) (Node, error) {
	r := e.bound(e.items, e.capacity, a)
	b := Bounds{
		Upper:       r.Upper,
		Lower:       r.Lower,
		UpperValue:  r.UpperValue,
		LowerValue:  r.LowerValue,
		FixedOnes:   a.Ones(),
		FixedZeroes: a.Zeroes(),
		Branching:   r.Branching,
		Depth:       depth,
	}

	if r.Infeasible {
		return e.terminal(b, Infeasible), nil
	}

	update := e.inc.raise(r.LowerValue, r.Lower)
	if update {
		e.log.Debug("incumbent raised",
			zap.Float64("value", r.LowerValue),
			zap.Int("depth", depth),
			zap.Ints("fixed_ones", b.FixedOnes),
			zap.Ints("fixed_zeroes", b.FixedZeroes))
		if e.onInc != nil {
			e.onInc(r.LowerValue)
		}
	}

	// Dominance is checked against the incumbent after this node's own raise.
	if r.UpperValue < e.inc.value {
		e.log.Debug("subtree dominated",
			zap.Float64("upper", r.UpperValue),
			zap.Float64("incumbent", e.inc.value),
			zap.Int("depth", depth))

		return e.terminal(b, Dominated), nil
	}
	if r.UpperValue == r.LowerValue {
		return e.terminal(b, Optimal), nil
	}
	if r.Branching < 0 {
		return nil, fmt.Errorf("%w: upper %v != lower %v with no free position (ones=%v zeroes=%v)",
			ErrEngineFault, r.UpperValue, r.LowerValue, b.FixedOnes, b.FixedZeroes)
	}

	br := &Branch{b: b, update: update}
	e.visit(br)

	var (
		m   = r.Branching
		err error
	)
	if e.strategy == ZeroesFirst {
		if br.zero, err = e.solve(a.FixZero(m), depth+1); err != nil {
			return nil, err
		}
		if br.one, err = e.solve(a.FixOne(m), depth+1); err != nil {
			return nil, err
		}
	} else {
		if br.one, err = e.solve(a.FixOne(m), depth+1); err != nil {
			return nil, err
		}
		if br.zero, err = e.solve(a.FixZero(m), depth+1); err != nil {
			return nil, err
		}
	}

	return br, nil
}
