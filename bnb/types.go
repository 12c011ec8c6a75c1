package bnb

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNilCatalog is returned when Solve receives a nil catalog.
	ErrNilCatalog = errors.New("bnb: nil catalog")

	// ErrInvalidCapacity is returned for NaN or infinite capacities.
	// Negative and zero capacities are valid and yield trivial roots.
	ErrInvalidCapacity = errors.New("bnb: invalid capacity")

	// ErrUnknownStrategy is returned by ParseStrategy and by Solve for
	// strategies outside {OnesFirst, ZeroesFirst}.
	ErrUnknownStrategy = errors.New("bnb: unknown traversal strategy")

	// ErrPositionOutOfRange indicates an assignment position ≥ number of items.
	ErrPositionOutOfRange = errors.New("bnb: position out of range")

	// ErrOverlappingAssignment indicates a position fixed both to one and zero.
	ErrOverlappingAssignment = errors.New("bnb: position fixed to both one and zero")

	// ErrEngineFault reports a broken engine invariant: the bounds of a node
	// differ but no position is left to branch on. It is never expected for
	// well-formed input; the solve fails instead of guessing a position.
	ErrEngineFault = errors.New("bnb: engine fault")
)

// Strategy selects which child of a branch is evaluated first.
type Strategy int

const (
	// OnesFirst explores "fix to one" before "fix to zero".
	OnesFirst Strategy = iota

	// ZeroesFirst explores "fix to zero" before "fix to one".
	ZeroesFirst
)

// String returns the CLI spelling of s.
func (s Strategy) String() string {
	switch s {
	case OnesFirst:
		return "ones-first"
	case ZeroesFirst:
		return "zeroes-first"
	default:
		return "strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Strategy) valid() bool { return s == OnesFirst || s == ZeroesFirst }

// ParseStrategy accepts "ones-first" or "zeroes-first".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "ones-first":
		return OnesFirst, nil
	case "zeroes-first":
		return ZeroesFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Reason tags what the engine did at a node.
type Reason int

const (
	// None: the node branched without improving the incumbent.
	None Reason = iota
	// GlobalUpdate: the node raised the incumbent and then branched.
	GlobalUpdate
	// Optimal: the relaxation is already integral; nothing left to branch.
	Optimal
	// Dominated: the relaxation cannot beat the incumbent; subtree pruned.
	Dominated
	// Infeasible: the fixed ones alone exceed the capacity.
	Infeasible
)

// String returns the reason in the form shown as the "node action".
func (r Reason) String() string {
	switch r {
	case None:
		return "none"
	case GlobalUpdate:
		return "globalUpdate"
	case Optimal:
		return "optimal"
	case Dominated:
		return "dominated"
	case Infeasible:
		return "infeasible"
	default:
		return "reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// Terminal reports whether nodes with this reason never have children.
func (r Reason) Terminal() bool { return r == Optimal || r == Dominated || r == Infeasible }

// Share is one coordinate of the upper-bound vector, kept as an exact
// ratio Num/Den so the split coordinate renders as "8/10".
type Share struct {
	Num float64
	Den float64
	// Split marks the coordinate of the item that did not fit entirely.
	// It always renders as a ratio, even when Den is 1.
	Split bool
}

var (
	zeroShare = Share{Num: 0, Den: 1}
	oneShare  = Share{Num: 1, Den: 1}
)

// Float returns Num/Den.
func (s Share) Float() float64 { return s.Num / s.Den }

// String renders whole shares as a plain number and the split share as
// "num/den".
func (s Share) String() string {
	if !s.Split {
		return formatNumber(s.Float())
	}

	return formatNumber(s.Num) + "/" + formatNumber(s.Den)
}

// formatNumber prints x with the fewest digits that round-trip.
func formatNumber(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// Bounds is the data every node carries regardless of its outcome.
// Slices are owned by the node and must be treated as read-only.
type Bounds struct {
	// Upper is the fractional relaxation vector (ratio order).
	Upper []Share
	// Lower is the integral vector (0/1) of the same greedy fill.
	Lower []int
	// UpperValue and LowerValue are the objective values of Upper and Lower,
	// stabilised to 1e-9.
	UpperValue float64
	LowerValue float64
	// FixedOnes and FixedZeroes are the ascending positions fixed on the path
	// from the root to this node.
	FixedOnes   []int
	FixedZeroes []int
	// Branching is the first position that did not fit entirely, or -1.
	Branching int
	// Depth is 0 at the root and grows by one per branch level.
	Depth int
}

// Node is one record of the search. It is implemented only by *Terminal and
// *Branch; use a type switch (or Children) to inspect the outcome.
type Node interface {
	// Bounds returns the node's relaxation data.
	Bounds() *Bounds
	// Reason reports the node action.
	Reason() Reason
	// Children returns the children in evaluation order for the strategy,
	// or nil for terminal nodes.
	Children(s Strategy) []Node

	sealed()
}

// Terminal is a node without children. Only the engine builds populated
// terminals; the zero Terminal has empty bounds, which are integral, and
// reports Optimal.
type Terminal struct {
	b    Bounds
	kind Reason // one of Optimal, Dominated, Infeasible
}

func (t *Terminal) Bounds() *Bounds { return &t.b }

func (t *Terminal) Reason() Reason {
	if !t.kind.Terminal() {
		return Optimal
	}

	return t.kind
}

func (t *Terminal) Children(Strategy) []Node { return nil }
func (*Terminal) sealed()                    {}

// Branch is a node that split on Bounds.Branching into two subtrees.
// Only the engine builds populated branches; both subtrees are then non-nil.
type Branch struct {
	b      Bounds
	update bool // this node raised the incumbent
	one    Node // branching position fixed to one
	zero   Node // branching position fixed to zero
}

func (b *Branch) Bounds() *Bounds { return &b.b }

func (b *Branch) Reason() Reason {
	if b.update {
		return GlobalUpdate
	}

	return None
}

// One returns the subtree with the branching position fixed to one.
func (b *Branch) One() Node { return b.one }

// Zero returns the subtree with the branching position fixed to zero.
func (b *Branch) Zero() Node { return b.zero }

// Children skips missing subtrees, so a zero Branch has none.
func (b *Branch) Children(s Strategy) []Node {
	first, second := b.one, b.zero
	if s == ZeroesFirst {
		first, second = b.zero, b.one
	}
	out := make([]Node, 0, 2)
	for _, c := range []Node{first, second} {
		if c != nil {
			out = append(out, c)
		}
	}

	return out
}

func (*Branch) sealed() {}

// Stats counts nodes per reason over a finished search.
type Stats struct {
	Nodes    int
	ByReason map[Reason]int
	MaxDepth int
}

func (s *Stats) add(n Node) {
	if s.ByReason == nil {
		s.ByReason = make(map[Reason]int, 5)
	}
	s.Nodes++
	s.ByReason[n.Reason()]++
	if d := n.Bounds().Depth; d > s.MaxDepth {
		s.MaxDepth = d
	}
}
