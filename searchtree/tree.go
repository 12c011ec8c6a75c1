package searchtree

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/bnbtree/bnb"
)

// Attribute keys of a TreeNode.
const (
	AttrFixedZeroes = "fixed zeroes"
	AttrFixedOnes   = "fixed ones"
	AttrUpper       = "x upper"
	AttrLower       = "x lower"
	AttrAction      = "node action"
)

// TreeNode is the renderer-facing view of one search node.
type TreeNode struct {
	Name       string            `json:"name" yaml:"name"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	Children   []*TreeNode       `json:"children" yaml:"children"`

	// Step is the pre-order index (from 1) that Name displays.
	Step int `json:"-" yaml:"-"`
}

// builder numbers nodes for one Build call.
type builder struct {
	strategy bnb.Strategy
	step     int
}

// Build projects root into a TreeNode tree, numbering nodes in pre-order
// with children taken in the evaluation order of strategy.
// Build returns nil for a nil root.
func Build(root bnb.Node, strategy bnb.Strategy) *TreeNode {
	if root == nil {
		return nil
	}
	b := builder{strategy: strategy}

	return b.node(root)
}

// FromResult is Build over a finished solve with the strategy it used.
func FromResult(res *bnb.Result) *TreeNode {
	if res == nil {
		return nil
	}

	return Build(res.Root, res.Strategy)
}

func (b *builder) node(n bnb.Node) *TreeNode {
	// Number before descending: the parent was evaluated before its children.
	b.step++
	bd := n.Bounds()
	tn := &TreeNode{
		Name: "Step: " + strconv.Itoa(b.step),
		Step: b.step,
		Attributes: map[string]string{
			AttrFixedZeroes: FormatSet(bd.FixedZeroes),
			AttrFixedOnes:   FormatSet(bd.FixedOnes),
			AttrUpper:       formatVector(shareStrings(bd.Upper), bd.UpperValue),
			AttrLower:       formatVector(intStrings(bd.Lower), bd.LowerValue),
			AttrAction:      n.Reason().String(),
		},
	}
	// Terminal nodes get an empty, non-nil list so they serialise as [].
	kids := n.Children(b.strategy)
	tn.Children = make([]*TreeNode, 0, len(kids))
	for _, c := range kids {
		tn.Children = append(tn.Children, b.node(c))
	}

	return tn
}

// FormatSet renders ascending 0-based positions as a 1-based set: {1, 3}.
func FormatSet(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p + 1)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func formatVector(coords []string, value float64) string {
	return "(" + strings.Join(coords, ", ") + ") with value: " + strconv.FormatFloat(value, 'f', -1, 64)
}

func shareStrings(s []bnb.Share) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].String()
	}

	return out
}

func intStrings(v []int) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = strconv.Itoa(x)
	}

	return out
}

// Count returns the number of nodes in the projected tree.
func (t *TreeNode) Count() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += c.Count()
	}

	return n
}

// Find returns the node labelled with step, or nil.
func (t *TreeNode) Find(step int) *TreeNode {
	if t == nil {
		return nil
	}
	if t.Step == step {
		return t
	}
	for _, c := range t.Children {
		if f := c.Find(step); f != nil {
			return f
		}
	}

	return nil
}
