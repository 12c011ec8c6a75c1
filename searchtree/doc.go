// Package searchtree projects a finished bnb search into a generic labelled
// tree for renderers.
//
// Each TreeNode carries a display name ("Step: N"), a map of named string
// attributes and its children. The shape matches the {name, attributes,
// children} records tree-drawing front-ends consume, and the struct tags
// make it serialise directly to JSON or YAML.
//
// Steps are numbered in pre-order following the strategy's evaluation order,
// so the displayed numbering is the order in which the engine evaluated the
// nodes. The counter lives inside one Build call: building twice yields
// identical trees.
//
// Attributes per node:
//
//	fixed zeroes  {1, 3}                          1-indexed ratio positions
//	fixed ones    {2}
//	x upper       (1, 1, 8/10, 0) with value: 71  fractional shares as ratios
//	x lower       (1, 1, 0, 0) with value: 51
//	node action   globalUpdate
//
// Build never mutates the search result.
package searchtree
