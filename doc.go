// Package bnbtree is an exact branch-and-bound solver for the 0/1 knapsack
// problem that keeps its whole search as an explorable tree.
//
// What is in the box:
//
//	catalog/    — immutable, validated items and their ratio ordering
//	bnb/        — relaxation bound + depth-first branch-and-bound engine
//	searchtree/ — projection of a finished search into a labelled tree
//	cmd/bnbtree — CLI: solve an instance, dump the tree, compare strategies
//
// Quick example (capacity 20):
//
//	item   A    B    C    D
//	value  25   21   30   8
//	weight 10   7    5    4
//
// Ratio order is C, B, A, D. The root packs C and B, splits A at 8/10 and
// reports bounds 71 / 51; the search ends with C, A, D for a value of 63.
//
//	cat := catalog.MustNew(...)
//	res, _ := bnb.Solve(cat, 20, bnb.WithStrategy(bnb.ZeroesFirst))
//	tree := searchtree.FromResult(res)
//
// The optimal value never depends on the traversal strategy; the shape of
// the tree and the moments the incumbent improves do.
package bnbtree
