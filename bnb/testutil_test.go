// Package bnb_test provides small helpers shared across the bnb tests.
package bnb_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"github.com/stretchr/testify/require"
)

const (
	// lectureCapacity is the capacity of the four-item lecture instance.
	lectureCapacity = 20.0

	// seedDet seeds every randomized instance for reproducible runs.
	seedDet = uint64(42)
)

// lectureCatalog returns items A..D; ratio order is C, B, A, D.
func lectureCatalog() *catalog.Catalog {
	return catalog.MustNew(
		catalog.NewItem("A", 10, 25),
		catalog.NewItem("B", 7, 21),
		catalog.NewItem("C", 5, 30),
		catalog.NewItem("D", 4, 8),
	)
}

// mustSolve fails the test on any Solve error.
func mustSolve(t testing.TB, cat *catalog.Catalog, capacity float64, s bnb.Strategy) *bnb.Result {
	t.Helper()
	res, err := bnb.Solve(cat, capacity, bnb.WithStrategy(s))
	require.NoError(t, err)

	return res
}

// collect returns all nodes in pre-order for strategy s.
func collect(root bnb.Node, s bnb.Strategy) []bnb.Node {
	var out []bnb.Node
	_ = bnb.Walk(root, s, func(n bnb.Node) error {
		out = append(out, n)

		return nil
	})

	return out
}

// randomInstance builds n items with integral weights in [1,20] and values
// in [1,40], plus a capacity in [0, total weight].
func randomInstance(r *rand.Rand, n int) (*catalog.Catalog, float64) {
	items := make([]catalog.Item, n)
	var total float64
	for i := 0; i < n; i++ {
		w := float64(1 + r.IntN(20))
		v := float64(1 + r.IntN(40))
		items[i] = catalog.NewItem(string(rune('A'+i)), w, v)
		total += w
	}

	return catalog.MustNew(items...), float64(r.IntN(int(total) + 1))
}

// bruteForce returns the best value over all subsets with weight ≤ capacity.
func bruteForce(items []catalog.Item, capacity float64) float64 {
	var best float64
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		var w, v float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				v += items[i].Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// fixedWeight sums the weights of positions fixed to one.
func fixedWeight(items []catalog.Item, ones []int) float64 {
	var w float64
	for _, p := range ones {
		w += items[p].Weight
	}

	return w
}
