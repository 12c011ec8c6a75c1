package bnb_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shares(r bnb.Relaxation) []string {
	out := make([]string, len(r.Upper))
	for i, s := range r.Upper {
		out[i] = s.String()
	}

	return out
}

// TestRelax_RootLecture: C and B fit (used=12), A splits at 8/10.
func TestRelax_RootLecture(t *testing.T) {
	items := lectureCatalog().Ordered()

	r, err := bnb.Relax(items, lectureCapacity, bnb.Assignment{})
	require.NoError(t, err)

	assert.False(t, r.Infeasible)
	assert.Equal(t, 2, r.Branching, "A is the split item")
	assert.Equal(t, []string{"1", "1", "8/10", "0"}, shares(r))
	assert.Equal(t, []int{1, 1, 0, 0}, r.Lower)
	assert.Equal(t, 71.0, r.UpperValue)
	assert.Equal(t, 51.0, r.LowerValue)
	assert.Equal(t, 12.0, r.Used)
}

// TestRelax_ZeroCapacity: the first free item gets a 0/w share.
func TestRelax_ZeroCapacity(t *testing.T) {
	items := lectureCatalog().Ordered()

	r, err := bnb.Relax(items, 0, bnb.Assignment{})
	require.NoError(t, err)

	assert.Equal(t, 0, r.Branching)
	assert.Equal(t, []string{"0/5", "0", "0", "0"}, shares(r))
	assert.Equal(t, 0.0, r.UpperValue)
	assert.Equal(t, 0.0, r.LowerValue)
}

// TestRelax_Infeasible: fixed ones heavier than the capacity.
func TestRelax_Infeasible(t *testing.T) {
	items := catalog.MustNew(catalog.NewItem("X", 10, 5)).Ordered()
	a, err := bnb.NewAssignment([]int{0}, nil)
	require.NoError(t, err)

	r, err := bnb.Relax(items, 3, a)
	require.NoError(t, err)

	assert.True(t, r.Infeasible)
	assert.Equal(t, -1, r.Branching)
	assert.Equal(t, 0.0, r.UpperValue)
	assert.Equal(t, 0.0, r.LowerValue)
	assert.Equal(t, 10.0, r.Used)
}

// TestRelax_NegativeCapacity: even the empty assignment is infeasible.
func TestRelax_NegativeCapacity(t *testing.T) {
	r, err := bnb.Relax(lectureCatalog().Ordered(), -1, bnb.Assignment{})
	require.NoError(t, err)
	assert.True(t, r.Infeasible)
}

// TestRelax_ExactFitSplits: used+w == capacity is not a strict fit, so the
// item becomes the split with a full w/w share in the upper vector only.
func TestRelax_ExactFitSplits(t *testing.T) {
	items := catalog.MustNew(
		catalog.NewItem("P", 4, 12),
		catalog.NewItem("Q", 6, 12),
	).Ordered()

	r, err := bnb.Relax(items, 10, bnb.Assignment{})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Branching)
	assert.Equal(t, []string{"1", "6/6"}, shares(r))
	assert.Equal(t, []int{1, 0}, r.Lower)
	assert.Equal(t, 24.0, r.UpperValue)
	assert.Equal(t, 12.0, r.LowerValue)
}

// TestRelax_StopsAtSplit: items after the split stay 0 even if they fit.
func TestRelax_StopsAtSplit(t *testing.T) {
	items := catalog.MustNew(
		catalog.NewItem("big", 9, 90),
		catalog.NewItem("huge", 20, 100),
		catalog.NewItem("tiny", 1, 1),
	).Ordered()

	r, err := bnb.Relax(items, 15, bnb.Assignment{})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Branching)
	assert.Equal(t, []int{1, 0, 0}, r.Lower, "tiny would fit but the scan has stopped")
	assert.Equal(t, "6/20", r.Upper[1].String())
	assert.Equal(t, "0", r.Upper[2].String())
}

// TestRelax_SkipsFixedPositions: fixed zeroes are passed over.
func TestRelax_SkipsFixedPositions(t *testing.T) {
	items := lectureCatalog().Ordered()
	a, err := bnb.NewAssignment([]int{2}, []int{1})
	require.NoError(t, err)

	r, err := bnb.Relax(items, lectureCapacity, a)
	require.NoError(t, err)

	// A fixed (10), C packs (15), B excluded, D packs (19).
	assert.Equal(t, -1, r.Branching)
	assert.Equal(t, []int{1, 0, 1, 1}, r.Lower)
	assert.Equal(t, 63.0, r.UpperValue)
	assert.Equal(t, 63.0, r.LowerValue)
}

func TestRelax_PositionOutOfRange(t *testing.T) {
	a, err := bnb.NewAssignment([]int{7}, nil)
	require.NoError(t, err)

	_, err = bnb.Relax(lectureCatalog().Ordered(), lectureCapacity, a)
	assert.ErrorIs(t, err, bnb.ErrPositionOutOfRange)
}

func TestNewAssignment_Errors(t *testing.T) {
	_, err := bnb.NewAssignment([]int{1, 2}, []int{2})
	assert.ErrorIs(t, err, bnb.ErrOverlappingAssignment)

	_, err = bnb.NewAssignment([]int{-1}, nil)
	assert.ErrorIs(t, err, bnb.ErrPositionOutOfRange)

	_, err = bnb.NewAssignment(nil, []int{-3})
	assert.ErrorIs(t, err, bnb.ErrPositionOutOfRange)
}

// TestNewAssignment_PositionBeyondBitmap: positions past the uint32 range
// are rejected instead of wrapping onto a small position.
func TestNewAssignment_PositionBeyondBitmap(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold positions past the uint32 range")
	}
	wide := int(uint64(math.MaxUint32) + 1)

	_, err := bnb.NewAssignment([]int{wide}, nil)
	assert.ErrorIs(t, err, bnb.ErrPositionOutOfRange)

	_, err = bnb.NewAssignment(nil, []int{wide + 1})
	assert.ErrorIs(t, err, bnb.ErrPositionOutOfRange)

	top := wide - 1
	a, err := bnb.NewAssignment([]int{top}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{top}, a.Ones())
}

// TestAssignment_Immutable ensures FixOne/FixZero never touch the receiver.
func TestAssignment_Immutable(t *testing.T) {
	var root bnb.Assignment
	one := root.FixOne(3)
	zero := root.FixZero(3)
	deeper := one.FixZero(1)

	assert.True(t, root.IsFree(3))
	assert.Equal(t, 0, root.Fixed())
	assert.Equal(t, []int{3}, one.Ones())
	assert.Empty(t, one.Zeroes())
	assert.Equal(t, []int{3}, zero.Zeroes())
	assert.Equal(t, []int{3}, deeper.Ones())
	assert.Equal(t, []int{1}, deeper.Zeroes())
	assert.Empty(t, one.Zeroes(), "sibling unaffected")
	assert.Equal(t, 2, deeper.Fixed())
	assert.True(t, deeper.IsOne(3))
	assert.True(t, deeper.IsZero(1))
}

func TestShare_String(t *testing.T) {
	assert.Equal(t, "0", bnb.Share{Num: 0, Den: 1}.String())
	assert.Equal(t, "1", bnb.Share{Num: 1, Den: 1}.String())
	assert.Equal(t, "8/10", bnb.Share{Num: 8, Den: 10, Split: true}.String())
	assert.Equal(t, "2.5/4", bnb.Share{Num: 2.5, Den: 4, Split: true}.String())
	assert.Equal(t, "0/1", bnb.Share{Num: 0, Den: 1, Split: true}.String())
	assert.Equal(t, "0.5/1", bnb.Share{Num: 0.5, Den: 1, Split: true}.String())
	assert.InDelta(t, 0.8, bnb.Share{Num: 8, Den: 10}.Float(), 1e-15)
}
