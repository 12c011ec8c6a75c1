package bnb

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Assignment is the pair of disjoint position sets fixed on the path from
// the root to a node. It is a value type: FixOne and FixZero return a new
// Assignment and never modify the receiver, so sibling subtrees cannot see
// each other's fixings.
//
// The zero value is the empty assignment (every position free).
type Assignment struct {
	ones   *roaring.Bitmap
	zeroes *roaring.Bitmap
}

// NewAssignment builds an assignment from explicit position lists.
// Positions outside [0, MaxUint32] are rejected with ErrPositionOutOfRange
// and positions present in both lists with ErrOverlappingAssignment.
func NewAssignment(ones, zeroes []int) (Assignment, error) {
	var a Assignment
	a.ones, a.zeroes = roaring.New(), roaring.New()
	for _, p := range ones {
		if !storable(p) {
			return Assignment{}, ErrPositionOutOfRange
		}
		a.ones.Add(uint32(p))
	}
	for _, p := range zeroes {
		if !storable(p) {
			return Assignment{}, ErrPositionOutOfRange
		}
		a.zeroes.Add(uint32(p))
	}
	if a.ones.Intersects(a.zeroes) {
		return Assignment{}, ErrOverlappingAssignment
	}

	return a, nil
}

// storable reports whether p fits a bitmap position without truncation.
func storable(p int) bool { return p >= 0 && uint64(p) <= math.MaxUint32 }

// orEmpty lets the zero Assignment behave like an empty one.
func orEmpty(b *roaring.Bitmap) *roaring.Bitmap {
	if b == nil {
		return roaring.New()
	}

	return b
}

// FixOne returns a copy of a with position p fixed to one.
// p must be free in a.
func (a Assignment) FixOne(p int) Assignment {
	ones := orEmpty(a.ones).Clone()
	ones.Add(uint32(p))

	return Assignment{ones: ones, zeroes: a.zeroes}
}

// FixZero returns a copy of a with position p fixed to zero.
// p must be free in a.
func (a Assignment) FixZero(p int) Assignment {
	zeroes := orEmpty(a.zeroes).Clone()
	zeroes.Add(uint32(p))

	return Assignment{ones: a.ones, zeroes: zeroes}
}

// IsOne reports whether p is fixed to one.
func (a Assignment) IsOne(p int) bool { return a.ones != nil && a.ones.Contains(uint32(p)) }

// IsZero reports whether p is fixed to zero.
func (a Assignment) IsZero(p int) bool { return a.zeroes != nil && a.zeroes.Contains(uint32(p)) }

// IsFree reports whether p is fixed neither way.
func (a Assignment) IsFree(p int) bool { return !a.IsOne(p) && !a.IsZero(p) }

// Ones returns the positions fixed to one in ascending order.
func (a Assignment) Ones() []int { return positions(a.ones) }

// Zeroes returns the positions fixed to zero in ascending order.
func (a Assignment) Zeroes() []int { return positions(a.zeroes) }

// Fixed is the number of positions fixed either way.
func (a Assignment) Fixed() int {
	var n uint64
	if a.ones != nil {
		n += a.ones.GetCardinality()
	}
	if a.zeroes != nil {
		n += a.zeroes.GetCardinality()
	}

	return int(n)
}

// maxPosition returns the largest fixed position, or -1 when none is fixed.
func (a Assignment) maxPosition() int {
	hi := -1
	if a.ones != nil && !a.ones.IsEmpty() {
		hi = int(a.ones.Maximum())
	}
	if a.zeroes != nil && !a.zeroes.IsEmpty() {
		if z := int(a.zeroes.Maximum()); z > hi {
			hi = z
		}
	}

	return hi
}

func positions(b *roaring.Bitmap) []int {
	if b == nil {
		return []int{}
	}
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
