package catalog

import (
	"fmt"
	"math"
	"slices"
)

// Catalog is an immutable, validated set of items together with its
// ratio-descending ordering. The zero value is an empty catalog.
type Catalog struct {
	input   []Item // items in the order they were supplied
	ordered []Item // items sorted by Ratio descending, stable on input order
}

// New validates items and builds a Catalog.
// The input slice is copied; later changes to it do not affect the catalog.
//
// Errors: ErrInvalidItem, ErrEmptyID, ErrDuplicateID (wrapped with the
// offending position and id).
func New(items ...Item) (*Catalog, error) {
	var (
		seen = make(map[string]struct{}, len(items))
		i    int
		it   Item
		err  error
	)
	for i, it = range items {
		if err = validateItem(it); err != nil {
			return nil, fmt.Errorf("%w: position %d (%q)", err, i, it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: position %d (%q)", ErrDuplicateID, i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}

	c := &Catalog{input: slices.Clone(items)}
	c.ordered = slices.Clone(items)
	// Stable: equal ratios keep their input order.
	slices.SortStableFunc(c.ordered, func(a, b Item) int {
		ra, rb := a.Ratio(), b.Ratio()
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		default:
			return 0
		}
	})

	return c, nil
}

// MustNew is New for fixtures and examples; it panics on invalid input.
func MustNew(items ...Item) *Catalog {
	c, err := New(items...)
	if err != nil {
		panic(err)
	}

	return c
}

// validateItem enforces a non-empty id and finite, strictly positive
// weight and value.
func validateItem(it Item) error {
	if it.ID == "" {
		return ErrEmptyID
	}
	if !positiveFinite(it.Weight) || !positiveFinite(it.Value) {
		return ErrInvalidItem
	}

	return nil
}

// NaN fails the comparison, so only +Inf needs an explicit check.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.ordered)
}

// Item returns the item at ratio-order position i.
func (c *Catalog) Item(i int) (Item, error) {
	if i < 0 || i >= c.Len() {
		return Item{}, ErrIndexOutOfRange
	}

	return c.ordered[i], nil
}

// Ordered returns a copy of the items in ratio-descending order.
// This is the ordering every engine position refers to.
func (c *Catalog) Ordered() []Item {
	if c == nil {
		return nil
	}

	return slices.Clone(c.ordered)
}

// Input returns a copy of the items in their original order.
func (c *Catalog) Input() []Item {
	if c == nil {
		return nil
	}

	return slices.Clone(c.input)
}

// Position returns the ratio-order position of the item with the given id,
// or -1 if no such item exists.
func (c *Catalog) Position(id string) int {
	if c == nil {
		return -1
	}

	return slices.IndexFunc(c.ordered, func(it Item) bool { return it.ID == id })
}

// TotalWeight is the sum of all item weights.
func (c *Catalog) TotalWeight() float64 {
	var sum float64
	if c == nil {
		return sum
	}
	for _, it := range c.ordered {
		sum += it.Weight
	}

	return sum
}

// WithItem returns a new catalog where the item at input position i is
// replaced by it. The receiver is left untouched.
func (c *Catalog) WithItem(i int, it Item) (*Catalog, error) {
	if c == nil || i < 0 || i >= len(c.input) {
		return nil, ErrIndexOutOfRange
	}
	next := slices.Clone(c.input)
	next[i] = it

	return New(next...)
}

// Append returns a new catalog with it added after the existing items.
func (c *Catalog) Append(it Item) (*Catalog, error) {
	var next []Item
	if c != nil {
		next = slices.Clone(c.input)
	}

	return New(append(next, it)...)
}

// Without returns a new catalog with the item at input position i removed.
func (c *Catalog) Without(i int) (*Catalog, error) {
	if c == nil || i < 0 || i >= len(c.input) {
		return nil, ErrIndexOutOfRange
	}

	return New(slices.Delete(slices.Clone(c.input), i, i+1)...)
}
