package catalog

import "errors"

var (
	// ErrInvalidItem is returned when an item's weight or value is not a
	// finite number strictly greater than zero. A zero weight would make the
	// ratio undefined and silently corrupt the greedy ordering.
	ErrInvalidItem = errors.New("catalog: invalid item")

	// ErrEmptyID indicates an item without an identifier.
	ErrEmptyID = errors.New("catalog: empty item id")

	// ErrDuplicateID indicates that two items share the same identifier.
	ErrDuplicateID = errors.New("catalog: duplicate item id")

	// ErrIndexOutOfRange is returned by edits that address a missing position.
	ErrIndexOutOfRange = errors.New("catalog: index out of range")
)

// Item is one candidate for the knapsack.
// Items are values: copying an Item never aliases shared state.
type Item struct {
	// ID is a short human-readable label ("A", "B", ...).
	ID string `yaml:"id" json:"id"`

	// Weight consumed when the item is packed. Must be > 0.
	Weight float64 `yaml:"weight" json:"weight"`

	// Value gained when the item is packed. Must be > 0.
	Value float64 `yaml:"value" json:"value"`
}

// NewItem is a small convenience constructor.
func NewItem(id string, weight, value float64) Item {
	return Item{ID: id, Weight: weight, Value: value}
}

// Ratio returns Value/Weight, the greedy ordering key.
func (it Item) Ratio() float64 { return it.Value / it.Weight }
