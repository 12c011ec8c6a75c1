// Package catalog holds the problem instance of a 0/1 knapsack: the items
// with their weight and value, and the fixed ratio-descending ordering the
// branch-and-bound engine works on.
//
// What:
//
//   - Item: immutable record {ID, Weight, Value} with a derived Ratio.
//   - Catalog: an immutable, validated collection of items. It remembers the
//     input order and the ratio order (value/weight, descending, ties keep
//     the input order).
//
// Why:
//
//   - The relaxation bound fills the knapsack greedily by ratio, so every
//     position index the engine talks about ("fix position 3 to one") is a
//     position in Ordered(), not in the input.
//   - Editing an item never mutates a catalog that an in-flight solve might
//     be reading: WithItem, Append and Without return a new Catalog.
//
// Errors:
//
//   - ErrInvalidItem      weight or value is not a finite positive number
//   - ErrEmptyID          an item has an empty identifier
//   - ErrDuplicateID      two items share an identifier
//   - ErrIndexOutOfRange  an edit refers to a position that does not exist
//
// Complexity:
//
//   - New / WithItem / Append / Without: O(n log n) (one stable sort).
//   - Ordered / Input: O(n) (defensive copy).
package catalog
