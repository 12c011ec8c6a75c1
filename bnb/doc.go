// Package bnb — exact Branch-and-Bound for the 0/1 knapsack with a full
// search trace.
//
// Solve explores the knapsack depth-first. Every recursion step produces one
// immutable Node, so the finished result is the complete record of what the
// search did, not only its answer.
//
// Rationale (succinct):
//  1. Items are taken in ratio order (see package catalog). Positions in this
//     package always refer to that order.
//  2. Bound: Relax computes the fractional relaxation for the current
//     assignment. Fixed ones are packed first; free positions are packed
//     greedily until the first one that does not strictly fit, which gets a
//     fractional share in the upper vector and becomes the branching
//     position. The lower vector is the integral prefix of the same fill.
//  3. Incumbent: the best lower value seen so far, owned by one Solve call
//     and raised at most once per node. Its history starts at 0 and never
//     decreases.
//  4. Outcomes per node, in order: Infeasible (fixed ones exceed capacity),
//     Dominated (upper < incumbent after the node's own raise), Optimal
//     (upper == lower), otherwise a Branch on the branching position with
//     both children explored.
//  5. Strategy: OnesFirst evaluates "fix to one" before "fix to zero";
//     ZeroesFirst the other way round. Evaluation order changes which
//     subtrees are pruned, never the optimal value.
//
// Node is a sealed sum type: *Terminal (Optimal, Dominated, Infeasible) has
// no children, *Branch (GlobalUpdate, None) always has exactly two.
//
// Complexity:
//   - Worst case exponential in the number of items; per node O(n) bound.
//   - Recursion depth ≤ n (each level fixes one more position).
//   - Memory: O(n) per node, the whole tree is retained.
//
// Concurrency: a single Solve is synchronous and single-threaded. Separate
// Solve calls share nothing and may run in parallel.
package bnb
