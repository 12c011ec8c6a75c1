package bnb

import "go.uber.org/zap"

// Option configures optional behavior of Solve.
// Use with Solve(cat, capacity, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a solve.
type Options struct {
	// Strategy decides which child of a branch is evaluated first.
	// Default OnesFirst.
	Strategy Strategy

	// Logger receives debug events (incumbent raises, pruning).
	// Defaults to a no-op logger; the engine never logs otherwise.
	Logger *zap.Logger

	// OnNode, if non-nil, is invoked once per node in evaluation (pre-order)
	// order, right after the node's outcome has been decided. For a Branch
	// the children are not yet attached when the hook runs; only Bounds and
	// Reason are meaningful at that point.
	OnNode func(n Node)

	// OnIncumbent, if non-nil, is invoked with each new incumbent value.
	OnIncumbent func(value float64)
}

// DefaultOptions returns Options with:
//   - OnesFirst strategy
//   - a no-op logger
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Strategy:    OnesFirst,
		Logger:      zap.NewNop(),
		OnNode:      nil,
		OnIncumbent: nil,
	}
}

// WithStrategy sets the traversal strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger installs a zap logger for debug events.
// Passing nil has no effect (the no-op logger is retained).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnNode installs fn as a pre-order hook.
func WithOnNode(fn func(n Node)) Option {
	return func(o *Options) {
		o.OnNode = fn
	}
}

// WithOnIncumbent installs fn as the incumbent-raise hook.
func WithOnIncumbent(fn func(value float64)) Option {
	return func(o *Options) {
		o.OnIncumbent = fn
	}
}
