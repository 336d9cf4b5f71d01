// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for Cell observability.
// This file defines:
//   - Option / options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Observability is advisory: hooks never alter the functional result,
//     and a Cell with no options behaves identically minus the callbacks.
package invcache

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; New accepts
// `...Option` and internally resolves them via gatherOptions.
type options struct {
	onHit  func() // invoked once per fetch served from cache; nil = no-op
	onMiss func() // invoked once per fetch that must compute; nil = no-op
}

// WithOnHit registers fn to be called every time a fetch is served from the
// cached inverse. fn runs before the cached value is returned.
//
// The callback is advisory only: it carries no payload and its panics are
// not recovered. A nil fn leaves the hook unset.
// Complexity: O(1).
func WithOnHit(fn func()) Option {
	return func(o *options) { o.onHit = fn }
}

// WithOnMiss registers fn to be called every time a fetch has to invoke the
// inversion primitive. fn runs before the computation starts, so it fires
// even when the inversion subsequently fails.
// Complexity: O(1).
func WithOnMiss(fn func()) Option {
	return func(o *options) { o.onMiss = fn }
}

// gatherOptions applies opts in order over zero-value defaults.
func gatherOptions(opts ...Option) options {
	var o options // defaults: both hooks unset
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
