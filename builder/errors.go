// SPDX-License-Identifier: MIT
// Package: homsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...), per this package's fail-fast option convention.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that BuildGraph or a constructor could not
// complete (e.g., a nil constructor was passed to BuildGraph).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect inputs */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
