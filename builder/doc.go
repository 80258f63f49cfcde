// Package builder provides reusable “functional‐options”‐style building blocks
// for graph constructors over core.Graph. It centralizes common configuration,
// ID schemes, weight distributions, and validation logic, keeping
// implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Shared constants:
//     – DefaultEdgeWeight.
//
// Guarantees:
//
//   - Deterministic construction: the same builder and options on a fresh graph
//     yield the same vertices and edges. Re-running a builder on the same g is not
//     idempotent: existing vertices are kept, but its edges are added again, or
//     rejected with core.ErrMultiEdgeNotAllowed when multi-edges are disabled.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (errors.go sentinels) for invalid build parameters.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Fully testable: IDFn, WeightFn, and BuilderOption behavior are covered by
//     unit tests alongside their implementations.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
