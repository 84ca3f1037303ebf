// Package builder generates the random directed graphs that citegraph
// compares against real citation networks. It follows the functional-options
// style: each generator is a Constructor closure, BuildGraph resolves options
// into an immutable config and applies constructors in order.
//
// The package offers the following key components:
//
//   - Generators (Constructor factories):
//     – Complete(n):       complete directed graph K_n, deterministic.
//     – ErdosRenyi(n, p):  directed G(n,p), one Bernoulli trial per ordered pair.
//     – DPA(n, m):         directed preferential attachment grown from K_m.
//   - Sampling:
//     – Multiset:          bag-of-ids sampler with O(1) draws whose
//     multiplicities track in-degree + 1 (see multiset.go
//     for the with-replacement approximation).
//   - Configuration primitives:
//     – BuilderOption:     WithSeed, WithRand, WithContext, WithLogger,
//     WithProgressEvery.
//   - Thin helpers: BuildComplete, BuildErdosRenyi, BuildDPA.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel errors for invalid build parameters (ErrInvalidParameter and its
//     refinements), missing RNG, and fatal ErrInvariantViolation.
//   - Same seed and parameters ⇒ identical graph.
//   - No graph returned on error; a cancelled DPA run yields nothing partial.
package builder
