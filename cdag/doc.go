// Package cdag provides a Directed Acyclic Graph (DAG) builder for causal models.
//
// # Overview
//
// cdag enables construction of validated causal graphs: named variables,
// each with an ordered parent list and a mechanism that computes its value.
// The package separates build-time graph construction from evaluation through
// a two-phase architecture:
//
// 1. **Build Phase**: Declare variables, domains, parents and mechanisms on a Builder
// 2. **Evaluation Phase**: The validated, immutable DAG is walked by the engine
//
// # Basic Usage
//
//	import (
//	    "github.com/AmirZur/CausalAbstraction/cdag"
//	    "github.com/AmirZur/CausalAbstraction/cmech"
//	)
//
//	b := cdag.NewBuilder()
//
//	// Roots carry zero-argument mechanisms (or none, requiring an input).
//	_ = b.AddRoot("A", nil, cmech.UniformChoice(0, 1, 2))
//	_ = b.AddRoot("B", nil, nil)
//
//	// Derived variables carry pure functions of their parents, in order.
//	_ = b.AddDerived("sum", nil, cmech.Pure2(func(a, b int) int {
//	    return a + b
//	}), "A", "B")
//
//	dag := b.MustBuild()
//
// Variables may be registered in any order; parent references are resolved
// during Build.
//
// # Validation
//
// Validation is performed during Build() and checks:
//
//   - **Cycle Detection**: the parent relation must admit a topological order (uses DFS)
//   - **Parent Resolution**: every declared parent must name a registered variable
//   - **Arity Checking**: a mechanism must accept exactly as many ordered arguments
//     as its variable has parents; samplers cannot be attached to derived variables
//   - **Size Limits**: prevents pathological graphs (MaxVariables, MaxDepth, MaxParentsPerVar)
//
// All validation errors use sentinel errors (ErrCycleDetected, ErrArityMismatch,
// ErrUnknownVariable, ...) that can be checked with errors.Is. Arity failures
// are aggregated so one Build reports every broken mechanism.
//
// # Topological Order
//
// Build caches a deterministic topological order (Kahn's algorithm with a
// sorted tie-break). Any order placing parents before children produces the
// same evaluation results; the canonical order exists for reproducibility.
//
// # Thread Safety
//
// Builder is NOT safe for concurrent use. The resulting DAG is immutable and
// safe to share across any number of concurrent evaluations.
package cdag
