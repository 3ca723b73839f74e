// Package causal is a simulation engine for causal models: directed acyclic
// graphs of named variables, each computed by a mechanism function of its
// parents, evaluated forward under optional interventions and a two-pass
// interchange protocol.
//
// A Model is built once from a Definition (or via cdag.Builder) and is then
// immutable: construction validates the graph (cycles, unknown parents,
// mechanism arity) and caches a deterministic topological order, so any
// number of Evaluate and Interchange calls can run concurrently against it.
//
//	m := causal.MustNew(causal.Definition{
//	    ID:        "adder",
//	    Variables: []string{"A", "B", "C", "A+B", "C'", "Y"},
//	    Parents: map[string][]string{
//	        "A+B": {"A", "B"},
//	        "C'":  {"C"},
//	        "Y":   {"A+B", "C'"},
//	    },
//	    Mechanisms: map[string]cmech.Mechanism{
//	        "A+B": cmech.Pure2(func(a, b int) int { return (a + b) % 10 }),
//	        "C'":  cmech.Identity(),
//	        "Y":   cmech.Pure2(func(s, c int) int { return (s + c) % 10 }),
//	    },
//	})
//
//	run, err := m.Evaluate(causal.Values{"A": 1, "B": 2, "C": 3}, nil)
//
// Interventions override values simultaneously: downstream variables
// recompute from the overrides, ancestors are untouched. Interchange derives
// override values from independent auxiliary runs on counterfactual inputs:
//
//	run, err = m.Interchange(
//	    causal.Values{"A": 1, "B": 2, "C": 3},
//	    causal.CounterfactualSpec{"A+B": {"A": 3, "B": 1, "C": 3}},
//	)
//
// Every value in an Assignment carries a provenance tag (base, direct,
// mixed, intervened-only) describing whether it traces to base inputs, the
// intervention set, or both. Tags never affect computed values; they feed
// downstream renderers through the GraphStructure/Assignment contract.
//
// Stochastic root variables sample from explicit, injectable random sources
// (WithSeed, WithRand, EvalWithSeed); two runs with the same seed and inputs
// are bit-identical.
package causal
