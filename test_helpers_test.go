package causal

import (
	"testing"

	"github.com/AmirZur/CausalAbstraction/cmech"
)

// mod10Sum is the derived mechanism of the 3-digit modular adder fixture.
func mod10Sum(a, b int) int {
	return (a + b) % 10
}

// newAdderModel builds the 3-digit modular adder used throughout the tests:
// roots A, B, C; A+B = (A+B) mod 10; C' = C; Y = (A+B + C') mod 10; and
// raw_output = Y as the sole leaf below the output.
func newAdderModel(t testing.TB, opts ...Option) *Model {
	t.Helper()
	m, err := New(Definition{
		ID:        "modular-adder",
		Variables: []string{"A", "B", "C", "A+B", "C'", "Y", "raw_output"},
		Parents: map[string][]string{
			"A+B":        {"A", "B"},
			"C'":         {"C"},
			"Y":          {"A+B", "C'"},
			"raw_output": {"Y"},
		},
		Mechanisms: map[string]cmech.Mechanism{
			"A+B":        cmech.Pure2(mod10Sum),
			"C'":         cmech.Identity(),
			"Y":          cmech.Pure2(mod10Sum),
			"raw_output": cmech.Identity(),
		},
	}, opts...)
	if err != nil {
		t.Fatalf("failed to build adder model: %v", err)
	}
	return m
}

// adderInputs is the base configuration used by most adder tests.
func adderInputs() Values {
	return Values{"A": 1, "B": 2, "C": 3}
}

// mustValue fails the test if the assignment lacks the variable.
func mustValue(t testing.TB, a *Assignment, name string) any {
	t.Helper()
	v, ok := a.Value(name)
	if !ok {
		t.Fatalf("assignment is missing variable %q", name)
	}
	return v
}

// mustTag fails the test if the assignment lacks a provenance tag.
func mustTag(t testing.TB, a *Assignment, name string) Provenance {
	t.Helper()
	tag, ok := a.Provenance(name)
	if !ok {
		t.Fatalf("assignment is missing provenance for %q", name)
	}
	return tag
}
