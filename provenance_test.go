package causal

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestProvenanceString(t *testing.T) {
	assert.Equal(t, "base", ProvenanceBase.String())
	assert.Equal(t, "direct", ProvenanceDirect.String())
	assert.Equal(t, "mixed", ProvenanceMixed.String())
	assert.Equal(t, "intervened-only", ProvenanceIntervenedOnly.String())
	assert.Equal(t, "unknown", Provenance(99).String())
}

func TestProvenanceTags(t *testing.T) {
	t.Run("pure base run", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Evaluate(adderInputs(), nil)
		assert.NoError(t, err)

		for _, name := range run.Names() {
			assert.Equal(t, ProvenanceBase, mustTag(t, run, name))
		}
	})

	t.Run("intermediate intervention yields mixed output", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Evaluate(adderInputs(), Values{"A+B": 4})
		assert.NoError(t, err)

		assert.Equal(t, ProvenanceDirect, mustTag(t, run, "A+B"))
		assert.Equal(t, ProvenanceBase, mustTag(t, run, "A"))
		assert.Equal(t, ProvenanceBase, mustTag(t, run, "C'"))
		// Y sees one direct ancestor (A+B) and one base ancestor (C')
		assert.Equal(t, ProvenanceMixed, mustTag(t, run, "Y"))
		// And mixedness propagates through the leaf
		assert.Equal(t, ProvenanceMixed, mustTag(t, run, "raw_output"))
	})

	t.Run("output intervention yields intervened-only leaf", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Evaluate(adderInputs(), Values{"Y": 10})
		assert.NoError(t, err)

		assert.Equal(t, ProvenanceDirect, mustTag(t, run, "Y"))
		// raw_output's sole ancestor is the intervened Y: never mixed
		assert.Equal(t, ProvenanceIntervenedOnly, mustTag(t, run, "raw_output"))
		assert.Equal(t, ProvenanceBase, mustTag(t, run, "A+B"))
	})

	t.Run("direct short-circuits parent tags", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Evaluate(adderInputs(), Values{"A+B": 4, "Y": 9})
		assert.NoError(t, err)

		// Y is itself overridden; its mixed ancestry is irrelevant
		assert.Equal(t, ProvenanceDirect, mustTag(t, run, "Y"))
		assert.Equal(t, ProvenanceIntervenedOnly, mustTag(t, run, "raw_output"))
	})

	t.Run("interchange overrides are tagged direct", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Interchange(adderInputs(), CounterfactualSpec{
			"A+B": {"A": 3, "B": 1, "C": 3},
		})
		assert.NoError(t, err)

		assert.Equal(t, ProvenanceDirect, mustTag(t, run, "A+B"))
		assert.Equal(t, ProvenanceMixed, mustTag(t, run, "Y"))
	})

	t.Run("all-intervened parents yield intervened-only", func(t *testing.T) {
		m := newAdderModel(t)
		run, err := m.Evaluate(adderInputs(), Values{"A+B": 4, "C'": 8})
		assert.NoError(t, err)

		// Both of Y's parents are overridden
		assert.Equal(t, ProvenanceIntervenedOnly, mustTag(t, run, "Y"))
		assert.Equal(t, ProvenanceIntervenedOnly, mustTag(t, run, "raw_output"))
	})
}
