package causal

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAssignmentAccessors(t *testing.T) {
	m := newAdderModel(t)
	run, err := m.Evaluate(adderInputs(), nil)
	assert.NoError(t, err)

	t.Run("missing variable lookups", func(t *testing.T) {
		_, ok := run.Value("ghost")
		assert.False(t, ok)
		_, ok = run.Provenance("ghost")
		assert.False(t, ok)
	})

	t.Run("names follow topological order", func(t *testing.T) {
		assert.Equal(t, m.TopologicalOrder(), run.Names())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		values := run.Values()
		values["A"] = 999
		assert.Equal(t, 1, mustValue(t, run, "A").(int))

		tags := run.Provenances()
		tags["A"] = ProvenanceDirect
		assert.Equal(t, ProvenanceBase, mustTag(t, run, "A"))
	})
}
