package causal

import "github.com/AmirZur/CausalAbstraction/cdag"

// Provenance tags each value in an Assignment with where it traces from:
// base inputs, the call's intervention set, or a mix of both. Tags are
// computed alongside the evaluation walk and never influence values; they
// exist for downstream consumers such as renderers that distinguish
// pure, mixed and override-only values.
type Provenance int

const (
	// ProvenanceBase marks a value whose every ancestor is an un-intervened
	// root drawn from inputs or a sampler.
	ProvenanceBase Provenance = iota

	// ProvenanceDirect marks a variable that is itself a key of the active
	// intervention (or interchange-derived override) set.
	ProvenanceDirect

	// ProvenanceMixed marks a derived value with at least one intervened
	// ancestor and at least one base ancestor.
	ProvenanceMixed

	// ProvenanceIntervenedOnly marks a value every path to which passes
	// through an intervened variable, with no base value reaching it.
	ProvenanceIntervenedOnly
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceBase:
		return "base"
	case ProvenanceDirect:
		return "direct"
	case ProvenanceMixed:
		return "mixed"
	case ProvenanceIntervenedOnly:
		return "intervened-only"
	default:
		return "unknown"
	}
}

// provenanceTracker accumulates tags during one evaluation walk. It is
// call-scoped; each run owns its own tracker.
type provenanceTracker struct {
	tags map[cdag.VarID]Provenance
}

func newProvenanceTracker(n int) *provenanceTracker {
	return &provenanceTracker{tags: make(map[cdag.VarID]Provenance, n)}
}

func (t *provenanceTracker) record(id cdag.VarID, tag Provenance) {
	t.tags[id] = tag
}

// combine derives a non-intervened derived variable's tag from its parents'
// tags. Direct never appears here: an overridden variable short-circuits to
// ProvenanceDirect before its parents are consulted.
func (t *provenanceTracker) combine(parents []cdag.VarID) Provenance {
	allBase := true
	allIntervened := true
	for _, pid := range parents {
		switch t.tags[pid] {
		case ProvenanceBase:
			allIntervened = false
		case ProvenanceDirect, ProvenanceIntervenedOnly:
			allBase = false
		case ProvenanceMixed:
			allBase = false
			allIntervened = false
		}
	}
	switch {
	case allBase:
		return ProvenanceBase
	case allIntervened:
		return ProvenanceIntervenedOnly
	default:
		return ProvenanceMixed
	}
}
