package causal

import "github.com/AmirZur/CausalAbstraction/cdag"

// Assignment is the result of one Evaluate or Interchange call: a value and
// a provenance tag for every declared variable. It is owned by the call that
// produced it and never mutated afterwards; accessors return copies, so an
// Assignment can be handed to other goroutines freely.
type Assignment struct {
	order  []cdag.VarID
	values map[cdag.VarID]any
	tags   map[cdag.VarID]Provenance
}

// Value returns the computed value for the named variable.
func (a *Assignment) Value(name string) (any, bool) {
	v, ok := a.values[cdag.VarID(name)]
	return v, ok
}

// Provenance returns the provenance tag for the named variable.
func (a *Assignment) Provenance(name string) (Provenance, bool) {
	tag, ok := a.tags[cdag.VarID(name)]
	return tag, ok
}

// Names returns all variable names in topological order.
func (a *Assignment) Names() []string {
	names := make([]string, len(a.order))
	for i, id := range a.order {
		names[i] = string(id)
	}
	return names
}

// Values returns a copy of the full name -> value mapping.
func (a *Assignment) Values() map[string]any {
	out := make(map[string]any, len(a.values))
	for id, v := range a.values {
		out[string(id)] = v
	}
	return out
}

// Provenances returns a copy of the full name -> provenance mapping.
func (a *Assignment) Provenances() map[string]Provenance {
	out := make(map[string]Provenance, len(a.tags))
	for id, tag := range a.tags {
		out[string(id)] = tag
	}
	return out
}

// Len returns the number of assigned variables.
func (a *Assignment) Len() int {
	return len(a.values)
}
