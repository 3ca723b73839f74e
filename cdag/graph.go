package cdag

import (
	"fmt"
	"strings"

	"github.com/AmirZur/CausalAbstraction/cmech"
)

// VarID is a strongly-typed identifier for graph variables.
// VarIDs must be non-empty and cannot contain whitespace.
type VarID string

// Validate checks if the VarID is valid.
// Returns ErrInvalidVarID if the ID is empty or contains whitespace.
func (id VarID) Validate() error {
	if id == "" {
		return fmt.Errorf("%w: variable name cannot be empty", ErrInvalidVarID)
	}
	if strings.ContainsAny(string(id), " \t\n\r") {
		return fmt.Errorf("%w: variable name %q cannot contain whitespace", ErrInvalidVarID, id)
	}
	return nil
}

// VarKind represents the kind of variable in the causal graph.
type VarKind int

const (
	// KindRoot is a variable with no parents. Its value comes from an
	// explicit input, an intervention, or a sampling mechanism.
	KindRoot VarKind = iota
	// KindDerived is a variable computed from its parents' values.
	KindDerived
)

func (k VarKind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindDerived:
		return "Derived"
	default:
		return "Unknown"
	}
}

// Domain is an optional finite set of admissible values for a variable.
// A nil *Domain means the variable is unconstrained. Domain values must be
// comparable; they are used as map keys for membership checks.
type Domain struct {
	values []any
	member map[any]struct{}
}

// NewDomain creates a domain from the given admissible values.
// Duplicates are dropped; declaration order is preserved.
func NewDomain(values ...any) *Domain {
	d := &Domain{
		values: make([]any, 0, len(values)),
		member: make(map[any]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := d.member[v]; ok {
			continue
		}
		d.member[v] = struct{}{}
		d.values = append(d.values, v)
	}
	return d
}

// Contains reports whether v is an admissible value. A nil domain is
// unconstrained and contains everything.
func (d *Domain) Contains(v any) bool {
	if d == nil {
		return true
	}
	_, ok := d.member[v]
	return ok
}

// Values returns a copy of the admissible values in declaration order.
func (d *Domain) Values() []any {
	if d == nil {
		return nil
	}
	out := make([]any, len(d.values))
	copy(out, d.values)
	return out
}

// Size returns the number of admissible values, or 0 for an unconstrained domain.
func (d *Domain) Size() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}

// Variable is the build-time representation of a variable in the causal graph.
type Variable struct {
	ID     VarID
	Domain *Domain

	// Parent edges (incoming), in declared order. The mechanism receives
	// parent values in exactly this order.
	Parents []VarID

	// Child edges (outgoing). Populated when the graph is linked during Build.
	Children []VarID

	// Mechanism computes the variable's value. For root variables it is a
	// zero-arity mechanism (typically a *cmech.Sampler) and may be nil, in
	// which case an explicit input or override is required at evaluation
	// time. For derived variables it must be a *cmech.Pure whose arity
	// equals the parent count.
	Mechanism cmech.Mechanism
}

// Kind returns KindRoot for variables without parents, KindDerived otherwise.
func (v *Variable) Kind() VarKind {
	if len(v.Parents) == 0 {
		return KindRoot
	}
	return KindDerived
}

// Graph is the build-time causal graph representation.
// It contains only structural information - no evaluation behavior.
type Graph struct {
	Vars map[VarID]*Variable

	// Deterministic variable ordering (insertion order)
	VarOrder []VarID

	linked bool
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		Vars:     make(map[VarID]*Variable),
		VarOrder: make([]VarID, 0),
	}
}

// AddVariable adds a variable to the graph. Parent references are not
// resolved here; they are checked and wired when the graph is linked.
func (g *Graph) AddVariable(v *Variable) error {
	if err := v.ID.Validate(); err != nil {
		return err
	}
	if _, exists := g.Vars[v.ID]; exists {
		return fmt.Errorf("%w: %s", ErrVariableExists, v.ID)
	}
	g.Vars[v.ID] = v
	g.VarOrder = append(g.VarOrder, v.ID)
	return nil
}

// link resolves parent references and populates child edges.
// Returns ErrUnknownVariable if a declared parent does not exist.
func (g *Graph) link() error {
	if g.linked {
		return nil
	}
	for _, id := range g.VarOrder {
		v := g.Vars[id]
		for _, parentID := range v.Parents {
			parent, ok := g.Vars[parentID]
			if !ok {
				return fmt.Errorf("%w: variable %s declares unknown parent %s",
					ErrUnknownVariable, id, parentID)
			}
			parent.Children = append(parent.Children, id)
		}
	}
	g.linked = true
	return nil
}
