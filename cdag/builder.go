package cdag

import (
	"errors"
	"fmt"

	"github.com/AmirZur/CausalAbstraction/cmech"
)

// Builder constructs a causal graph.
//
// IMPORTANT: Builder is NOT safe for concurrent use. All registration
// methods must be called from a single goroutine. The resulting DAG
// is immutable and safe to use concurrently.
//
// Variables may be declared in any order; parent references are resolved
// when Build is called, so a child can be registered before its parents.
type Builder struct {
	graph *Graph
}

// NewBuilder creates a new causal graph builder.
func NewBuilder() *Builder {
	return &Builder{
		graph: NewGraph(),
	}
}

// AddRoot adds a root variable (no parents). The mechanism may be nil, in
// which case every evaluation must supply an input or an override for the
// variable. A non-nil mechanism must have arity zero; typically this is a
// *cmech.Sampler.
func (b *Builder) AddRoot(name string, domain *Domain, mechanism cmech.Mechanism) error {
	return b.graph.AddVariable(&Variable{
		ID:        VarID(name),
		Domain:    domain,
		Parents:   []VarID{},
		Children:  []VarID{},
		Mechanism: mechanism,
	})
}

// AddDerived adds a derived variable computed from the given parents, in
// order. The mechanism must be a pure function whose arity equals the parent
// count; this is checked during Build.
func (b *Builder) AddDerived(name string, domain *Domain, mechanism cmech.Mechanism, parents ...string) error {
	if len(parents) == 0 {
		return fmt.Errorf("%w: derived variable %q needs at least one parent", ErrInvalidGraph, name)
	}
	parentIDs := make([]VarID, len(parents))
	for i, p := range parents {
		parentIDs[i] = VarID(p)
	}
	return b.graph.AddVariable(&Variable{
		ID:        VarID(name),
		Domain:    domain,
		Parents:   parentIDs,
		Children:  []VarID{},
		Mechanism: mechanism,
	})
}

// Build validates the graph and finalizes it into an immutable DAG with a
// cached topological order.
func (b *Builder) Build() (*DAG, error) {
	if err := b.graph.Validate(); err != nil {
		return nil, err
	}

	order, err := b.graph.topologicalSort()
	if err != nil {
		return nil, fmt.Errorf("failed to compute topological order: %w", err)
	}

	return &DAG{
		graph: b.graph,
		order: order,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *DAG {
	dag, err := b.Build()
	if err != nil {
		panic(err)
	}
	return dag
}

// GetGraph returns the underlying graph for read-only access.
func (b *Builder) GetGraph() *Graph {
	return b.graph
}

// GetVariable returns a variable by ID if it exists.
func (b *Builder) GetVariable(id VarID) (*Variable, bool) {
	v, ok := b.graph.Vars[id]
	return v, ok
}

// Sentinel errors for graph construction. All are raised at build time and
// can be checked with errors.Is.
var (
	ErrVariableExists   = errors.New("variable already declared")
	ErrUnknownVariable  = errors.New("unknown variable")
	ErrCycleDetected    = errors.New("cycle detected in causal graph")
	ErrArityMismatch    = errors.New("mechanism arity mismatch")
	ErrMissingMechanism = errors.New("missing mechanism")
	ErrInvalidVarID     = errors.New("invalid variable name")
	ErrInvalidGraph     = errors.New("invalid causal graph")
)
