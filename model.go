package causal

import (
	"fmt"
	"sync"

	"github.com/AmirZur/CausalAbstraction/cdag"
	"github.com/AmirZur/CausalAbstraction/cmech"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Values maps variable names to concrete values. It is used both for base
// inputs (root variable values) and for intervention override sets.
type Values map[string]any

// Definition declares a causal model: the variable set plus per-variable
// domains, parent lists and mechanisms.
type Definition struct {
	// ID identifies the model. If empty, a random UUID is assigned.
	ID string

	// Variables lists every variable name, in declaration order.
	Variables []string

	// Domains optionally restricts variables to finite value sets.
	// Variables without an entry are unconstrained.
	Domains map[string]*cdag.Domain

	// Parents lists each variable's parents in mechanism argument order.
	// Variables without an entry (or with an empty list) are roots.
	Parents map[string][]string

	// Mechanisms maps each variable to its mechanism. Root variables may
	// omit theirs, in which case every evaluation must supply an input or
	// an override for them. Derived variables must have one.
	Mechanisms map[string]cmech.Mechanism
}

// Model is an immutable causal model: a validated DAG of variables with one
// mechanism each, plus a cached topological order. A Model is constructed
// once and is safe for unlimited concurrent Evaluate and Interchange calls;
// no call mutates shared state.
type Model struct {
	id  string
	dag *cdag.DAG
	log logr.Logger

	strictDomains bool

	// Random sampling configuration. Each call derives its own *rand.Rand
	// so concurrent calls never race; see options.go. srcMu guards src,
	// which is the one piece of state shared between calls.
	srcMu   sync.Mutex
	src     rand.Source
	seed    uint64
	hasSeed bool
}

// New validates a Definition and constructs a Model. All structural errors
// (cycles, unknown parents, arity mismatches, duplicate names) surface here;
// a Model that constructs successfully never fails for structural reasons
// during evaluation.
func New(def Definition, opts ...Option) (*Model, error) {
	declared := make(map[string]struct{}, len(def.Variables))
	for _, name := range def.Variables {
		declared[name] = struct{}{}
	}
	for name := range def.Domains {
		if _, ok := declared[name]; !ok {
			return nil, fmt.Errorf("%w: domain declared for %q", ErrUnknownVariable, name)
		}
	}
	for name := range def.Parents {
		if _, ok := declared[name]; !ok {
			return nil, fmt.Errorf("%w: parents declared for %q", ErrUnknownVariable, name)
		}
	}
	for name := range def.Mechanisms {
		if _, ok := declared[name]; !ok {
			return nil, fmt.Errorf("%w: mechanism declared for %q", ErrUnknownVariable, name)
		}
	}

	b := cdag.NewBuilder()
	for _, name := range def.Variables {
		var err error
		if parents := def.Parents[name]; len(parents) > 0 {
			err = b.AddDerived(name, def.Domains[name], def.Mechanisms[name], parents...)
		} else {
			err = b.AddRoot(name, def.Domains[name], def.Mechanisms[name])
		}
		if err != nil {
			return nil, err
		}
	}

	dag, err := b.Build()
	if err != nil {
		return nil, err
	}

	id := def.ID
	if id == "" {
		id = uuid.NewString()
	}

	m := &Model{
		id:  id,
		dag: dag,
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.log.V(1).Info("constructed causal model", "model", m.id, "variables", dag.Len())
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(def Definition, opts ...Option) *Model {
	m, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the model identifier.
func (m *Model) ID() string {
	return m.id
}

// TopologicalOrder returns a copy of the cached topological order of all
// variable names. Every parent appears before all of its children.
func (m *Model) TopologicalOrder() []string {
	order := m.dag.Order()
	names := make([]string, len(order))
	for i, id := range order {
		names[i] = string(id)
	}
	return names
}

// DAG returns the underlying validated graph for structural inspection.
func (m *Model) DAG() *cdag.DAG {
	return m.dag
}
