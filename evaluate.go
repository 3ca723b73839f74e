package causal

import (
	"fmt"
	"time"

	"github.com/AmirZur/CausalAbstraction/cdag"
	"github.com/AmirZur/CausalAbstraction/cmech"
	"golang.org/x/exp/rand"
)

// Evaluate computes a full assignment for all variables from the given base
// inputs, walking the cached topological order.
//
// inputs supplies explicit values for zero or more root variables; roots
// without an input fall back to their sampler. intervention (may be nil) is a
// simultaneous override set applied to any variable regardless of kind:
// overridden variables take their override value, downstream values recompute
// from them, and upstream values are entirely unaffected.
//
// The call either returns a complete Assignment or an error with no partial
// result. Errors never corrupt the model; subsequent calls are unaffected.
func (m *Model) Evaluate(inputs Values, intervention Values, opts ...EvalOption) (*Assignment, error) {
	cfg := applyEvalOptions(opts)
	if err := m.checkCallNames(inputs, intervention); err != nil {
		return nil, err
	}
	return m.walk(inputs, intervention, m.newRand(cfg))
}

// checkCallNames validates input and intervention names before any value is
// computed, so a bad call fails fast without touching mechanisms.
func (m *Model) checkCallNames(inputs Values, intervention Values) error {
	for name := range inputs {
		v, ok := m.dag.Variable(cdag.VarID(name))
		if !ok {
			return fmt.Errorf("%w: input %q", ErrUnknownVariable, name)
		}
		if v.Kind() != cdag.KindRoot {
			return fmt.Errorf("%w: %q (use an intervention to force a derived variable)", ErrNotRoot, name)
		}
	}
	for name := range intervention {
		if _, ok := m.dag.Variable(cdag.VarID(name)); !ok {
			return fmt.Errorf("%w: intervention target %q", ErrUnknownVariable, name)
		}
	}
	return nil
}

// newRand builds the call-scoped random source. Precedence: per-call seed,
// model seed, injected model source, then a time-based fallback. An injected
// source is never handed to the call directly: one seed is drawn from it and
// the call runs on its own source, so concurrent calls never share state.
func (m *Model) newRand(cfg *evalConfig) *rand.Rand {
	switch {
	case cfg.hasSeed:
		return rand.New(rand.NewSource(cfg.seed))
	case m.hasSeed:
		return rand.New(rand.NewSource(m.seed))
	case m.src != nil:
		return rand.New(rand.NewSource(m.nextSrcSeed()))
	default:
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
}

// nextSrcSeed draws one value from the injected source under srcMu. The
// source is the only state shared between calls; everything downstream of
// the drawn seed is call-local.
func (m *Model) nextSrcSeed() uint64 {
	m.srcMu.Lock()
	defer m.srcMu.Unlock()
	return m.src.Uint64()
}

// walk runs the forward pass. Variables are processed in the cached
// topological order, so every parent value exists before its children read
// it; any order with that property yields identical results.
func (m *Model) walk(inputs Values, intervention Values, r *rand.Rand) (*Assignment, error) {
	order := m.dag.Order()
	values := make(map[cdag.VarID]any, len(order))
	tracker := newProvenanceTracker(len(order))

	for _, id := range order {
		v, _ := m.dag.Variable(id)
		name := string(id)

		var val any
		var tag Provenance

		if override, ok := intervention[name]; ok {
			// Override short-circuits: parents are not consulted.
			val = override
			tag = ProvenanceDirect
		} else if v.Kind() == cdag.KindRoot {
			tag = ProvenanceBase
			if in, ok := inputs[name]; ok {
				val = in
			} else {
				switch mech := v.Mechanism.(type) {
				case *cmech.Sampler:
					val = mech.Sample(r)
				case *cmech.Pure:
					// Zero-arity pure mechanism: a deterministic root.
					out, err := mech.Call(nil)
					if err != nil {
						return nil, fmt.Errorf("mechanism for %s: %w", id, err)
					}
					val = out
				default:
					return nil, fmt.Errorf("%w: %s has no input, no override and no sampler", ErrMissingInput, id)
				}
			}
		} else {
			args := make([]any, len(v.Parents))
			for i, pid := range v.Parents {
				args[i] = values[pid]
			}
			out, err := v.Mechanism.(*cmech.Pure).Call(args)
			if err != nil {
				return nil, fmt.Errorf("mechanism for %s: %w", id, err)
			}
			val = out
			tag = tracker.combine(v.Parents)
		}

		if m.strictDomains && !v.Domain.Contains(val) {
			return nil, fmt.Errorf("%w: %s = %v", ErrDomainViolation, id, val)
		}

		values[id] = val
		tracker.record(id, tag)
		m.log.V(2).Info("evaluated variable", "model", m.id, "variable", name, "provenance", tag.String())
	}

	return &Assignment{
		order:  order,
		values: values,
		tags:   tracker.tags,
	}, nil
}
