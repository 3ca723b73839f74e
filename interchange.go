package causal

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/AmirZur/CausalAbstraction/cdag"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// CounterfactualSpec maps a target variable name to the full base-input
// assignment used to compute that target's substitute value in an isolated
// auxiliary run.
type CounterfactualSpec map[string]Values

// Interchange runs the two-phase interchange intervention protocol:
//
//  1. For each target t with counterfactual inputs I_t, run an independent
//     auxiliary forward pass Evaluate(I_t, nil) and take t's resulting value.
//     Auxiliary passes never share intermediate values with each other.
//  2. Feed the collected values as a simultaneous intervention into one
//     evaluation of the original base inputs.
//
// The result equals a plain intervention whose override values were
// correctly pre-computed by hand; the counterfactual spec lets the caller
// name a source of truth (another input configuration) instead of an
// explicit number, which matters when intermediate values are not
// human-interpretable.
//
// Auxiliary passes run concurrently. Each derives its own seed from the call
// seed and the target name, so concurrency never changes results: the same
// seed and inputs always produce a bit-identical Assignment.
func (m *Model) Interchange(inputs Values, spec CounterfactualSpec, opts ...EvalOption) (*Assignment, error) {
	targets := maps.Keys(spec)
	for _, t := range targets {
		if _, ok := m.dag.Variable(cdag.VarID(t)); !ok {
			return nil, fmt.Errorf("%w: counterfactual target %q", ErrUnknownVariable, t)
		}
	}

	cfg := applyEvalOptions(opts)
	baseSeed := m.callSeed(cfg)

	overrides := make(Values, len(targets))
	var g errgroup.Group
	results := make([]any, len(targets))
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			aux, err := m.Evaluate(spec[t], nil, EvalWithSeed(deriveSeed(baseSeed, t)))
			if err != nil {
				return fmt.Errorf("auxiliary run for %q: %w", t, err)
			}
			v, ok := aux.Value(t)
			if !ok {
				return fmt.Errorf("%w: auxiliary run did not assign %q", ErrUnknownVariable, t)
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, t := range targets {
		overrides[t] = results[i]
		m.log.V(1).Info("derived interchange override", "model", m.id, "target", t, "value", results[i])
	}

	return m.Evaluate(inputs, overrides, opts...)
}

// callSeed resolves the base seed for one interchange call, mirroring the
// precedence in newRand: per-call seed, model seed, injected model source,
// then a time-based fallback. The seed is resolved once per call so
// concurrent auxiliary passes stay decorrelated.
func (m *Model) callSeed(cfg *evalConfig) uint64 {
	switch {
	case cfg.hasSeed:
		return cfg.seed
	case m.hasSeed:
		return m.seed
	case m.src != nil:
		return m.nextSrcSeed()
	default:
		return uint64(time.Now().UnixNano())
	}
}

// deriveSeed mixes the call seed with a target name so each auxiliary pass
// owns an independent, reproducible stream.
func deriveSeed(base uint64, target string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(target))
	return base ^ h.Sum64()
}
