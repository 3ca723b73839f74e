package cdag

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/AmirZur/CausalAbstraction/cmech"
	"go.uber.org/multierr"
)

// Validation limits to prevent pathological cases
const (
	MaxVariables     = 10000
	MaxDepth         = 500
	MaxParentsPerVar = 1000
)

// Validate performs all causal-graph validations.
// This includes parent resolution, mechanism arity checks, and cycle detection.
// Mechanism errors are collected across all variables so a broken model
// definition surfaces every arity problem at once; structural errors
// (unknown parents, cycles) return early because later checks depend on them.
func (g *Graph) Validate() error {
	if len(g.Vars) > MaxVariables {
		return fmt.Errorf("%w: variable count %d exceeds maximum %d",
			ErrInvalidGraph, len(g.Vars), MaxVariables)
	}

	// 1. Resolve parent references and wire child edges
	if err := g.link(); err != nil {
		return fmt.Errorf("graph validation failed: %w", err)
	}

	// 2. Mechanism arity and kind checks, aggregated
	if err := g.validateMechanisms(); err != nil {
		return fmt.Errorf("graph validation failed: %w", err)
	}

	// 3. Cycle detection using DFS
	if err := g.detectCycles(); err != nil {
		return fmt.Errorf("graph validation failed: %w", err)
	}

	return nil
}

// validateMechanisms checks that each variable's mechanism matches its parent
// count. A derived variable must carry a pure mechanism whose arity equals the
// number of declared parents. A root variable may carry a zero-arity mechanism
// or none at all (requiring an input at evaluation time).
// All failures are combined into a single error with multierr.
func (g *Graph) validateMechanisms() error {
	var err error
	for _, id := range g.VarOrder {
		v := g.Vars[id]

		if len(v.Parents) > MaxParentsPerVar {
			err = multierr.Append(err, fmt.Errorf("%w: variable %s has %d parents, exceeds maximum %d",
				ErrInvalidGraph, id, len(v.Parents), MaxParentsPerVar))
			continue
		}

		if v.Mechanism == nil {
			if v.Kind() == KindDerived {
				err = multierr.Append(err, fmt.Errorf("%w: derived variable %s", ErrMissingMechanism, id))
			}
			continue
		}

		if got, want := v.Mechanism.Arity(), len(v.Parents); got != want {
			err = multierr.Append(err, fmt.Errorf("%w: variable %s has %d parents but its mechanism expects %d arguments",
				ErrArityMismatch, id, want, got))
			continue
		}

		// A sampler on a derived variable always trips the arity check
		// above (samplers have arity 0, derived variables have parents),
		// so only unknown mechanism implementations are left to reject.
		switch v.Mechanism.(type) {
		case *cmech.Pure, *cmech.Sampler:
		default:
			err = multierr.Append(err, fmt.Errorf("%w: variable %s has unsupported mechanism type %T",
				ErrInvalidGraph, id, v.Mechanism))
		}
	}
	return err
}

// detectCycles uses Depth-First Search (DFS) to find cycles in the parent
// relation, walking parent -> child edges.
// Returns ErrCycleDetected with the offending path if any cycle is found.
// Time complexity: O(V + E) where V is variables and E is edges.
func (g *Graph) detectCycles() error {
	visited := make(map[VarID]bool, len(g.Vars))
	recStack := make(map[VarID]bool, len(g.Vars))

	var dfs func(VarID, []VarID, int) error
	dfs = func(id VarID, path []VarID, depth int) error {
		if depth > MaxDepth {
			return fmt.Errorf("%w: maximum depth %d exceeded", ErrInvalidGraph, MaxDepth)
		}

		visited[id] = true
		recStack[id] = true
		path = append(path, id)

		for _, childID := range g.Vars[id].Children {
			if !visited[childID] {
				if err := dfs(childID, path, depth+1); err != nil {
					return err
				}
			} else if recStack[childID] {
				// Cycle detected!
				cyclePath := append(path, childID)
				pathStr := make([]string, len(cyclePath))
				for i, pid := range cyclePath {
					pathStr[i] = string(pid)
				}
				return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(pathStr, " -> "))
			}
		}

		recStack[id] = false
		return nil
	}

	// Check all variables (handles disconnected components)
	for _, id := range g.VarOrder {
		if !visited[id] {
			if err := dfs(id, nil, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertSorted inserts an item into a sorted slice maintaining sort order.
// Time complexity: O(log n + n) for binary search + insert.
func insertSorted(slice []VarID, item VarID) []VarID {
	idx := sort.Search(len(slice), func(i int) bool {
		return slice[i] >= item
	})
	return slices.Insert(slice, idx, item)
}

// topologicalSort creates a deterministic topological ordering using Kahn's
// algorithm. Any order that places every parent before its children yields
// identical evaluation results; the sorted-queue tie-break only pins down one
// canonical order so runs are reproducible and error messages stable.
// Time complexity: O(V log V + E).
func (g *Graph) topologicalSort() ([]VarID, error) {
	inDegree := make(map[VarID]int, len(g.Vars))
	for id := range g.Vars {
		inDegree[id] = 0
	}
	for _, v := range g.Vars {
		for _, childID := range v.Children {
			inDegree[childID]++
		}
	}

	// Queue of variables with no incoming edges (roots).
	// Use sorted slice for deterministic ordering.
	queue := make([]VarID, 0, len(g.Vars)/4)
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}
	slices.Sort(queue) // Initial sort

	result := make([]VarID, 0, len(g.Vars))
	for len(queue) > 0 {
		// Pop first (deterministic ordering)
		id := queue[0]
		queue = queue[1:]
		result = append(result, id)

		children := make([]VarID, len(g.Vars[id].Children))
		copy(children, g.Vars[id].Children)
		slices.Sort(children)

		for _, childID := range children {
			inDegree[childID]--
			if inDegree[childID] == 0 {
				queue = insertSorted(queue, childID)
			}
		}
	}

	// If we didn't process all variables, there must be a cycle
	if len(result) != len(g.Vars) {
		return nil, fmt.Errorf("%w: topological sort failed", ErrCycleDetected)
	}

	return result, nil
}

// Ancestors returns every variable upstream of id (excluding id itself),
// walking child -> parent edges. Used by consumers that need to reason about
// what can influence a variable, e.g. intervention locality checks.
func (g *Graph) Ancestors(id VarID) []VarID {
	seen := make(map[VarID]bool)

	var walk func(VarID)
	walk = func(current VarID) {
		v, ok := g.Vars[current]
		if !ok {
			return
		}
		for _, parentID := range v.Parents {
			if !seen[parentID] {
				seen[parentID] = true
				walk(parentID)
			}
		}
	}
	walk(id)

	result := make([]VarID, 0, len(seen))
	for pid := range seen {
		result = append(result, pid)
	}
	slices.Sort(result)
	return result
}
