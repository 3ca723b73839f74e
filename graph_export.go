package causal

// GraphStructure is a stable, renderer-facing description of the model's
// shape. A renderer consumes (GraphStructure, Assignment) and owns all
// layout and coloring; the core never depends on a renderer being present.
type GraphStructure struct {
	ModelID   string
	Variables []VariableInfo
	Edges     []Edge
}

// VariableInfo describes one variable for external consumers.
type VariableInfo struct {
	Name    string
	Kind    string
	Parents []string
	// Domain lists the admissible values, or nil when unconstrained.
	Domain []any
}

// Edge is one parent -> child influence.
type Edge struct {
	Parent string
	Child  string
}

// GraphStructure exports the model's structure with variables in topological
// order. The returned value shares nothing mutable with the model.
func (m *Model) GraphStructure() GraphStructure {
	order := m.dag.Order()
	gs := GraphStructure{
		ModelID:   m.id,
		Variables: make([]VariableInfo, 0, len(order)),
	}
	for _, id := range order {
		v, _ := m.dag.Variable(id)
		info := VariableInfo{
			Name:   string(id),
			Kind:   v.Kind().String(),
			Domain: v.Domain.Values(),
		}
		for _, pid := range v.Parents {
			info.Parents = append(info.Parents, string(pid))
			gs.Edges = append(gs.Edges, Edge{Parent: string(pid), Child: string(id)})
		}
		gs.Variables = append(gs.Variables, info)
	}
	return gs
}
