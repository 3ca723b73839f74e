package cdag

// DAG is a fully validated causal graph ready for evaluation.
// It is immutable and safe for concurrent use.
type DAG struct {
	graph *Graph
	order []VarID
}

// Order returns a copy of the cached topological order. Every parent appears
// before all of its children.
func (d *DAG) Order() []VarID {
	out := make([]VarID, len(d.order))
	copy(out, d.order)
	return out
}

// Variable returns a variable by ID if it exists.
func (d *DAG) Variable(id VarID) (*Variable, bool) {
	v, ok := d.graph.Vars[id]
	return v, ok
}

// Len returns the number of variables in the graph.
func (d *DAG) Len() int {
	return len(d.graph.Vars)
}

// Roots returns the root variables in topological order.
func (d *DAG) Roots() []VarID {
	var roots []VarID
	for _, id := range d.order {
		if d.graph.Vars[id].Kind() == KindRoot {
			roots = append(roots, id)
		}
	}
	return roots
}

// Ancestors returns every variable upstream of id, sorted by name.
func (d *DAG) Ancestors(id VarID) []VarID {
	return d.graph.Ancestors(id)
}

// GetGraph returns the underlying graph for structural inspection.
// Do not modify the graph; the DAG assumes it is frozen.
func (d *DAG) GetGraph() *Graph {
	return d.graph
}
