package graph

// Graph is the read-only capability set the algorithms in this package
// consume. N is the node identity; it must be usable as a map key.
//
// Implementations return freshly usable slices whose order is stable
// within a run: Nodes() order drives DFS root selection, and neighbor
// order drives edge-visit order.
type Graph[N comparable] interface {
	// Nodes lists every node of the graph.
	Nodes() []N

	// OutNeighbors lists the destinations of u's out-edges.
	OutNeighbors(u N) []N

	// InNeighbors lists the sources of u's in-edges.
	InNeighbors(u N) []N
}

// NodeFiltered restricts a graph to the nodes accepted by a predicate,
// filtering both the node list and every neighbor list. Edges to or
// from rejected nodes disappear with them, so node filtering is all the
// digle layer needs to, say, traverse only live lines.
type NodeFiltered[N comparable] struct {
	g    Graph[N]
	keep func(N) bool
}

// FilterNodes wraps g so that only nodes with keep(n) == true are
// visible.
func FilterNodes[N comparable](g Graph[N], keep func(N) bool) NodeFiltered[N] {
	return NodeFiltered[N]{g: g, keep: keep}
}

// Nodes lists the surviving nodes in the underlying order.
func (f NodeFiltered[N]) Nodes() []N {
	return f.filter(f.g.Nodes())
}

// OutNeighbors lists u's surviving out-neighbors.
func (f NodeFiltered[N]) OutNeighbors(u N) []N {
	return f.filter(f.g.OutNeighbors(u))
}

// InNeighbors lists u's surviving in-neighbors.
func (f NodeFiltered[N]) InNeighbors(u N) []N {
	return f.filter(f.g.InNeighbors(u))
}

func (f NodeFiltered[N]) filter(ns []N) []N {
	out := make([]N, 0, len(ns))
	for _, n := range ns {
		if f.keep(n) {
			out = append(out, n)
		}
	}

	return out
}
