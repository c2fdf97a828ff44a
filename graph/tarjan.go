package graph

import "slices"

// Decomposition is the result of Tarjan's algorithm: a partition of the
// nodes into strongly connected components plus the condensation DAG
// over them. Component ids are dense small integers; Tarjan completes a
// component only after all components it can reach, so ids come out in
// reverse topological order of the condensation.
type Decomposition[N comparable] struct {
	comps [][]N
	which map[N]int
	succs [][]int
}

// Len returns the number of components.
func (d *Decomposition[N]) Len() int {
	return len(d.comps)
}

// Component returns the nodes of component c. Node order within a
// component is unspecified.
func (d *Decomposition[N]) Component(c int) []N {
	return d.comps[c]
}

// Components returns every component, indexed by component id.
func (d *Decomposition[N]) Components() [][]N {
	return d.comps
}

// ComponentOf returns the id of the component containing u, and whether
// u was part of the decomposed graph at all.
func (d *Decomposition[N]) ComponentOf(u N) (int, bool) {
	c, ok := d.which[u]

	return c, ok
}

// Successors returns the ids of the components directly reachable from
// component c in the condensation DAG, ascending and without
// duplicates.
func (d *Decomposition[N]) Successors(c int) []int {
	return d.succs[c]
}

// tarjanState carries the bookkeeping of one run: discovery indices,
// lowlinks, and the stack of nodes whose component is still open.
type tarjanState[N comparable] struct {
	g       Graph[N]
	counter int
	index   map[N]int
	lowlink map[N]int
	stack   []N
	onStack map[N]struct{}

	comps [][]N
	which map[N]int
}

// Tarjan decomposes g into strongly connected components.
//
// The traversal is the same depth-first order the Walker produces, but
// re-implemented here because the lowlink bookkeeping needs the call
// structure, not just the event stream.
//
// Complexity: O(V + E) time, O(V) memory.
func Tarjan[N comparable](g Graph[N]) *Decomposition[N] {
	t := &tarjanState[N]{
		g:       g,
		index:   make(map[N]int),
		lowlink: make(map[N]int),
		onStack: make(map[N]struct{}),
		which:   make(map[N]int),
	}

	for _, v := range g.Nodes() {
		if _, seen := t.index[v]; !seen {
			t.strongConnect(v)
		}
	}

	return &Decomposition[N]{
		comps: t.comps,
		which: t.which,
		succs: t.condense(),
	}
}

// strongConnect is the classical recursive step: number v, push it,
// explore, and pop a whole component when v turns out to be its root.
func (t *tarjanState[N]) strongConnect(v N) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = struct{}{}

	for _, w := range t.g.OutNeighbors(v) {
		if _, seen := t.index[w]; !seen {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if _, open := t.onStack[w]; open {
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	// v is the root of a component: everything above it on the stack
	// belongs to the same component.
	id := len(t.comps)
	var comp []N
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		delete(t.onStack, w)
		t.which[w] = id
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.comps = append(t.comps, comp)
}

// condense projects every edge onto component ids, dropping
// intra-component edges and duplicates.
func (t *tarjanState[N]) condense() [][]int {
	succs := make([][]int, len(t.comps))
	for c, comp := range t.comps {
		for _, u := range comp {
			for _, v := range t.g.OutNeighbors(u) {
				cv := t.which[v]
				if cv != c && !slices.Contains(succs[c], cv) {
					succs[c] = append(succs[c], cv)
				}
			}
		}
		slices.Sort(succs[c])
	}

	return succs
}
