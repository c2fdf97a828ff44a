package graph

import (
	"errors"
	"slices"
)

var (
	// ErrCycleDetected reports that the graph has a directed cycle, so
	// no topological sort exists.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrAmbiguousOrder reports that the graph is acyclic but admits
	// more than one topological sort, so it has no linear order.
	ErrAmbiguousOrder = errors.New("graph: topological sort is not unique")
)

// TopSort returns a topological sort of g, or ErrCycleDetected if g has
// a directed cycle.
//
// The sort is built in reverse by running the DFS once and appending
// each node as the search retreats from it; a cycle shows up as an edge
// into a node that is still on the DFS stack.
//
// Complexity: O(V + E) time, O(V) memory.
func TopSort[N comparable](g Graph[N]) ([]N, error) {
	visiting := make(map[N]struct{})
	var order []N

	w := NewWalker(g)
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		switch v.Kind {
		case VisitRoot:
			// A fresh tree must start with an empty stack.
			check(len(visiting) == 0, "root emitted mid-tree")
			visiting[v.Node] = struct{}{}
		case VisitEdge:
			if _, onStack := visiting[v.Dst]; onStack {
				// Back edge: the destination is an ancestor.
				return nil, ErrCycleDetected
			}
			if v.Status == StatusNew {
				visiting[v.Dst] = struct{}{}
			}
		case VisitRetreat:
			order = append(order, v.Node)
			_, onStack := visiting[v.Node]
			check(onStack, "retreat from a node not on the stack")
			delete(visiting, v.Node)
		}
	}
	slices.Reverse(order)

	return order, nil
}

// LinearOrder returns the unique topological sort of g, if there is
// exactly one. A topological sort is unique iff each node in it has an
// edge to the next one, so after sorting it suffices to confirm every
// adjacent pair. Returns ErrCycleDetected when g is cyclic and
// ErrAmbiguousOrder when several sorts exist.
//
// This is the test for "the digle reads as one unambiguous file".
func LinearOrder[N comparable](g Graph[N]) ([]N, error) {
	top, err := TopSort(g)
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(top); i++ {
		if !slices.Contains(g.OutNeighbors(top[i]), top[i+1]) {
			return nil, ErrAmbiguousOrder
		}
	}

	return top, nil
}

// check guards internal traversal invariants; a failure is a bug in
// this package, not in the caller.
func check(cond bool, msg string) {
	if !cond {
		panic("graph: " + msg)
	}
}
