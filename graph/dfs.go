package graph

// Status reports whether an edge's destination had been entered before
// the edge was considered.
type Status int

const (
	// StatusNew marks an edge whose destination is entered for the
	// first time, through this edge.
	StatusNew Status = iota

	// StatusRepeat marks an edge whose destination was already entered
	// earlier in the traversal.
	StatusRepeat
)

// VisitKind discriminates the three DFS events.
type VisitKind int

const (
	// VisitRoot starts a new DFS tree.
	VisitRoot VisitKind = iota

	// VisitEdge considers one out-edge of the node on top of the stack.
	VisitEdge

	// VisitRetreat leaves a node whose descendants are exhausted.
	VisitRetreat
)

// Visit is one DFS event. Which fields are meaningful depends on Kind:
//
//	VisitRoot    — Node is the root of a new tree.
//	VisitEdge    — the edge Src→Dst is being considered; Status says
//	               whether Dst is entered now or was seen before.
//	VisitRetreat — Node is being left; Parent is where the search
//	               backtracks to, present unless Node was a root.
type Visit[N comparable] struct {
	Kind VisitKind

	// Node is the entered root (VisitRoot) or the departed node
	// (VisitRetreat).
	Node N

	// Src and Dst are the endpoints of the considered edge (VisitEdge).
	Src, Dst N

	// Status qualifies Dst on a VisitEdge.
	Status Status

	// Parent is the backtrack target of a VisitRetreat; meaningful only
	// when HasParent is true.
	Parent    N
	HasParent bool
}

// frame is one level of the explicit DFS stack: a node and its
// not-yet-considered out-neighbors.
type frame[N comparable] struct {
	node      N
	next      []N
	parent    N
	hasParent bool
}

// Walker is a lazy, one-shot depth-first traversal over a whole graph.
// Every entered node is framed by exactly one Root event or one Edge
// event with StatusNew, and departed by exactly one Retreat event;
// every out-edge of an entered node is emitted exactly once, between
// its source's entry and retreat.
//
// The walk picks roots among unvisited nodes in Nodes() order. It
// borrows the graph for its lifetime; mutating the graph mid-walk is a
// caller error.
//
// Complexity: O(V + E) events overall, O(V) live state.
type Walker[N comparable] struct {
	g       Graph[N]
	roots   []N
	rootIdx int
	visited map[N]struct{}
	stack   []frame[N]
}

// NewWalker starts a traversal of g. No work happens until Next.
func NewWalker[N comparable](g Graph[N]) *Walker[N] {
	return &Walker[N]{
		g:       g,
		roots:   g.Nodes(),
		visited: make(map[N]struct{}),
	}
}

// Next returns the next event, or ok == false once every reachable node
// has been entered and departed.
func (w *Walker[N]) Next() (Visit[N], bool) {
	if len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if len(top.next) > 0 {
			dst := top.next[0]
			top.next = top.next[1:]

			return w.crossEdge(top.node, dst), true
		}

		// Out-edges exhausted: retreat toward the parent frame.
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		return Visit[N]{
			Kind:      VisitRetreat,
			Node:      f.node,
			Parent:    f.parent,
			HasParent: f.hasParent,
		}, true
	}

	// Stack drained: open the next tree at the first unvisited root.
	for w.rootIdx < len(w.roots) {
		r := w.roots[w.rootIdx]
		w.rootIdx++
		if _, seen := w.visited[r]; seen {
			continue
		}
		w.visited[r] = struct{}{}
		w.stack = append(w.stack, frame[N]{node: r, next: w.g.OutNeighbors(r)})

		return Visit[N]{Kind: VisitRoot, Node: r}, true
	}

	return Visit[N]{}, false
}

// crossEdge emits the event for src→dst, entering dst when it is new.
func (w *Walker[N]) crossEdge(src, dst N) Visit[N] {
	if _, seen := w.visited[dst]; seen {
		return Visit[N]{Kind: VisitEdge, Src: src, Dst: dst, Status: StatusRepeat}
	}

	w.visited[dst] = struct{}{}
	w.stack = append(w.stack, frame[N]{
		node:      dst,
		next:      w.g.OutNeighbors(dst),
		parent:    src,
		hasParent: true,
	})

	return Visit[N]{Kind: VisitEdge, Src: src, Dst: dst, Status: StatusNew}
}
