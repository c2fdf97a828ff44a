package digle

import "github.com/jneem/quilt/mmap"

// DigleData is the authoritative state of one digle: the live lines,
// the tombstoned lines, and the forward and reverse adjacency
// multimaps. It exclusively owns all four containers; share it through
// the Digle and DigleMut views.
type DigleData struct {
	lines        lineSet
	deletedLines lineSet
	edges        *mmap.MMap[LineId, Edge]
	backEdges    *mmap.MMap[LineId, Edge]
}

// newEdgeMap builds the adjacency multimap with the (Deleted, Dest)
// value order that keeps live edges in front.
func newEdgeMap() *mmap.MMap[LineId, Edge] {
	return mmap.New[LineId, Edge](LineId.Compare, Edge.Compare)
}

// New returns an empty digle.
func New() *DigleData {
	return &DigleData{
		edges:     newEdgeMap(),
		backEdges: newEdgeMap(),
	}
}

// Clone returns a deep copy.
func (d *DigleData) Clone() *DigleData {
	return &DigleData{
		lines:        d.lines.clone(),
		deletedLines: d.deletedLines.clone(),
		edges:        d.edges.Clone(),
		backEdges:    d.backEdges.Clone(),
	}
}

// Equal reports structural equality of the two states: same live set,
// same tombstone set, same edge multimaps.
func (d *DigleData) Equal(o *DigleData) bool {
	return d.lines.equal(&o.lines) &&
		d.deletedLines.equal(&o.deletedLines) &&
		d.edges.Equal(o.edges) &&
		d.backEdges.Equal(o.backEdges)
}

// AsDigle returns a read-only view of d.
func (d *DigleData) AsDigle() Digle {
	return Digle{data: d}
}

// AsDigleMut returns a mutable view of d.
func (d *DigleData) AsDigleMut() DigleMut {
	return DigleMut{data: d}
}

// knows reports whether id is a line of this digle, live or tombstoned.
func (d *DigleData) knows(id LineId) bool {
	return d.lines.contains(id) || d.deletedLines.contains(id)
}

// Digle is a read-only view over a DigleData.
//
// The slices it returns borrow from the underlying data: they are valid
// until the next mutation and must not be modified.
type Digle struct {
	data *DigleData
}

// OutEdges returns the live out-edges of line, exploiting the edge
// order: the live edges are exactly the prefix before the first deleted
// one.
//
// Complexity: O(log V) lookup + O(live degree) scan.
func (d Digle) OutEdges(line LineId) []Edge {
	return livePrefix(d.data.edges.Get(line))
}

// AllOutEdges returns every out-edge of line, live and deleted.
func (d Digle) AllOutEdges(line LineId) []Edge {
	return d.data.edges.Get(line)
}

// InEdges returns the live in-edges of line. The Dest field of each
// returned edge is the source of the corresponding forward edge.
func (d Digle) InEdges(line LineId) []Edge {
	return livePrefix(d.data.backEdges.Get(line))
}

// AllInEdges returns every in-edge of line, live and deleted.
func (d Digle) AllInEdges(line LineId) []Edge {
	return d.data.backEdges.Get(line)
}

// livePrefix cuts es at the first deleted edge.
func livePrefix(es []Edge) []Edge {
	for i, e := range es {
		if e.Deleted {
			return es[:i]
		}
	}

	return es
}

// IsLive reports whether line is live. The line must be known to this
// digle, live or tombstoned; asking about an unknown line panics.
func (d Digle) IsLive(line LineId) bool {
	check(d.data.knows(line), "IsLive(%v): unknown line", line)

	return d.data.lines.contains(line)
}

// Nodes returns every known line, live then tombstoned, each group in
// ascending order. Together with OutNeighbors and InNeighbors this
// satisfies the graph package's Graph[LineId] interface.
func (d Digle) Nodes() []LineId {
	out := make([]LineId, 0, d.data.lines.len()+d.data.deletedLines.len())
	out = append(out, d.data.lines.ids...)
	out = append(out, d.data.deletedLines.ids...)

	return out
}

// OutNeighbors returns the destinations of every out-edge of u, live
// and deleted.
func (d Digle) OutNeighbors(u LineId) []LineId {
	return dests(d.data.edges.Get(u))
}

// InNeighbors returns the sources of every in-edge of u, live and
// deleted.
func (d Digle) InNeighbors(u LineId) []LineId {
	return dests(d.data.backEdges.Get(u))
}

func dests(es []Edge) []LineId {
	out := make([]LineId, len(es))
	for i, e := range es {
		out[i] = e.Dest
	}

	return out
}

// AssertConsistent walks the whole state and panics on the first
// violation of the digle invariants:
//
//  1. the live and tombstoned sets are disjoint;
//  2. both endpoints of every edge are known, and the edge's Deleted
//     flag agrees with its destination's tombstone status;
//  3. forward and back edges correspond one to one.
//
// Intended for tests and debugging; cost is O(V + E).
func (d Digle) AssertConsistent() {
	for _, id := range d.data.lines.ids {
		check(!d.data.deletedLines.contains(id), "line %v both live and tombstoned", id)
	}

	d.checkEdges(d.data.edges, d.data.backEdges)
	d.checkEdges(d.data.backEdges, d.data.edges)
}

// checkEdges verifies one direction of the edge invariants; calling it
// both ways establishes the one-to-one correspondence.
func (d Digle) checkEdges(fwd, rev *mmap.MMap[LineId, Edge]) {
	for _, p := range fwd.Pairs() {
		src, e := p.Key, p.Val
		check(d.data.knows(src), "edge source %v unknown", src)
		check(d.data.knows(e.Dest), "edge destination %v unknown", e.Dest)
		check(e.Deleted == d.data.deletedLines.contains(e.Dest),
			"edge %v->%v: deleted flag %v disagrees with destination", src, e.Dest, e.Deleted)

		twin := Edge{Dest: src, Deleted: d.data.deletedLines.contains(src)}
		check(rev.Contains(e.Dest, twin), "edge %v->%v has no matching reverse edge", src, e.Dest)
	}
}

// DigleMut is the mutable view over a DigleData. It exposes exactly six
// primitives, each paired with its exact inverse so that patches can be
// unapplied:
//
//	AddNode    / UnaddNode
//	DeleteNode / UndeleteNode
//	AddEdge    / UnaddEdge
//
// All preconditions are caller contracts; violating one panics.
type DigleMut struct {
	data *DigleData
}

// AsDigle returns a read view of the same data, usable mid-mutation.
func (m DigleMut) AsDigle() Digle {
	return Digle{data: m.data}
}

// AddNode introduces a brand-new line, which starts live. The line must
// not already be known.
func (m DigleMut) AddNode(id LineId) {
	check(!m.data.knows(id), "AddNode(%v): line already known", id)
	m.data.lines.insert(id)
}

// UnaddNode is the inverse of AddNode. Unadding a line means unapplying
// the patch that introduced it, and every reverse-dependent patch must
// have been unapplied first — so the line is necessarily still live,
// and the caller has already removed all of its incident edges.
func (m DigleMut) UnaddNode(id LineId) {
	check(m.data.lines.contains(id), "UnaddNode(%v): line is not live", id)
	m.data.lines.remove(id)
}

// DeleteNode tombstones a live line. Every edge incident to the line,
// in both directions, has its deleted flag raised: the stored edge at
// each neighbor is the one whose Dest is this line.
func (m DigleMut) DeleteNode(id LineId) {
	check(m.data.lines.contains(id), "DeleteNode(%v): line is not live", id)
	m.data.lines.remove(id)
	m.data.deletedLines.insert(id)
	m.markNeighbors(id, true)
}

// UndeleteNode is the inverse of DeleteNode: the line returns to the
// live set and its incident edges are re-flagged as live.
func (m DigleMut) UndeleteNode(id LineId) {
	check(m.data.deletedLines.contains(id), "UndeleteNode(%v): line is not tombstoned", id)
	m.data.deletedLines.remove(id)
	m.data.lines.insert(id)
	m.markNeighbors(id, false)
}

// markNeighbors re-flags every edge pointing at id: the back edge held
// by each out-neighbor and the forward edge held by each in-neighbor.
func (m DigleMut) markNeighbors(id LineId, deleted bool) {
	view := m.AsDigle()

	// Snapshot the neighbor ids first: flipping a flag moves the edge
	// within its value set, which would disturb live iteration.
	outs := dests(view.AllOutEdges(id))
	ins := dests(view.AllInEdges(id))

	for _, o := range outs {
		m.flipEdge(m.data.backEdges, o, id, deleted)
	}
	for _, i := range ins {
		m.flipEdge(m.data.edges, i, id, deleted)
	}
}

// flipEdge rewrites the edge src→dst inside edges with its deleted flag
// set to deleted. The flag participates in the value order, so this is
// a remove/insert pair rather than an update in place.
func (m DigleMut) flipEdge(edges *mmap.MMap[LineId, Edge], src, dst LineId, deleted bool) {
	edges.Remove(src, Edge{Dest: dst, Deleted: !deleted})
	edges.Insert(src, Edge{Dest: dst, Deleted: deleted})
}

// AddEdge records that from must appear before to. Both lines must be
// known; either may be tombstoned, and each stored edge takes its
// deleted flag from its destination's tombstone status.
func (m DigleMut) AddEdge(from, to LineId) {
	check(m.data.knows(from), "AddEdge(%v, %v): source unknown", from, to)
	check(m.data.knows(to), "AddEdge(%v, %v): destination unknown", from, to)

	m.data.edges.Insert(from, Edge{
		Dest:    to,
		Deleted: m.data.deletedLines.contains(to),
	})
	m.data.backEdges.Insert(to, Edge{
		Dest:    from,
		Deleted: m.data.deletedLines.contains(from),
	})
}

// UnaddEdge is the inverse of AddEdge. Both endpoints must still be
// known: when unapplying a patch that removes lines and the edges
// between them, the edges go first.
func (m DigleMut) UnaddEdge(from, to LineId) {
	check(m.data.knows(from), "UnaddEdge(%v, %v): source unknown", from, to)
	check(m.data.knows(to), "UnaddEdge(%v, %v): destination unknown", from, to)

	m.data.edges.Remove(from, Edge{
		Dest:    to,
		Deleted: m.data.deletedLines.contains(to),
	})
	m.data.backEdges.Remove(to, Edge{
		Dest:    from,
		Deleted: m.data.deletedLines.contains(from),
	})
}
