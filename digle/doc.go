// Package digle implements the directed line graph ("digle") at the
// heart of patch-based version control.
//
// A digle holds one node per line of content, identified by a LineId
// (the pair of the patch that introduced the line and an index within
// that patch), and one directed edge per "must appear before" ordering
// contributed by some patch. Deleting a line never removes it: the line
// moves to a tombstone set and every stored edge record that points at
// it (the forward edge at each in-neighbor, the back edge at each
// out-neighbor) is re-flagged as deleted, so that unapplying a patch can
// restore the previous state bit for bit. Records stored at the
// tombstone itself keep the flags of their own destinations.
//
// Three projections over one owned value:
//
//	DigleData — the authoritative state: live lines, tombstoned lines,
//	            and forward/back edge multimaps.
//	Digle     — a read-only view with live/all edge iteration and the
//	            consistency checker.
//	DigleMut  — the mutable view with six reversible primitives:
//	            AddNode/UnaddNode, DeleteNode/UndeleteNode,
//	            AddEdge/UnaddEdge.
//
// Every primitive has an exact inverse, and the pairing is load-bearing:
// the patch layer unapplies a patch by replaying its operations through
// the inverse primitives in reverse order.
//
// Preconditions on the primitives (deleting a line that is not live,
// unadding a tombstoned line, adding an edge with an unknown endpoint)
// are caller bugs that indicate corrupted history; they panic rather
// than returning an error.
//
// Edges bound to a source line are ordered with live edges before
// deleted ones, so Digle.OutEdges is a prefix of Digle.AllOutEdges and
// costs only the multimap lookup plus a scan of that live prefix.
//
// The read view satisfies graph.Graph[LineId] over all known lines,
// live and tombstoned. To work with live lines only, wrap it:
//
//	view := data.AsDigle()
//	live := graph.FilterNodes[digle.LineId](view, view.IsLive)
//	order, err := graph.LinearOrder[digle.LineId](live)
//
// A nil error means the digle reads as one unambiguous file.
//
// DigleData is not safe for concurrent use; reads and writes are
// serialized by the owner. Slices returned by the views borrow from the
// data and are invalidated by any mutation.
package digle
