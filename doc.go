// Package quilt is the storage core of a patch-based version control
// system: a directed line graph (the "digle") plus the graph algebra
// needed to turn it back into a file.
//
// Each node of a digle is one line of content, identified by a globally
// unique LineId; each directed edge is a "must appear before" ordering
// contributed by some patch. Lines are never garbage collected: deleting
// a line leaves a tombstone, so that every mutation can be undone exactly
// and edges from other patches never dangle.
//
// Everything is organized under three subpackages:
//
//	mmap/   — ordered multimap MMap[K,V], the adjacency primitive
//	digle/  — LineId, Edge, DigleData and its read/mutable views
//	graph/  — Graph[N] abstraction, DFS event stream, Tarjan SCC,
//	          topological sort and linear-order detection
//
// Quick ASCII example of a digle in conflict:
//
//	a───b
//	 \   \
//	  c───d
//
// Two patches each inserted a line between a and d; graph.LinearOrder
// reports the ambiguity, and the digle keeps both orderings until a
// later patch resolves them.
//
// Higher layers (patch application, persistence, diffing, CLI) consume
// these packages; none of their logic lives here.
package quilt
