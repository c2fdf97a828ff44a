// Package graph provides a read-only directed-graph abstraction and the
// algorithms the digle layer asks its structural questions through:
// an event-stream DFS, Tarjan strongly-connected-component
// decomposition, topological sort, and linear-order detection.
//
// Anything exposing Nodes, OutNeighbors and InNeighbors satisfies
// Graph[N]; the digle read view, the in-memory fixtures in the tests,
// and the FilterNodes adaptor all do. Algorithms never mutate the graph
// and hold O(V) auxiliary state for the duration of one call.
//
// The DFS is a lazy, one-shot stream of Visit events rather than a
// visit callback: Root when a new tree starts, Edge each time an
// out-edge is considered (with a New/Repeat status for its
// destination), and Retreat when a node's descendants are exhausted.
// TopSort and its cycle detection are readings of this one stream
// shape. Tarjan follows the same traversal order but runs its own
// recursive walk, because its lowlink bookkeeping needs the call
// structure rather than the event stream.
//
// Root selection is deterministic: trees start at unvisited nodes in
// Nodes() order, and implementations are expected to keep that order
// stable between runs. The digle view lists live lines before
// tombstoned ones, each ascending.
//
// Cycles and ambiguity are expected outcomes, not failures: TopSort
// reports ErrCycleDetected and LinearOrder additionally
// ErrAmbiguousOrder, both plain sentinels for errors.Is. The patch
// layer reads them as "this file is in conflict".
//
// Complexity: DFS, TopSort and Tarjan are O(V + E) time, O(V) memory;
// LinearOrder adds an O(E) adjacency check over the sorted pairs.
package graph
