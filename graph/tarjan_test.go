package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneem/quilt/graph"
)

// componentOf is a test shorthand that requires membership.
func componentOf(t *testing.T, d *graph.Decomposition[int], n int) int {
	t.Helper()
	c, ok := d.ComponentOf(n)
	require.True(t, ok, "node %d missing from decomposition", n)

	return c
}

// TestTarjan_CycleAndTail decomposes a lasso: a 3-cycle with a tail
// node feeding it.
func TestTarjan_CycleAndTail(t *testing.T) {
	g := buildGraph(t, "0-1, 1-2, 2-3, 3-1")
	d := graph.Tarjan[int](g)

	require.Equal(t, 2, d.Len())

	cyc := componentOf(t, d, 1)
	assert.Equal(t, cyc, componentOf(t, d, 2))
	assert.Equal(t, cyc, componentOf(t, d, 3))
	tail := componentOf(t, d, 0)
	assert.NotEqual(t, cyc, tail)

	assert.ElementsMatch(t, []int{1, 2, 3}, d.Component(cyc))
	assert.Equal(t, []int{0}, d.Component(tail))

	// Condensation: tail → cycle, cycle → nothing.
	assert.Equal(t, []int{cyc}, d.Successors(tail))
	assert.Empty(t, d.Successors(cyc))
}

// TestTarjan_Acyclic verifies that a DAG decomposes into singletons
// whose ids come out in reverse topological order.
func TestTarjan_Acyclic(t *testing.T) {
	g := buildGraph(t, "0-1, 0-2, 1-3, 3-2")
	d := graph.Tarjan[int](g)

	require.Equal(t, 4, d.Len())
	for _, n := range g.Nodes() {
		assert.Len(t, d.Component(componentOf(t, d, n)), 1)
	}

	// A component is finished only after everything it reaches, so
	// every condensation edge points at a smaller id.
	for c := 0; c < d.Len(); c++ {
		for _, s := range d.Successors(c) {
			assert.Less(t, s, c)
		}
	}
}

// TestTarjan_TwoCycles verifies a condensation edge between two
// nontrivial components.
func TestTarjan_TwoCycles(t *testing.T) {
	g := buildGraph(t, "0-1, 1-0, 1-2, 2-3, 3-2")
	d := graph.Tarjan[int](g)

	require.Equal(t, 2, d.Len())
	first := componentOf(t, d, 0)
	second := componentOf(t, d, 2)
	assert.NotEqual(t, first, second)
	assert.ElementsMatch(t, []int{0, 1}, d.Component(first))
	assert.ElementsMatch(t, []int{2, 3}, d.Component(second))
	assert.Equal(t, []int{second}, d.Successors(first))
	assert.Empty(t, d.Successors(second))
}

// TestTarjan_Partition is the partition law: each node belongs to
// exactly one component, and components cover the node set.
func TestTarjan_Partition(t *testing.T) {
	g := buildGraph(t, "0-1, 1-2, 2-0, 2-3, 3-4, 4-3, 5-5, 1-5")
	d := graph.Tarjan[int](g)

	seen := make(map[int]int)
	for c, comp := range d.Components() {
		require.NotEmpty(t, comp)
		for _, n := range comp {
			_, dup := seen[n]
			require.False(t, dup, "node %d in two components", n)
			seen[n] = c
		}
	}
	assert.Len(t, seen, len(g.Nodes()))

	// Spot-check mutual reachability within components.
	assert.Equal(t, seen[0], seen[2])
	assert.Equal(t, seen[3], seen[4])
	assert.NotEqual(t, seen[0], seen[3])
	assert.NotEqual(t, seen[3], seen[5])
}
