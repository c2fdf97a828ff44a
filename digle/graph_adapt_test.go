package digle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneem/quilt/digle"
	"github.com/jneem/quilt/graph"
)

// TestLinearReading_CleanFile renders a digle as a file: a chain of
// live lines has a unique linear order.
func TestLinearReading_CleanFile(t *testing.T) {
	d := digle.New()
	m := d.AsDigleMut()
	for n := uint64(0); n < 4; n++ {
		m.AddNode(id(n))
	}
	m.AddEdge(id(0), id(1))
	m.AddEdge(id(1), id(2))
	m.AddEdge(id(2), id(3))

	order, err := graph.LinearOrder[digle.LineId](d.AsDigle())
	require.NoError(t, err)
	assert.Equal(t, []digle.LineId{id(0), id(1), id(2), id(3)}, order)
}

// TestLinearReading_Conflict verifies that two unordered insertions
// between the same pair of lines read as ambiguous, which is exactly
// how the patch layer detects a conflict.
func TestLinearReading_Conflict(t *testing.T) {
	d := digle.New()
	m := d.AsDigleMut()
	for n := uint64(0); n < 4; n++ {
		m.AddNode(id(n))
	}
	// 0 → {1, 2} → 3 with 1 and 2 incomparable.
	m.AddEdge(id(0), id(1))
	m.AddEdge(id(0), id(2))
	m.AddEdge(id(1), id(3))
	m.AddEdge(id(2), id(3))

	_, err := graph.LinearOrder[digle.LineId](d.AsDigle())
	assert.ErrorIs(t, err, graph.ErrAmbiguousOrder)
}

// TestLinearReading_TombstoneFiltered verifies that tombstones keep
// their place in the full graph but vanish from the live reading.
func TestLinearReading_TombstoneFiltered(t *testing.T) {
	d := digle.New()
	m := d.AsDigleMut()
	v := d.AsDigle()
	for n := uint64(0); n < 3; n++ {
		m.AddNode(id(n))
	}
	m.AddEdge(id(0), id(1))
	m.AddEdge(id(1), id(2))
	m.AddEdge(id(0), id(2)) // keeps 0 before 2 once 1 is gone
	m.DeleteNode(id(1))

	// The unfiltered graph still sees the tombstone.
	full, err := graph.TopSort[digle.LineId](v)
	require.NoError(t, err)
	assert.Len(t, full, 3)

	live := graph.FilterNodes[digle.LineId](v, v.IsLive)
	order, err := graph.LinearOrder[digle.LineId](live)
	require.NoError(t, err)
	assert.Equal(t, []digle.LineId{id(0), id(2)}, order)
}

// TestTarjan_OverDigle runs the SCC decomposition over a digle whose
// ordering edges disagree, the shape a bad merge would produce.
func TestTarjan_OverDigle(t *testing.T) {
	d := digle.New()
	m := d.AsDigleMut()
	for n := uint64(0); n < 3; n++ {
		m.AddNode(id(n))
	}
	m.AddEdge(id(0), id(1))
	m.AddEdge(id(1), id(0))
	m.AddEdge(id(1), id(2))

	dec := graph.Tarjan[digle.LineId](d.AsDigle())
	require.Equal(t, 2, dec.Len())

	c0, ok := dec.ComponentOf(id(0))
	require.True(t, ok)
	c1, ok := dec.ComponentOf(id(1))
	require.True(t, ok)
	c2, ok := dec.ComponentOf(id(2))
	require.True(t, ok)

	assert.Equal(t, c0, c1)
	assert.NotEqual(t, c0, c2)
	assert.Equal(t, []int{c2}, dec.Successors(c0))
}
