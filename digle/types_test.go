package digle_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jneem/quilt/digle"
)

// TestPatchId_CurSentinel verifies the zero value is the in-progress
// patch and renders as "cur".
func TestPatchId_CurSentinel(t *testing.T) {
	var p digle.PatchId
	assert.True(t, p.IsCur())
	assert.Equal(t, "cur", p.String())
	assert.Equal(t, digle.CurPatch(), p)
}

// TestPatchId_FromBytes covers the happy path and the length guard.
func TestPatchId_FromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, digle.PatchIdLen)
	p, err := digle.PatchIdFromBytes(raw)
	require.NoError(t, err)
	assert.False(t, p.IsCur())

	_, err = digle.PatchIdFromBytes(raw[:5])
	assert.ErrorIs(t, err, digle.ErrBadPatchId)
}

// TestPatchId_TextRoundTrip round-trips both the sentinel and a real
// hash through the text form.
func TestPatchId_TextRoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte{0x5c}, digle.PatchIdLen)
	hashed, err := digle.PatchIdFromBytes(raw)
	require.NoError(t, err)

	for _, p := range []digle.PatchId{digle.CurPatch(), hashed} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var q digle.PatchId
		require.NoError(t, q.UnmarshalText(text))
		assert.Equal(t, p, q)
	}

	var q digle.PatchId
	assert.ErrorIs(t, q.UnmarshalText([]byte("not-hex!")), digle.ErrBadPatchId)
}

// TestPatchId_Order verifies bytewise order with cur first.
func TestPatchId_Order(t *testing.T) {
	lo, err := digle.PatchIdFromBytes(bytes.Repeat([]byte{0x01}, digle.PatchIdLen))
	require.NoError(t, err)
	hi, err := digle.PatchIdFromBytes(bytes.Repeat([]byte{0x02}, digle.PatchIdLen))
	require.NoError(t, err)

	assert.Negative(t, digle.CurPatch().Compare(lo))
	assert.Negative(t, lo.Compare(hi))
	assert.Positive(t, hi.Compare(lo))
	assert.Zero(t, lo.Compare(lo))
}

// TestLineId_Order verifies (patch, line) lexicographic order.
func TestLineId_Order(t *testing.T) {
	p, err := digle.PatchIdFromBytes(bytes.Repeat([]byte{0x01}, digle.PatchIdLen))
	require.NoError(t, err)

	a := digle.LineId{Patch: digle.CurPatch(), Line: 9}
	b := digle.LineId{Patch: p, Line: 0}
	c := digle.LineId{Patch: p, Line: 1}

	assert.Negative(t, a.Compare(b), "patch dominates line index")
	assert.Negative(t, b.Compare(c))
	assert.Zero(t, c.Compare(c))
}

// TestEdge_Order verifies that live edges sort strictly before deleted
// ones, regardless of destination.
func TestEdge_Order(t *testing.T) {
	early := digle.LineId{Line: 0}
	late := digle.LineId{Line: 7}

	es := []digle.Edge{
		{Dest: early, Deleted: true},
		{Dest: late, Deleted: false},
		{Dest: late, Deleted: true},
		{Dest: early, Deleted: false},
	}
	sort.Slice(es, func(i, j int) bool { return es[i].Compare(es[j]) < 0 })

	want := []digle.Edge{
		{Dest: early, Deleted: false},
		{Dest: late, Deleted: false},
		{Dest: early, Deleted: true},
		{Dest: late, Deleted: true},
	}
	assert.Equal(t, want, es)
}
