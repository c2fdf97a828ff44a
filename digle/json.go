package digle

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/jneem/quilt/mmap"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// digleWire is the persisted shape of a DigleData, known on disk as
// "Digle": the four containers in a fixed field order, with sets as
// sorted sequences and multimaps as flat (key, value) pair sequences.
type digleWire struct {
	Lines        []LineId                 `json:"lines"`
	DeletedLines []LineId                 `json:"deleted_lines"`
	Edges        *mmap.MMap[LineId, Edge] `json:"edges"`
	BackEdges    *mmap.MMap[LineId, Edge] `json:"back_edges"`
}

// MarshalJSON encodes the digle in its canonical on-disk form. Sets
// come out ascending and multimap pairs ascending by (key, value), so
// equal digles serialize identically.
func (d *DigleData) MarshalJSON() ([]byte, error) {
	return codec.Marshal(digleWire{
		Lines:        d.lines.ids,
		DeletedLines: d.deletedLines.ids,
		Edges:        d.edges,
		BackEdges:    d.backEdges,
	})
}

// UnmarshalJSON decodes the form produced by MarshalJSON. Ordering on
// the wire is not trusted: sets and multimaps are rebuilt by repeated
// insertion, so any permutation of the same entries decodes to the same
// state. Previous contents of d are discarded.
func (d *DigleData) UnmarshalJSON(data []byte) error {
	wire := digleWire{
		Edges:     newEdgeMap(),
		BackEdges: newEdgeMap(),
	}
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("digle: decode: %w", err)
	}

	fresh := New()
	for _, id := range wire.Lines {
		fresh.lines.insert(id)
	}
	for _, id := range wire.DeletedLines {
		fresh.deletedLines.insert(id)
	}
	fresh.edges = wire.Edges
	fresh.backEdges = wire.BackEdges
	*d = *fresh

	return nil
}
