// Package digle declares the identifier and edge value types.
//
// This file declares PatchId, LineId, Edge, their total orders, and the
// text forms used on the wire.
//
// Errors:
//
//	ErrBadPatchId — constructing a PatchId from malformed input.
package digle

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// PatchIdLen is the byte length of a patch identity hash.
const PatchIdLen = 32

// curPatchName is the text form of the in-progress patch sentinel.
const curPatchName = "cur"

// ErrBadPatchId indicates malformed input to PatchIdFromBytes or
// PatchIdFromHex.
var ErrBadPatchId = errors.New("digle: bad patch id")

// PatchId is the hash-like identity of a patch. The zero value is the
// "cur" sentinel, standing for the in-progress patch that has not been
// hashed yet.
type PatchId struct {
	h [PatchIdLen]byte
}

// CurPatch returns the sentinel identity of the in-progress patch.
func CurPatch() PatchId {
	return PatchId{}
}

// PatchIdFromBytes builds a PatchId from a raw hash of PatchIdLen bytes.
func PatchIdFromBytes(b []byte) (PatchId, error) {
	var p PatchId
	if len(b) != PatchIdLen {
		return p, fmt.Errorf("%w: want %d bytes, got %d", ErrBadPatchId, PatchIdLen, len(b))
	}
	copy(p.h[:], b)

	return p, nil
}

// PatchIdFromHex parses the text form produced by String: either the
// literal "cur" or a hex-encoded hash.
func PatchIdFromHex(s string) (PatchId, error) {
	if s == curPatchName {
		return CurPatch(), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return PatchId{}, fmt.Errorf("%w: %v", ErrBadPatchId, err)
	}

	return PatchIdFromBytes(b)
}

// IsCur reports whether p is the in-progress patch sentinel.
func (p PatchId) IsCur() bool {
	return p == PatchId{}
}

// Compare orders patch ids bytewise; the cur sentinel sorts first.
func (p PatchId) Compare(q PatchId) int {
	return bytes.Compare(p.h[:], q.h[:])
}

// String returns "cur" for the sentinel and the hex hash otherwise.
func (p PatchId) String() string {
	if p.IsCur() {
		return curPatchName
	}

	return hex.EncodeToString(p.h[:])
}

// MarshalText encodes p in its String form.
func (p PatchId) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes the form produced by MarshalText.
func (p *PatchId) UnmarshalText(text []byte) error {
	q, err := PatchIdFromHex(string(text))
	if err != nil {
		return err
	}
	*p = q

	return nil
}

// LineId identifies one line of content globally: the patch that
// introduced it and the line's index within that patch. LineIds are
// cheap value types; equality and order are structural.
type LineId struct {
	// Patch is the identity of the patch that introduced the line.
	Patch PatchId `json:"patch"`

	// Line is the index of the line within its patch.
	Line uint64 `json:"line"`
}

// Compare orders LineIds lexicographically by (patch, line).
func (l LineId) Compare(m LineId) int {
	if c := l.Patch.Compare(m.Patch); c != 0 {
		return c
	}
	switch {
	case l.Line < m.Line:
		return -1
	case l.Line > m.Line:
		return 1
	default:
		return 0
	}
}

// String renders the id as patch:line.
func (l LineId) String() string {
	return fmt.Sprintf("%s:%d", l.Patch, l.Line)
}

// Edge is a directed edge of the digle.
//
// Only the destination is stored; the source is the multimap key under
// which the edge lives, so anyone holding an Edge already knows where it
// starts.
//
// Edges are ordered by (Deleted, Dest) with live edges first. The digle
// relies on this: the live out-edges of a line are a prefix of all its
// out-edges.
type Edge struct {
	// Dest is the destination line of this (directed) edge.
	Dest LineId `json:"dest"`

	// Deleted is true when the edge points at a tombstoned line.
	Deleted bool `json:"deleted"`
}

// Compare orders edges by (Deleted, Dest), live before deleted.
func (e Edge) Compare(f Edge) int {
	if e.Deleted != f.Deleted {
		if !e.Deleted {
			return -1
		}

		return 1
	}

	return e.Dest.Compare(f.Dest)
}

// check panics with a digle-prefixed message when cond is false. The
// mutation primitives use it for caller-contract violations, which are
// bugs, not recoverable conditions.
func check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("digle: "+format, args...))
	}
}
