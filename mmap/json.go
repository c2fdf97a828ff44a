package mmap

import (
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// codec is the JSON codec for the wire shape. jsoniter keeps the flat
// pair sequences cheap to encode without changing the output format.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUninitialized is returned when unmarshaling into an MMap that was
// not constructed with New (its comparators are missing).
var ErrUninitialized = errors.New("mmap: unmarshal into uninitialized MMap")

// MarshalJSON encodes the multimap as a flat array of [key, value]
// tuples in canonical ascending (k, v) order.
func (m *MMap[K, V]) MarshalJSON() ([]byte, error) {
	tuples := make([][2]any, 0, m.size)
	for _, k := range m.keys {
		for _, v := range m.vals[k] {
			tuples = append(tuples, [2]any{k, v})
		}
	}

	return codec.Marshal(tuples)
}

// UnmarshalJSON decodes a flat array of [key, value] tuples, in any
// order, by repeated Insert. The receiver must have been constructed
// with New so that its comparators are available; its previous contents
// are discarded.
func (m *MMap[K, V]) UnmarshalJSON(data []byte) error {
	if m.cmpKey == nil || m.cmpVal == nil {
		return ErrUninitialized
	}

	var tuples [][2]json.RawMessage
	if err := codec.Unmarshal(data, &tuples); err != nil {
		return fmt.Errorf("mmap: decode tuple sequence: %w", err)
	}

	m.keys = nil
	m.vals = make(map[K][]V, len(tuples))
	m.size = 0

	var k K
	var v V
	for _, t := range tuples {
		if err := codec.Unmarshal(t[0], &k); err != nil {
			return fmt.Errorf("mmap: decode key: %w", err)
		}
		if err := codec.Unmarshal(t[1], &v); err != nil {
			return fmt.Errorf("mmap: decode value: %w", err)
		}
		m.Insert(k, v)
	}

	return nil
}
