package weights

import (
	"fmt"
	"strconv"
)

// Index maps external identifiers (FIPS codes, parcel ids, ...) to the
// 0-based positions used by Matrix, and back.
type Index struct {
	ids []string
	pos map[string]int
}

// NewIndex assigns position k to ids[k]. Ids must be non-empty and unique.
func NewIndex(ids []string) (*Index, error) {
	ix := &Index{ids: make([]string, len(ids)), pos: make(map[string]int, len(ids))}
	for k, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("NewIndex: position %d: %w", k, ErrEmptyID)
		}
		if prev, dup := ix.pos[id]; dup {
			return nil, fmt.Errorf("NewIndex: %q at %d and %d: %w", id, prev, k, ErrDuplicateID)
		}
		ix.pos[id] = k
		ix.ids[k] = id
	}

	return ix, nil
}

// Len returns the number of identifiers.
func (ix *Index) Len() int { return len(ix.ids) }

// Position returns the 0-based position of id.
func (ix *Index) Position(id string) (int, bool) {
	k, ok := ix.pos[id]
	return k, ok
}

// ID returns the external identifier at position k.
func (ix *Index) ID(k int) (string, error) {
	if k < 0 || k >= len(ix.ids) {
		return "", fmt.Errorf("Index.ID: %d (len=%d): %w", k, len(ix.ids), ErrIDOutOfRange)
	}
	return ix.ids[k], nil
}

// label renders position k as its external id, or as a decimal when ix is nil.
func (ix *Index) label(k int) string {
	if ix == nil {
		return strconv.Itoa(k)
	}
	return ix.ids[k]
}
