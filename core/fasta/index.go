// core/fasta/index.go
package fasta

import "context"

// Index is an in-memory record-id → sequence lookup over a whole archive.
// It is loaded once, before use, and read-only afterwards.
type Index map[string][]byte

// LoadIndex reads every record of the archive at path into an Index.
// On duplicate IDs the first record wins.
func LoadIndex(ctx context.Context, path string) (Index, error) {
	idx := make(Index)
	err := EachRecordPathCtx(ctx, path, func(r Record) error {
		if _, dup := idx[r.ID]; !dup {
			idx[r.ID] = r.Seq
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Get returns the sequence for id, if present.
func (ix Index) Get(id string) ([]byte, bool) {
	seq, ok := ix[id]
	return seq, ok
}

// Len returns the number of indexed records.
func (ix Index) Len() int { return len(ix) }
