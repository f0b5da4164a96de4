// internal/blast/cache.go
package blast

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rxnblast-core/fasta"
)

// QueryCache materializes one FASTA query file per distinct accession.
// Within a run a file is written at most once and reused for every later
// alignment of the same accession.
type QueryCache struct {
	dir     string
	written map[string]Query
}

func NewQueryCache(dir string) *QueryCache {
	return &QueryCache{dir: dir, written: make(map[string]Query)}
}

// Ensure returns the cached query for accession, writing the file on first
// use. An already-present file (from a previous run) is reused as-is.
func (c *QueryCache) Ensure(accession, seq string) (Query, error) {
	if q, ok := c.written[accession]; ok {
		return q, nil
	}
	path := filepath.Join(c.dir, accession+".fasta")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if werr := fasta.WriteRecordFile(path, accession, []byte(seq)); werr != nil {
			return Query{}, fmt.Errorf("write query fasta for %s: %w", accession, werr)
		}
	} else if err != nil {
		return Query{}, err
	}
	q := Query{Accession: accession, Path: path}
	c.written[accession] = q
	return q, nil
}
