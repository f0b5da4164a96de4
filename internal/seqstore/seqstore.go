// internal/seqstore/seqstore.go
package seqstore

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"rxnblast-core/fasta"
	"rxnblast-core/xref"
)

// Store resolves a protein identifier to its amino-acid sequence. It is
// built once per run from the reference sequence archive, fully loaded
// before use, and read-only afterwards.
type Store struct {
	idx  fasta.Index
	path string
	log  *logrus.Logger
}

// Load indexes the whole archive at path.
func Load(ctx context.Context, path string, log *logrus.Logger) (*Store, error) {
	idx, err := fasta.LoadIndex(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load protein archive %s: %w", path, err)
	}
	log.Infof("%d protein sequences loaded from %s", idx.Len(), path)
	return &Store{idx: idx, path: path, log: log}, nil
}

// Resolve returns the sequence for id's accession. A lookup miss is a
// degraded-evidence condition, not an error: it logs a warning and returns
// ("", false).
func (s *Store) Resolve(id xref.ProteinID) (string, bool) {
	s.log.Infof("Get sequence for %s protein", id)
	seq, ok := s.idx.Get(id.Accession)
	if !ok {
		s.log.Warnf("No sequence corresponding to %s in %s", id, s.path)
		return "", false
	}
	return string(seq), true
}

// Len returns the number of archived sequences.
func (s *Store) Len() int { return s.idx.Len() }
