// internal/blast/engine.go
package blast

import (
	"context"

	"rxnblast-core/blasttab"
)

// Method tags which alignment flavor produced a hit row.
type Method string

const (
	Blastp  Method = "Blastp"
	TBlastN Method = "TBlastN"
)

// Query is an on-disk single-sequence query file, keyed by accession.
type Query struct {
	Accession string
	Path      string
}

// Engine runs one query sequence against one target sequence collection and
// reports zero or more tabular matches. Production engines wrap the external
// BLAST+ tools; tests script the results (see blasttest).
type Engine interface {
	// BlastP aligns a protein query against a protein collection (proteome).
	BlastP(ctx context.Context, q Query, subject string) ([]blasttab.Match, error)
	// TBlastN aligns a protein query against a translated nucleotide
	// collection (genome).
	TBlastN(ctx context.Context, q Query, subject string) ([]blasttab.Match, error)
}
