// internal/writers/layout.go
package writers

import "path/filepath"

// Layout owns the artifact paths under one run's output directory.
type Layout struct {
	Output string
}

func NewLayout(output string) Layout { return Layout{Output: output} }

func (l Layout) SeqDir() string     { return filepath.Join(l.Output, "sequences") }
func (l Layout) ResultsDir() string { return filepath.Join(l.Output, "results") }

func (l Layout) HitsPath() string     { return filepath.Join(l.ResultsDir(), "blast_results.tsv") }
func (l Layout) SummaryPath() string  { return filepath.Join(l.ResultsDir(), "rxn_prot.tsv") }
func (l Layout) RetainedPath() string { return filepath.Join(l.ResultsDir(), "retained_reactions.json") }
func (l Layout) LogPath() string      { return filepath.Join(l.Output, "blastp_validation.log") }
