// internal/writers/results.go
package writers

import (
	"fmt"
	"os"
	"strings"

	"rxnblast-core/blasttab"
	"rxnblast-core/xref"
	"rxnblast/internal/blast"
	"rxnblast/pkg/api"
)

var hitsHeader = []string{
	"Reaction", "Uniprot ID", "Sequence", "E value", "Bit score",
	"Identity (%)", "Length", "Blast method",
}

const summaryHeader = "Rxn ID\tNb prot IDs\tProt IDs (sep=;)"

// Sink accumulates hit rows and summary rows into the persisted tables.
type Sink struct {
	layout Layout
}

func NewSink(layout Layout) *Sink { return &Sink{layout: layout} }

// Initialize creates the sequences/ and results/ directories and (re)creates
// the hits table with its header row. Call once, before any append; a prior
// run's hits table is overwritten.
func (s *Sink) Initialize() error {
	for _, dir := range []string{s.layout.SeqDir(), s.layout.ResultsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	fh, err := os.Create(s.layout.HitsPath())
	if err != nil {
		return fmt.Errorf("create hits table: %w", err)
	}
	if _, err := fmt.Fprintln(fh, strings.Join(hitsHeader, "\t")); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// AppendHits appends one row per match, tagged with the method that
// produced it.
func (s *Sink) AppendHits(rxn, accession string, ms []blasttab.Match, method blast.Method) error {
	if len(ms) == 0 {
		return nil
	}
	fh, err := os.OpenFile(s.layout.HitsPath(), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("append hits table: %w", err)
	}
	for _, m := range ms {
		row := append([]string{rxn, accession}, m.Row()...)
		row = append(row, string(method))
		if _, err := fmt.Fprintln(fh, strings.Join(row, "\t")); err != nil {
			_ = fh.Close()
			return err
		}
	}
	return fh.Close()
}

// WriteSummary writes one row per reaction, in input order, listing its
// mapped protein identifiers. Written once after mapping, independent of
// alignment outcomes.
func (s *Sink) WriteSummary(rxns []string, mapping map[string][]xref.ProteinID) error {
	fh, err := os.Create(s.layout.SummaryPath())
	if err != nil {
		return fmt.Errorf("create summary table: %w", err)
	}
	if _, err := fmt.Fprintln(fh, summaryHeader); err != nil {
		_ = fh.Close()
		return err
	}
	for _, rxn := range rxns {
		ids := mapping[rxn]
		tags := make([]string, len(ids))
		for i, id := range ids {
			tags[i] = id.String()
		}
		if _, err := fmt.Fprintf(fh, "%s\t%d\t%s\n", rxn, len(ids), strings.Join(tags, ";")); err != nil {
			_ = fh.Close()
			return err
		}
	}
	return fh.Close()
}

// WriteRetained persists the versioned JSON completion artifact.
func (s *Sink) WriteRetained(v api.ValidationV1) error {
	fh, err := os.Create(s.layout.RetainedPath())
	if err != nil {
		return fmt.Errorf("create retained artifact: %w", err)
	}
	if err := encodePretty(fh, v); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
