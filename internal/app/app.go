// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"rxnblast-core/xref"
	"rxnblast/internal/blast"
	"rxnblast/internal/config"
	"rxnblast/internal/mapper"
	"rxnblast/internal/pipeline"
	"rxnblast/internal/printer"
	"rxnblast/internal/runlog"
	"rxnblast/internal/seqstore"
	"rxnblast/internal/writers"
	"rxnblast/pkg/api"
)

// Options are the resolved inputs of one validation run (manifest merged
// with CLI overrides, already validated).
type Options struct {
	Reactions       []string
	Output          string
	XrefStore       string
	ProteinArchive  string
	Proteome        string
	Genome          string
	EValue          float64
	SkipAlignErrors bool
}

// Run executes one validation run with the production alignment engine and
// returns the retained-reaction set.
func Run(ctx context.Context, opts Options, stdout io.Writer) (map[string]struct{}, error) {
	if opts.EValue <= 0 {
		opts.EValue = config.DefaultEValue
	}
	return RunWithEngine(ctx, opts, blast.NewExecEngine(opts.EValue), stdout)
}

// RunWithEngine is Run with an injected alignment engine.
func RunWithEngine(ctx context.Context, opts Options, eng blast.Engine, stdout io.Writer) (map[string]struct{}, error) {
	layout := writers.NewLayout(opts.Output)
	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	log, logCloser, err := runlog.New(layout.LogPath())
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	runID := uuid.NewString()
	log.Infof("Start searching alignments (run %s)", runID)

	store, err := xref.LoadStore(opts.XrefStore)
	if err != nil {
		return nil, fmt.Errorf("load xref store: %w", err)
	}
	seqs, err := seqstore.Load(ctx, opts.ProteinArchive, log)
	if err != nil {
		return nil, err
	}

	sink := writers.NewSink(layout)
	p := pipeline.New(
		mapper.New(store, log),
		seqs,
		eng,
		blast.NewQueryCache(layout.SeqDir()),
		sink,
		log,
	)

	res, err := p.Run(ctx, pipeline.Options{
		Reactions:       opts.Reactions,
		Proteome:        opts.Proteome,
		Genome:          opts.Genome,
		SkipAlignErrors: opts.SkipAlignErrors,
	})
	if err != nil {
		return nil, err
	}

	retained := make([]string, 0, len(res.Retained))
	for rxn := range res.Retained {
		retained = append(retained, rxn)
	}
	sort.Strings(retained)

	if err := sink.WriteRetained(api.ValidationV1{
		RunID:      runID,
		EValue:     opts.EValue,
		Proteome:   opts.Proteome,
		Genome:     opts.Genome,
		Reactions:  len(opts.Reactions),
		Alignments: res.Pairs,
		Retained:   retained,
	}); err != nil {
		return nil, err
	}

	pr := printer.New(stdout)
	pr.Successf("%d/%d reactions retained on alignment evidence", len(retained), len(opts.Reactions))
	pr.Infof("artifacts written under %s", opts.Output)
	if res.Pairs == 0 {
		pr.Warnf("no (reaction, protein) pairs were aligned; check the xref store and reaction list")
	}
	return res.Retained, nil
}
