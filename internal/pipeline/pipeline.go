// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"rxnblast-core/xref"
	"rxnblast/internal/blast"
	"rxnblast/internal/mapper"
	"rxnblast/internal/seqstore"
	"rxnblast/internal/writers"
)

// Options configure one run.
type Options struct {
	Reactions []string
	Proteome  string
	Genome    string // optional; non-empty enables the TBlastN fallback stage

	// SkipAlignErrors downgrades an alignment-tool failure from fatal to a
	// logged, skipped attempt.
	SkipAlignErrors bool
}

// Result is the outcome of a run. Retained holds every reaction with at
// least one alignment hit from either stage.
type Result struct {
	Retained map[string]struct{}
	Pairs    int // (reaction, protein) pairs processed
	HitRows  int // rows appended to the hits table
}

// Pipeline coordinates the collaborators of a validation run.
type Pipeline struct {
	mapper *mapper.Mapper
	seqs   *seqstore.Store
	engine blast.Engine
	cache  *blast.QueryCache
	sink   *writers.Sink
	log    *logrus.Logger
}

func New(m *mapper.Mapper, seqs *seqstore.Store, eng blast.Engine, cache *blast.QueryCache, sink *writers.Sink, log *logrus.Logger) *Pipeline {
	return &Pipeline{mapper: m, seqs: seqs, engine: eng, cache: cache, sink: sink, log: log}
}

// Run maps every reaction to its annotated proteins, writes the summary
// table, then aligns each (reaction, protein) pair: Blastp against the
// proteome first, TBlastN against the genome only when configured and the
// first stage found nothing. A reaction is retained on the first hit from
// either stage for any of its proteins; alignment of its remaining proteins
// still proceeds so the hits table stays complete.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Result, error) {
	res := Result{Retained: make(map[string]struct{})}

	p.log.Info("Start getting proteins linked to each reaction")
	mapping := make(map[string][]xref.ProteinID, len(opts.Reactions))
	total := 0
	for _, rxn := range opts.Reactions {
		ids := p.mapper.Map(rxn)
		mapping[rxn] = ids
		total += len(ids)
	}

	if err := p.sink.Initialize(); err != nil {
		return res, err
	}
	if err := p.sink.WriteSummary(opts.Reactions, mapping); err != nil {
		return res, err
	}

	p.log.Info("Start blast alignments")
	for _, rxn := range opts.Reactions {
		for _, id := range mapping[rxn] {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			rows, err := p.alignPair(ctx, rxn, id, opts)
			if err != nil {
				return res, err
			}
			if rows > 0 {
				res.Retained[rxn] = struct{}{}
				res.HitRows += rows
			}
			res.Pairs++
			p.log.Infof("%d/%d done", res.Pairs, total)
		}
	}

	names := make([]string, 0, len(res.Retained))
	for rxn := range res.Retained {
		names = append(names, rxn)
	}
	sort.Strings(names)
	p.log.Infof("%d reactions with alignment: %s", len(names), strings.Join(names, ", "))
	p.log.Info("End of alignments")
	return res, nil
}

// alignPair runs the alignment stages for one (reaction, protein) pair and
// returns the number of hit rows written.
func (p *Pipeline) alignPair(ctx context.Context, rxn string, id xref.ProteinID, opts Options) (int, error) {
	seq, ok := p.seqs.Resolve(id)
	if !ok {
		// An unresolved sequence is an automatic miss; an empty query is
		// never submitted to the engine.
		return 0, nil
	}

	q, err := p.cache.Ensure(id.Accession, seq)
	if err != nil {
		return 0, err
	}

	p.log.Infof("Blastp of protein %s for reaction %s against %s", id.Accession, rxn, opts.Proteome)
	ms, err := p.engine.BlastP(ctx, q, opts.Proteome)
	if err != nil {
		if !opts.SkipAlignErrors {
			return 0, fmt.Errorf("blastp %s (reaction %s): %w", id.Accession, rxn, err)
		}
		p.log.Warnf("Blastp of %s (reaction %s) failed, skipping: %v", id.Accession, rxn, err)
		ms = nil
	}
	if len(ms) > 0 {
		if err := p.sink.AppendHits(rxn, id.Accession, ms, blast.Blastp); err != nil {
			return 0, err
		}
		return len(ms), nil
	}

	if opts.Genome == "" {
		return 0, nil
	}

	p.log.Infof("TBlastN of protein %s for reaction %s against %s", id.Accession, rxn, opts.Genome)
	ms, err = p.engine.TBlastN(ctx, q, opts.Genome)
	if err != nil {
		if !opts.SkipAlignErrors {
			return 0, fmt.Errorf("tblastn %s (reaction %s): %w", id.Accession, rxn, err)
		}
		p.log.Warnf("TBlastN of %s (reaction %s) failed, skipping: %v", id.Accession, rxn, err)
		return 0, nil
	}
	if len(ms) > 0 {
		if err := p.sink.AppendHits(rxn, id.Accession, ms, blast.TBlastN); err != nil {
			return 0, err
		}
		return len(ms), nil
	}
	return 0, nil
}
