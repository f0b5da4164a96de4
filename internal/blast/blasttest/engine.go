// internal/blast/blasttest/engine.go

// Package blasttest provides a scripted alignment engine for tests.
package blasttest

import (
	"context"

	"rxnblast-core/blasttab"
	"rxnblast/internal/blast"
)

// Call records one engine invocation.
type Call struct {
	Method    blast.Method
	Accession string
	Subject   string
}

// Engine returns scripted match lists keyed by accession and records every
// call in order.
type Engine struct {
	BlastPHits  map[string][]blasttab.Match
	TBlastNHits map[string][]blasttab.Match
	Err         error // returned by every call when set
	Calls       []Call
}

func (e *Engine) BlastP(_ context.Context, q blast.Query, subject string) ([]blasttab.Match, error) {
	e.Calls = append(e.Calls, Call{Method: blast.Blastp, Accession: q.Accession, Subject: subject})
	if e.Err != nil {
		return nil, e.Err
	}
	return e.BlastPHits[q.Accession], nil
}

func (e *Engine) TBlastN(_ context.Context, q blast.Query, subject string) ([]blasttab.Match, error) {
	e.Calls = append(e.Calls, Call{Method: blast.TBlastN, Accession: q.Accession, Subject: subject})
	if e.Err != nil {
		return nil, e.Err
	}
	return e.TBlastNHits[q.Accession], nil
}

// CallsFor filters recorded calls by method.
func (e *Engine) CallsFor(m blast.Method) []Call {
	var out []Call
	for _, c := range e.Calls {
		if c.Method == m {
			out = append(out, c)
		}
	}
	return out
}
