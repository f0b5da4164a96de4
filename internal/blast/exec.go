// internal/blast/exec.go
package blast

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"rxnblast-core/blasttab"
)

// ExecEngine shells out to the NCBI BLAST+ command-line tools, one
// single-query-vs-single-subject invocation at a time.
type ExecEngine struct {
	EValue     float64
	BlastPBin  string // default "blastp"
	TBlastNBin string // default "tblastn"
}

func NewExecEngine(eValue float64) *ExecEngine {
	return &ExecEngine{EValue: eValue, BlastPBin: "blastp", TBlastNBin: "tblastn"}
}

func (e *ExecEngine) BlastP(ctx context.Context, q Query, subject string) ([]blasttab.Match, error) {
	return e.run(ctx, e.BlastPBin, q, subject)
}

func (e *ExecEngine) TBlastN(ctx context.Context, q Query, subject string) ([]blasttab.Match, error) {
	return e.run(ctx, e.TBlastNBin, q, subject)
}

func (e *ExecEngine) args(q Query, subject string) []string {
	return []string{
		"-query", q.Path,
		"-subject", subject,
		"-evalue", strconv.FormatFloat(e.EValue, 'g', -1, 64),
		"-outfmt", blasttab.OutFormat(),
	}
}

func (e *ExecEngine) run(ctx context.Context, bin string, q Query, subject string) ([]blasttab.Match, error) {
	cmd := exec.CommandContext(ctx, bin, e.args(q, subject)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s vs %s: %w: %s", bin, q.Accession, subject, err, msg)
		}
		return nil, fmt.Errorf("%s %s vs %s: %w", bin, q.Accession, subject, err)
	}
	return blasttab.Parse(&stdout)
}
