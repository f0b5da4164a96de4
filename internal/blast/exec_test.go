package blast

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecEngineArgs(t *testing.T) {
	e := NewExecEngine(1e-10)
	got := e.args(Query{Accession: "P1", Path: "seq/P1.fasta"}, "proteome.fasta")
	assert.Equal(t, []string{
		"-query", "seq/P1.fasta",
		"-subject", "proteome.fasta",
		"-evalue", "1e-10",
		"-outfmt", "6 sseqid evalue bitscore pident length",
	}, got)
}

func TestExecEngineDefaults(t *testing.T) {
	e := NewExecEngine(1e-10)
	assert.Equal(t, "blastp", e.BlastPBin)
	assert.Equal(t, "tblastn", e.TBlastNBin)
}

func TestExecEngineToolFailure(t *testing.T) {
	e := NewExecEngine(1e-10)
	e.BlastPBin = "/nonexistent/blastp-binary"

	_, err := e.BlastP(context.Background(), Query{Accession: "P1", Path: "q.fasta"}, "subject.fasta")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "P1"), err.Error())
}
