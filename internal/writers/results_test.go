package writers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rxnblast-core/blasttab"
	"rxnblast-core/xref"
	"rxnblast/internal/blast"
	"rxnblast/pkg/api"
)

func newSink(t *testing.T) (*Sink, Layout) {
	t.Helper()
	layout := NewLayout(filepath.Join(t.TempDir(), "out"))
	s := NewSink(layout)
	require.NoError(t, s.Initialize())
	return s, layout
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitializeCreatesLayout(t *testing.T) {
	s, layout := newSink(t)

	for _, dir := range []string{layout.SeqDir(), layout.ResultsDir()} {
		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	}
	assert.Equal(t,
		"Reaction\tUniprot ID\tSequence\tE value\tBit score\tIdentity (%)\tLength\tBlast method\n",
		read(t, layout.HitsPath()))

	// Re-initializing overwrites a prior run's hits table.
	require.NoError(t, s.AppendHits("RXN1", "P1", parse(t, "P1\t1e-5\t40\t50.0\t20\n"), blast.Blastp))
	require.NoError(t, s.Initialize())
	assert.Equal(t, 1, strings.Count(read(t, layout.HitsPath()), "\n"))
}

func parse(t *testing.T, rows string) []blasttab.Match {
	t.Helper()
	ms, err := blasttab.Parse(strings.NewReader(rows))
	require.NoError(t, err)
	return ms
}

func TestAppendHitsVerbatimRows(t *testing.T) {
	s, layout := newSink(t)

	require.NoError(t, s.AppendHits("RXN1", "P12345",
		parse(t, "P12345\t1e-50\t100\t99.0\t50\nP777\t3e-11\t52.8\t40.74\t81\n"), blast.Blastp))
	require.NoError(t, s.AppendHits("RXN2", "Q1",
		parse(t, "contig3\t2e-12\t60\t70.0\t45\n"), blast.TBlastN))

	lines := strings.Split(strings.TrimRight(read(t, layout.HitsPath()), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "RXN1\tP12345\tP12345\t1e-50\t100\t99.0\t50\tBlastp", lines[1])
	assert.Equal(t, "RXN1\tP12345\tP777\t3e-11\t52.8\t40.74\t81\tBlastp", lines[2])
	assert.Equal(t, "RXN2\tQ1\tcontig3\t2e-12\t60\t70.0\t45\tTBlastN", lines[3])
}

func TestAppendHitsNoMatches(t *testing.T) {
	s, layout := newSink(t)
	require.NoError(t, s.AppendHits("RXN1", "P1", nil, blast.Blastp))
	assert.Equal(t, 1, strings.Count(read(t, layout.HitsPath()), "\n"))
}

func TestWriteSummary(t *testing.T) {
	s, layout := newSink(t)

	mapping := map[string][]xref.ProteinID{
		"RXN1": {
			{Source: "PID", Accession: "A9"},
			{Source: "UNIPROT", Accession: "P1"},
		},
	}
	require.NoError(t, s.WriteSummary([]string{"RXN1", "RXN0"}, mapping))

	assert.Equal(t,
		"Rxn ID\tNb prot IDs\tProt IDs (sep=;)\n"+
			"RXN1\t2\tPID:A9;UNIPROT:P1\n"+
			"RXN0\t0\t\n",
		read(t, layout.SummaryPath()))
}

func TestWriteRetained(t *testing.T) {
	s, layout := newSink(t)

	require.NoError(t, s.WriteRetained(api.ValidationV1{
		RunID:      "run-1",
		EValue:     1e-10,
		Proteome:   "proteome.fasta",
		Reactions:  2,
		Alignments: 3,
		Retained:   []string{"RXN1"},
	}))

	got := read(t, layout.RetainedPath())
	assert.Contains(t, got, `"run_id": "run-1"`)
	assert.Contains(t, got, `"retained_reactions": [`)
	assert.NotContains(t, got, `"genome"`) // omitempty
}
