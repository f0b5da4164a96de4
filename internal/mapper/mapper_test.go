package mapper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rxnblast-core/xref"
	"rxnblast/internal/runlog"
)

func newMapper(t *testing.T, data string) *Mapper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xrefs.tsv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	store, err := xref.LoadStore(path)
	require.NoError(t, err)
	return New(store, runlog.Discard())
}

func TestMapCollectsBothNamespaces(t *testing.T) {
	m := newMapper(t, `RXN1	UNIPROT_70	P2;P1
RXN1	PID_70	A9
RXN1	EC	1.1.1.1
`)
	got := m.Map("RXN1")
	want := []xref.ProteinID{
		{Source: "PID", Accession: "A9"},
		{Source: "UNIPROT", Accession: "P1"},
		{Source: "UNIPROT", Accession: "P2"},
	}
	assert.Equal(t, want, got) // sorted, unrecognized keys ignored
}

func TestMapDeduplicates(t *testing.T) {
	m := newMapper(t, `RXN1	UNIPROT_70	P1;P1
RXN1	UNIPROT_70	P1
`)
	got := m.Map("RXN1")
	require.Len(t, got, 1)
	assert.Equal(t, "UNIPROT:P1", got[0].String())
}

func TestMapMissingAnnotation(t *testing.T) {
	m := newMapper(t, "RXN1\tUNIPROT_70\tP1\n")
	assert.Empty(t, m.Map("RXN404"))
}

func TestMapAnnotationWithoutProteinKeys(t *testing.T) {
	m := newMapper(t, "RXN1\tEC\t1.1.1.1\n")
	assert.Empty(t, m.Map("RXN1"))
}
