package seqstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rxnblast-core/xref"
)

func newStore(t *testing.T, data string) (*Store, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proteins.fasta")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	s, err := Load(context.Background(), path, log)
	require.NoError(t, err)
	return s, &buf
}

func TestResolve(t *testing.T) {
	s, _ := newStore(t, ">P12345 desc\nMKT\nAYI\n>Q1\nMM\n")
	require.Equal(t, 2, s.Len())

	seq, ok := s.Resolve(xref.ProteinID{Source: "UNIPROT", Accession: "P12345"})
	assert.True(t, ok)
	assert.Equal(t, "MKTAYI", seq)
}

func TestResolveMissIsNotAnError(t *testing.T) {
	s, buf := newStore(t, ">P1\nMKT\n")

	seq, ok := s.Resolve(xref.ProteinID{Source: "UNIPROT", Accession: "P99999"})
	assert.False(t, ok)
	assert.Empty(t, seq)
	assert.Contains(t, buf.String(), "No sequence corresponding to UNIPROT:P99999")
}

func TestLoadBadPath(t *testing.T) {
	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.fasta"), log)
	require.Error(t, err)
}
