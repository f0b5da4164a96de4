package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestValidateRequiresInputs(t *testing.T) {
	cmd := newValidateCmd()
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs([]string{"RXN1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run")
}

// Reactions without annotations never reach the alignment tool, so the full
// command can run end to end without BLAST+ installed.
func TestValidateCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	xrefs := writeTemp(t, dir, "xrefs.tsv", "# no annotations\n")
	proteins := writeTemp(t, dir, "proteins.fasta", ">P1\nMKT\n")
	proteome := writeTemp(t, dir, "proteome.fasta", ">target\nMKTMKT\n")
	manifest := writeTemp(t, dir, "run.yml", fmt.Sprintf(
		"output: %s\nxref_store: %s\nprotein_archive: %s\nproteome: %s\n",
		out, xrefs, proteins, proteome))

	cmd := newValidateCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs([]string{"RXN1", "--config", manifest})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "0/1 reactions retained")

	for _, rel := range []string{
		filepath.Join("results", "blast_results.tsv"),
		filepath.Join("results", "rxn_prot.tsv"),
		filepath.Join("results", "retained_reactions.json"),
		"blastp_validation.log",
	} {
		_, err := os.Stat(filepath.Join(out, rel))
		assert.NoError(t, err, rel)
	}
}

func TestValidateFlagOverridesManifest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	xrefs := writeTemp(t, dir, "xrefs.tsv", "# no annotations\n")
	proteins := writeTemp(t, dir, "proteins.fasta", ">P1\nMKT\n")
	proteome := writeTemp(t, dir, "proteome.fasta", ">target\nMKTMKT\n")
	manifest := writeTemp(t, dir, "run.yml", fmt.Sprintf(
		"output: %s\nxref_store: %s\nprotein_archive: %s\nproteome: %s\n",
		filepath.Join(dir, "manifest-out"), xrefs, proteins, proteome))

	cmd := newValidateCmd()
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs([]string{"RXN1", "--config", manifest, "--output", out})

	require.NoError(t, cmd.Execute())
	_, err := os.Stat(filepath.Join(out, "blastp_validation.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "manifest-out"))
	assert.True(t, os.IsNotExist(err), "manifest output dir should not be used")
}
