// internal/config/config.go
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEValue is the alignment significance threshold applied when a run
// does not set one.
const DefaultEValue = 1e-10

// Run is the YAML run manifest. Every field can also be set (and overridden)
// by a CLI flag.
type Run struct {
	Output          string   `yaml:"output"`
	XrefStore       string   `yaml:"xref_store"`
	ProteinArchive  string   `yaml:"protein_archive"`
	Proteome        string   `yaml:"proteome"`
	Genome          string   `yaml:"genome,omitempty"`
	EValue          float64  `yaml:"e_value,omitempty"`
	Reactions       []string `yaml:"reactions,omitempty"`
	ReactionFile    string   `yaml:"reaction_file,omitempty"`
	SkipAlignErrors bool     `yaml:"skip_align_errors,omitempty"`
}

// Load reads and parses a run manifest. It does not validate; callers merge
// CLI overrides first and then call Validate.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &run, nil
}

// Validate performs strict validation on the resolved run.
func (r *Run) Validate() error {
	if r.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	if r.XrefStore == "" {
		return fmt.Errorf("xref store path is required")
	}
	if r.ProteinArchive == "" {
		return fmt.Errorf("protein archive path is required")
	}
	if r.Proteome == "" {
		return fmt.Errorf("proteome path is required")
	}
	if r.EValue < 0 {
		return fmt.Errorf("e-value threshold must be positive, got %g", r.EValue)
	}
	if len(r.Reactions) > 0 && r.ReactionFile != "" {
		return fmt.Errorf("reactions and reaction_file are mutually exclusive")
	}
	return nil
}

// LoadReactionFile reads one reaction identifier per line. Blank lines and
// '#' comments are skipped; input order is preserved.
func LoadReactionFile(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read reaction list: %w", err)
	}
	defer func() { _ = fh.Close() }()

	var rxns []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rxns = append(rxns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rxns, nil
}
