// pkg/api/validation_v1.go
package api

// ValidationV1 is the stable JSON schema for a completed validation run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ValidationV1 struct {
	RunID      string   `json:"run_id"`
	EValue     float64  `json:"e_value"`
	Proteome   string   `json:"proteome"`
	Genome     string   `json:"genome,omitempty"`
	Reactions  int      `json:"reactions"`
	Alignments int      `json:"alignments"`
	Retained   []string `json:"retained_reactions"`
}
