// Package pipeline drives one validation run: reaction-to-protein mapping,
// sequence resolution, the two-stage alignment fallback, and accumulation of
// the retained-reaction set. Execution is strictly sequential; the hits
// table has a single writer.
package pipeline
