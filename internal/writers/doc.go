// Package writers persists the run artifacts.
//
// Design:
//   - The Sink owns all presentation knowledge (TSV headers, JSON schema).
//   - Pipeline stays orchestration-only; it hands over domain values.
//   - The hits table is append-only after Initialize; the Sink is the only
//     writer under the sequential execution model.
package writers
