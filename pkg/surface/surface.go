// Package surface defines output rendering for audit diagnoses.
// Implementations handle different output targets: terminal, JSON, markdown report.
package surface

import (
	"io"
	"sort"

	"github.com/hirescope/hirescope/pkg/scoring"
)

// Renderer produces formatted output from a Diagnosis.
type Renderer interface {
	// Render writes the formatted diagnosis to the writer.
	Render(w io.Writer, d *scoring.Diagnosis) error
}

// BlockNames builds a block-id to display-name lookup from a catalog.
// Renderers fall back to the raw block id when a name is missing.
func BlockNames(c *scoring.Catalog) map[string]string {
	names := make(map[string]string, len(c.Blocks))
	for _, b := range c.Blocks {
		names[b.ID] = b.Name
	}
	return names
}

// sortedBlockIDs returns the block ids of a diagnosis in stable order.
func sortedBlockIDs(d *scoring.Diagnosis) []string {
	ids := make([]string, 0, len(d.BlockStatuses))
	for id := range d.BlockStatuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
