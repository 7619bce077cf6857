package surface

import (
	"encoding/json"
	"io"

	"github.com/hirescope/hirescope/pkg/scoring"
)

// JSONRenderer marshals a Diagnosis to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, d *scoring.Diagnosis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
