package api

import "net/http"

// handleGetCatalog exposes the active rule tables and scoring constants so
// clients can see exactly which rule set produced a diagnosis.
func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"catalog": h.engine.Catalog(),
		"config":  h.engine.Config(),
	})
}
