// Package api implements the hosted Hirescope REST API.
// It provides audit intake and read endpoints backed by Postgres and blob storage.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/hirescope/hirescope/internal/account"
	"github.com/hirescope/hirescope/internal/intake"
	"github.com/hirescope/hirescope/pkg/scoring"
)

// Handler is the top-level API handler for the hosted Hirescope service.
type Handler struct {
	db       *sql.DB
	accounts *account.Service
	intakes  *intake.Service
	engine   *scoring.Engine
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, accounts *account.Service, intakes *intake.Service, engine *scoring.Engine) *Handler {
	return &Handler{
		db:       db,
		accounts: accounts,
		intakes:  intakes,
		engine:   engine,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/audits", h.handleCreateAudit)
	mux.HandleFunc("POST /api/v1/evaluate", h.handleEvaluate)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/audits", h.handleListAudits)
	mux.HandleFunc("GET /api/v1/audits/{auditID}", h.handleGetAudit)
	mux.HandleFunc("GET /api/v1/audits/{auditID}/diagnosis", h.handleGetDiagnosis)
	mux.HandleFunc("GET /api/v1/audits/{auditID}/submission", h.handleGetSubmission)
	mux.HandleFunc("GET /api/v1/catalog", h.handleGetCatalog)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
