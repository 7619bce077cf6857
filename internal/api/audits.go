package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hirescope/hirescope/internal/account"
	"github.com/hirescope/hirescope/pkg/audit"
	"github.com/hirescope/hirescope/pkg/scoring"
)

// createAuditRequest is the JSON body for POST /api/v1/audits.
type createAuditRequest struct {
	Account    string           `json:"account"`
	Submission audit.Submission `json:"submission"`
}

// auditView is the list/detail representation of a stored audit.
type auditView struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Company         string          `json:"company_name"`
	OverallStatus   string          `json:"overall_status"`
	ConfidenceScore int             `json:"confidence_score"`
	Diagnosis       json.RawMessage `json:"diagnosis,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func viewFromRow(row account.AuditRow, includeDiagnosis bool) auditView {
	v := auditView{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Company:         row.Company,
		OverallStatus:   row.OverallStatus,
		ConfidenceScore: row.ConfidenceScore,
		CreatedAt:       row.CreatedAt,
	}
	if includeDiagnosis {
		v.Diagnosis = row.Diagnosis
	}
	return v
}

// isSubmissionError reports whether the failure is the caller's fault.
func isSubmissionError(err error) bool {
	return errors.Is(err, scoring.ErrEmptySubmission) ||
		errors.Is(err, scoring.ErrUnknownQuestion) ||
		errors.Is(err, scoring.ErrValueOutOfRange)
}

// handleCreateAudit evaluates a submission and persists the audit.
func (h *Handler) handleCreateAudit(w http.ResponseWriter, r *http.Request) {
	var req createAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	result, err := h.intakes.ProcessSubmission(r.Context(), req.Account, req.Submission)
	if err != nil {
		if isSubmissionError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to process submission: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// handleEvaluate runs the engine without persisting anything. Used by the
// form platform's live preview and by dry runs against candidate rule sets.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var sub audit.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	diagnosis, err := h.engine.Evaluate(sub)
	if err != nil {
		if isSubmissionError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "evaluation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, diagnosis)
}

// handleListAudits returns recent audits, optionally filtered by account name.
func (h *Handler) handleListAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	var rows []account.AuditRow
	if name := r.URL.Query().Get("account"); name != "" {
		acct, err := h.accounts.GetAccountByName(ctx, name)
		if err != nil {
			writeError(w, http.StatusNotFound, "account not found")
			return
		}
		rows, err = h.accounts.ListAuditsByAccount(ctx, acct.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list audits: "+err.Error())
			return
		}
		if len(rows) > limit {
			rows = rows[:limit]
		}
	} else {
		var err error
		rows, err = h.accounts.ListAudits(ctx, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list audits: "+err.Error())
			return
		}
	}

	views := make([]auditView, 0, len(rows))
	for _, row := range rows {
		views = append(views, viewFromRow(row, false))
	}
	writeJSON(w, http.StatusOK, map[string]any{"audits": views})
}

// handleGetAudit returns one audit record including its stored diagnosis.
func (h *Handler) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	row, err := h.accounts.GetAuditByID(r.Context(), r.PathValue("auditID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "audit not found")
		return
	}
	writeJSON(w, http.StatusOK, viewFromRow(*row, true))
}

// handleGetDiagnosis streams the diagnosis blob exactly as stored.
func (h *Handler) handleGetDiagnosis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	row, err := h.accounts.GetAuditByID(ctx, r.PathValue("auditID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "audit not found")
		return
	}

	data, err := h.intakes.Storage().GetDiagnosis(ctx, row.AccountID, row.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load diagnosis: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleGetSubmission streams the raw submission blob.
func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	row, err := h.accounts.GetAuditByID(ctx, r.PathValue("auditID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "audit not found")
		return
	}

	data, err := h.intakes.Storage().GetSubmission(ctx, row.AccountID, row.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load submission: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
