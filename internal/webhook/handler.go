package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/hirescope/hirescope/internal/intake"
	"github.com/hirescope/hirescope/pkg/scoring"
)

// Handler processes incoming form-platform webhook events.
type Handler struct {
	webhookSecret []byte
	intakes       *intake.Service
}

// NewHandler creates a new webhook Handler.
func NewHandler(webhookSecret []byte, intakes *intake.Service) *Handler {
	return &Handler{
		webhookSecret: webhookSecret,
		intakes:       intakes,
	}
}

// ServeHTTP handles incoming webhook requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1 MB limit
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Audit-Signature-256")
	if err := VerifySignature(body, signature, h.webhookSecret); err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	eventType := r.Header.Get("X-Audit-Event")
	if eventType == "" {
		http.Error(w, "missing X-Audit-Event header", http.StatusBadRequest)
		return
	}

	event, err := ParseEvent(eventType, body)
	if err != nil {
		log.Printf("webhook parse error for %s: %v", eventType, err)
		http.Error(w, "unsupported event", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *PingEvent:
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		return

	case *SubmittedEvent:
		if e.Account == "" {
			http.Error(w, "missing account", http.StatusBadRequest)
			return
		}

		result, err := h.intakes.ProcessSubmission(r.Context(), e.Account, e.Submission)
		if err != nil {
			if isSubmissionError(err) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Printf("handle audit.submitted event: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("processed audit %s for %s (form %s)", result.AuditID, e.Account, e.FormID)
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":   "accepted",
			"audit_id": result.AuditID,
		})
		return
	}

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
}

// isSubmissionError reports whether the failure is the submitter's fault.
func isSubmissionError(err error) bool {
	return errors.Is(err, scoring.ErrEmptySubmission) ||
		errors.Is(err, scoring.ErrUnknownQuestion) ||
		errors.Is(err, scoring.ErrValueOutOfRange)
}
