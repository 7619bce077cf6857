package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/hirescope/hirescope/internal/account"
	"github.com/hirescope/hirescope/pkg/audit"
	"github.com/hirescope/hirescope/pkg/scoring"
)

// Evaluator abstracts the rule engine so the intake package does not depend
// on a concrete implementation.
type Evaluator interface {
	Evaluate(sub audit.Submission) (*scoring.Diagnosis, error)
}

// Result describes a processed submission: where the blobs went and what the
// engine concluded.
type Result struct {
	AuditID       string             `json:"audit_id"`
	AccountID     string             `json:"account_id"`
	SubmissionRef string             `json:"submission_ref"`
	DiagnosisRef  string             `json:"diagnosis_ref"`
	Diagnosis     *scoring.Diagnosis `json:"diagnosis"`
}

// Service orchestrates the intake pipeline.
type Service struct {
	accounts  *account.Service
	storage   StorageClient
	evaluator Evaluator
}

// NewService creates a new intake Service.
func NewService(accounts *account.Service, storage StorageClient, evaluator Evaluator) *Service {
	return &Service{
		accounts:  accounts,
		storage:   storage,
		evaluator: evaluator,
	}
}

// Storage exposes the blob storage client for read endpoints.
func (s *Service) Storage() StorageClient { return s.storage }

// ProcessSubmission runs the full pipeline for one questionnaire submission:
// evaluate, persist the raw submission and the diagnosis, record the audit.
// A submission without an audit id gets one assigned.
func (s *Service) ProcessSubmission(ctx context.Context, accountName string, sub audit.Submission) (*Result, error) {
	if sub.AuditID == "" {
		sub.AuditID = uuid.New().String()
	}

	diagnosis, err := s.evaluator.Evaluate(sub)
	if err != nil {
		return nil, fmt.Errorf("evaluate submission %s: %w", sub.AuditID, err)
	}

	acct, err := s.accounts.EnsureAccount(ctx, accountName)
	if err != nil {
		return nil, fmt.Errorf("ensure account %s: %w", accountName, err)
	}

	subData, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}
	if err := s.storage.PutSubmission(ctx, acct.ID, sub.AuditID, subData); err != nil {
		return nil, fmt.Errorf("put submission blob: %w", err)
	}

	diagData, err := json.Marshal(diagnosis)
	if err != nil {
		return nil, fmt.Errorf("marshal diagnosis: %w", err)
	}
	if err := s.storage.PutDiagnosis(ctx, acct.ID, sub.AuditID, diagData); err != nil {
		return nil, fmt.Errorf("put diagnosis blob: %w", err)
	}

	submissionRef := fmt.Sprintf("%s/submissions/%s.json", acct.ID, sub.AuditID)
	diagnosisRef := fmt.Sprintf("%s/diagnoses/%s.json", acct.ID, sub.AuditID)

	if _, err := s.accounts.InsertAudit(ctx, account.AuditRow{
		ID:              sub.AuditID,
		AccountID:       acct.ID,
		Company:         sub.Company,
		OverallStatus:   string(diagnosis.OverallStatus),
		ConfidenceScore: diagnosis.ConfidenceScore,
		SubmissionRef:   submissionRef,
		DiagnosisRef:    diagnosisRef,
		Diagnosis:       diagData,
	}); err != nil {
		return nil, fmt.Errorf("record audit: %w", err)
	}

	log.Printf("audit %s completed for %s: overall=%s confidence=%d",
		sub.AuditID, accountName, diagnosis.OverallStatus, diagnosis.ConfidenceScore)

	return &Result{
		AuditID:       sub.AuditID,
		AccountID:     acct.ID,
		SubmissionRef: submissionRef,
		DiagnosisRef:  diagnosisRef,
		Diagnosis:     diagnosis,
	}, nil
}
