// Package account manages client state: accounts (audited organizations)
// and the audit records produced for them.
package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service provides account and audit-record management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Account represents one audited organization.
type Account struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// AuditRow represents a stored audit record. The full diagnosis lives in blob
// storage; the row carries the headline fields for listing and filtering.
type AuditRow struct {
	ID              string
	AccountID       string
	Company         string
	OverallStatus   string
	ConfidenceScore int
	SubmissionRef   string
	DiagnosisRef    string
	Diagnosis       json.RawMessage
	CreatedAt       time.Time
}

// NewService creates a new account Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateAccount creates a new account.
func (s *Service) CreateAccount(ctx context.Context, name string) (*Account, error) {
	a := &Account{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (name)
		 VALUES ($1)
		 RETURNING id, name, created_at`,
		name,
	).Scan(&a.ID, &a.Name, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// GetAccountByName looks up an account by name.
func (s *Service) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	a := &Account{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM accounts WHERE name = $1`,
		name,
	).Scan(&a.ID, &a.Name, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get account by name %s: %w", name, err)
	}
	return a, nil
}

// EnsureAccount gets or creates an account by name.
func (s *Service) EnsureAccount(ctx context.Context, name string) (*Account, error) {
	a, err := s.GetAccountByName(ctx, name)
	if err == nil {
		return a, nil
	}

	a, err = s.CreateAccount(ctx, name)
	if err != nil {
		// Could be a race; try getting again
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetAccountByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure account: %w", err)
	}
	return a, nil
}

// ListAccounts returns all accounts ordered by name.
func (s *Service) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM accounts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// InsertAudit records a completed audit evaluation.
func (s *Service) InsertAudit(ctx context.Context, row AuditRow) (*AuditRow, error) {
	out := &AuditRow{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO audits (id, account_id, company_name, overall_status, confidence_score, submission_ref, diagnosis_ref, diagnosis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE
		   SET overall_status = EXCLUDED.overall_status,
		       confidence_score = EXCLUDED.confidence_score,
		       diagnosis_ref = EXCLUDED.diagnosis_ref,
		       diagnosis = EXCLUDED.diagnosis
		 RETURNING id, account_id, company_name, overall_status, confidence_score, submission_ref, diagnosis_ref, diagnosis, created_at`,
		row.ID, row.AccountID, row.Company, row.OverallStatus, row.ConfidenceScore,
		row.SubmissionRef, row.DiagnosisRef, row.Diagnosis,
	).Scan(
		&out.ID, &out.AccountID, &out.Company, &out.OverallStatus, &out.ConfidenceScore,
		&out.SubmissionRef, &out.DiagnosisRef, &out.Diagnosis, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert audit %s: %w", row.ID, err)
	}
	return out, nil
}

// GetAuditByID returns a single audit record.
func (s *Service) GetAuditByID(ctx context.Context, auditID string) (*AuditRow, error) {
	a := &AuditRow{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, company_name, overall_status, confidence_score, submission_ref, diagnosis_ref, diagnosis, created_at
		 FROM audits WHERE id = $1`,
		auditID,
	).Scan(
		&a.ID, &a.AccountID, &a.Company, &a.OverallStatus, &a.ConfidenceScore,
		&a.SubmissionRef, &a.DiagnosisRef, &a.Diagnosis, &a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get audit %s: %w", auditID, err)
	}
	return a, nil
}

// ListAuditsByAccount returns all audits for an account, newest first.
func (s *Service) ListAuditsByAccount(ctx context.Context, accountID string) ([]AuditRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, company_name, overall_status, confidence_score, submission_ref, diagnosis_ref, diagnosis, created_at
		 FROM audits WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	var audits []AuditRow
	for rows.Next() {
		var a AuditRow
		if err := rows.Scan(
			&a.ID, &a.AccountID, &a.Company, &a.OverallStatus, &a.ConfidenceScore,
			&a.SubmissionRef, &a.DiagnosisRef, &a.Diagnosis, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}

// ListAudits returns recent audits across all accounts, newest first.
func (s *Service) ListAudits(ctx context.Context, limit int) ([]AuditRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, company_name, overall_status, confidence_score, submission_ref, diagnosis_ref, diagnosis, created_at
		 FROM audits ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()

	var audits []AuditRow
	for rows.Next() {
		var a AuditRow
		if err := rows.Scan(
			&a.ID, &a.AccountID, &a.Company, &a.OverallStatus, &a.ConfidenceScore,
			&a.SubmissionRef, &a.DiagnosisRef, &a.Diagnosis, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}
