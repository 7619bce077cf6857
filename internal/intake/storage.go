// Package intake orchestrates the audit pipeline: submission validation,
// rule evaluation, and result storage.
package intake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for raw submissions and diagnoses.
type StorageClient interface {
	PutSubmission(ctx context.Context, accountID, auditID string, data []byte) error
	GetSubmission(ctx context.Context, accountID, auditID string) ([]byte, error)
	PutDiagnosis(ctx context.Context, accountID, auditID string, data []byte) error
	GetDiagnosis(ctx context.Context, accountID, auditID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(accountID, kind, id string) string {
	return filepath.Join(s.BaseDir, accountID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutSubmission stores a raw submission blob.
func (s *LocalStorage) PutSubmission(ctx context.Context, accountID, auditID string, data []byte) error {
	return s.put(s.path(accountID, "submissions", auditID), data)
}

// GetSubmission retrieves a raw submission blob.
func (s *LocalStorage) GetSubmission(ctx context.Context, accountID, auditID string) ([]byte, error) {
	return os.ReadFile(s.path(accountID, "submissions", auditID))
}

// PutDiagnosis stores a diagnosis blob.
func (s *LocalStorage) PutDiagnosis(ctx context.Context, accountID, auditID string, data []byte) error {
	return s.put(s.path(accountID, "diagnoses", auditID), data)
}

// GetDiagnosis retrieves a diagnosis blob.
func (s *LocalStorage) GetDiagnosis(ctx context.Context, accountID, auditID string) ([]byte, error) {
	return os.ReadFile(s.path(accountID, "diagnoses", auditID))
}
