package scoring

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero thresholds",
			mutate:  func(c *Config) { c.GreenFloor = 0 },
			wantErr: "thresholds must be positive",
		},
		{
			name:    "inverted thresholds",
			mutate:  func(c *Config) { c.YellowFloor = 2.5 },
			wantErr: "must be below",
		},
		{
			name:    "zero yellow gate count",
			mutate:  func(c *Config) { c.YellowGateCount = 0 },
			wantErr: "at least 1",
		},
		{
			name:    "missing status points",
			mutate:  func(c *Config) { delete(c.StatusPoints, StatusGray) },
			wantErr: "status_points missing",
		},
		{
			name:    "negative penalty",
			mutate:  func(c *Config) { c.GatePenalty = -1 },
			wantErr: "non-negative",
		},
		{
			name:    "missing data trust entry",
			mutate:  func(c *Config) { delete(c.DataTrust, StatusRed) },
			wantErr: "data_trust missing",
		},
		{
			name:    "coefficient above one",
			mutate:  func(c *Config) { c.DataTrust[StatusYellow] = 1.5 },
			wantErr: "want (0, 1]",
		},
		{
			name:    "no data trust block",
			mutate:  func(c *Config) { c.DataTrustBlock = "" },
			wantErr: "data_trust_block",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GreenFloor != 2.3 || cfg.DataTrustBlock != "block7" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	doc := "green_floor: 2.5\ngate_penalty: 10\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GreenFloor != 2.5 {
		t.Errorf("green_floor = %v, want 2.5", cfg.GreenFloor)
	}
	if cfg.GatePenalty != 10 {
		t.Errorf("gate_penalty = %v, want 10", cfg.GatePenalty)
	}
	// Untouched keys keep their defaults.
	if cfg.YellowFloor != 1.5 || cfg.StatusPoints[StatusGreen] != 90 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	if err := os.WriteFile(path, []byte("yellow_floor: 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for inverted thresholds")
	}
}
