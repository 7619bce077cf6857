package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the scoring constants. All values are overridable as data so
// the rule set can evolve without touching evaluation logic.
type Config struct {
	// GreenFloor and YellowFloor are block-average thresholds:
	// avg >= GreenFloor is green, avg >= YellowFloor is yellow, below is red.
	GreenFloor  float64 `yaml:"green_floor"`
	YellowFloor float64 `yaml:"yellow_floor"`

	// YellowGateCount is the number of yellow blocks that escalates a
	// non-red overall status to yellow.
	YellowGateCount int `yaml:"yellow_gate_count"`

	// StatusPoints maps each block status to its confidence contribution.
	StatusPoints map[Status]float64 `yaml:"status_points"`

	// Per-item confidence deductions.
	ContradictionPenalty float64 `yaml:"contradiction_penalty"`
	GatePenalty          float64 `yaml:"gate_penalty"`

	// DataTrust maps the reporting block's status to the data-trust
	// coefficient. A gray or missing reporting block means 1.0.
	DataTrust map[Status]float64 `yaml:"data_trust"`

	// DataTrustBlock is the block whose status selects the coefficient.
	DataTrustBlock string `yaml:"data_trust_block"`
}

// DefaultConfig returns the canonical scoring constants.
func DefaultConfig() Config {
	return Config{
		GreenFloor:      2.3,
		YellowFloor:     1.5,
		YellowGateCount: 2,
		StatusPoints: map[Status]float64{
			StatusGreen:  90,
			StatusYellow: 60,
			StatusRed:    30,
			StatusGray:   50,
		},
		ContradictionPenalty: 3,
		GatePenalty:          5,
		DataTrust: map[Status]float64{
			StatusGreen:  1.0,
			StatusYellow: 0.85,
			StatusRed:    0.7,
		},
		DataTrustBlock: "block7",
	}
}

// Validate checks the configuration for internal consistency. A malformed
// config fails engine initialization before any submission is processed.
func (c Config) Validate() error {
	if c.YellowFloor <= 0 || c.GreenFloor <= 0 {
		return fmt.Errorf("config: thresholds must be positive (yellow_floor=%v green_floor=%v)", c.YellowFloor, c.GreenFloor)
	}
	if c.YellowFloor >= c.GreenFloor {
		return fmt.Errorf("config: yellow_floor %v must be below green_floor %v", c.YellowFloor, c.GreenFloor)
	}
	if c.YellowGateCount < 1 {
		return fmt.Errorf("config: yellow_gate_count must be at least 1")
	}
	for _, s := range []Status{StatusGreen, StatusYellow, StatusRed, StatusGray} {
		if _, ok := c.StatusPoints[s]; !ok {
			return fmt.Errorf("config: status_points missing entry for %q", s)
		}
	}
	if c.ContradictionPenalty < 0 || c.GatePenalty < 0 {
		return fmt.Errorf("config: penalties must be non-negative")
	}
	for _, s := range []Status{StatusGreen, StatusYellow, StatusRed} {
		v, ok := c.DataTrust[s]
		if !ok {
			return fmt.Errorf("config: data_trust missing entry for %q", s)
		}
		if v <= 0 || v > 1 {
			return fmt.Errorf("config: data_trust[%s] = %v, want (0, 1]", s, v)
		}
	}
	if c.DataTrustBlock == "" {
		return fmt.Errorf("config: data_trust_block is required")
	}
	return nil
}

// LoadConfig reads scoring constants from a YAML file, overlaying them on the
// defaults. A missing file returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading scoring config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing scoring config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
