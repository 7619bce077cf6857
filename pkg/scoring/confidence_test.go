package scoring

import "testing"

func TestDataTrustCoefficient(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		status Status
		want   float64
	}{
		{"green reporting block", StatusGreen, 1.0},
		{"yellow reporting block", StatusYellow, 0.85},
		{"red reporting block", StatusRed, 0.7},
		{"gray reporting block", StatusGray, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			statuses := allGreen()
			statuses["block7"] = tc.status
			if got := dataTrustCoefficient(statuses, cfg); got != tc.want {
				t.Errorf("dtc = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDataTrustCoefficientMissingBlock(t *testing.T) {
	if got := dataTrustCoefficient(map[string]Status{}, DefaultConfig()); got != 1.0 {
		t.Errorf("dtc = %v, want 1.0 when reporting block absent", got)
	}
}

func TestComputeConfidence(t *testing.T) {
	cfg := DefaultConfig()
	blocks := DefaultCatalog().Blocks

	tests := []struct {
		name           string
		mutate         func(map[string]Status)
		gateFailures   []GateFailure
		contradictions []Contradiction
		dtc            float64
		want           int
	}{
		{
			name:   "all green no deductions",
			mutate: func(m map[string]Status) {},
			dtc:    1.0,
			want:   90,
		},
		{
			name:   "all gray is neutral fifty",
			mutate: func(m map[string]Status) { setAll(m, StatusGray) },
			dtc:    1.0,
			want:   50,
		},
		{
			name:   "all red floor",
			mutate: func(m map[string]Status) { setAll(m, StatusRed) },
			dtc:    0.7,
			want:   21, // 30 * 0.7
		},
		{
			name:         "gate deduction",
			mutate:       func(m map[string]Status) { m["block1"] = StatusRed },
			gateFailures: []GateFailure{{Gate: "GATE_0", Block: "block1"}},
			dtc:          1.0,
			// (30 + 6*90)/7 = 81.43, minus 5, floored
			want: 76,
		},
		{
			name:           "contradiction deductions stack",
			mutate:         func(m map[string]Status) {},
			contradictions: []Contradiction{{RuleID: "CV-02"}, {RuleID: "CV-03"}},
			dtc:            1.0,
			want:           84, // 90 - 2*3
		},
		{
			name:   "dtc scales after deductions",
			mutate: func(m map[string]Status) {},
			contradictions: []Contradiction{
				{RuleID: "CV-02"}, {RuleID: "CV-03"},
			},
			dtc:  0.85,
			want: 71, // floor(84 * 0.85) = floor(71.4)
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			statuses := allGreen()
			tc.mutate(statuses)

			got := computeConfidence(statuses, blocks, tc.gateFailures, tc.contradictions, tc.dtc, cfg)
			if got != tc.want {
				t.Errorf("confidence = %d, want %d", got, tc.want)
			}
		})
	}
}

func setAll(m map[string]Status, s Status) {
	for k := range m {
		m[k] = s
	}
}

func TestComputeConfidenceClampsAtZero(t *testing.T) {
	statuses := allGreen()
	setAll(statuses, StatusRed)

	// Enough deductions to push the raw value negative.
	var gates []GateFailure
	for i := 0; i < 10; i++ {
		gates = append(gates, GateFailure{Gate: "EXECUTION"})
	}
	got := computeConfidence(statuses, DefaultCatalog().Blocks, gates, nil, 1.0, DefaultConfig())
	if got != 0 {
		t.Errorf("confidence = %d, want 0", got)
	}
}

func TestComputeConfidenceRange(t *testing.T) {
	// Confidence stays within [0, 100] across status mixes.
	cfg := DefaultConfig()
	blocks := DefaultCatalog().Blocks
	for _, s := range []Status{StatusGreen, StatusYellow, StatusRed, StatusGray} {
		statuses := allGreen()
		setAll(statuses, s)
		for _, dtc := range []float64{0.7, 0.85, 1.0} {
			got := computeConfidence(statuses, blocks, nil, nil, dtc, cfg)
			if got < 0 || got > 100 {
				t.Errorf("confidence(%s, dtc=%v) = %d out of range", s, dtc, got)
			}
		}
	}
}
