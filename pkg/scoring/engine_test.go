package scoring_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hirescope/hirescope/pkg/audit"
	"github.com/hirescope/hirescope/pkg/scoring"
)

func newEngine(t *testing.T) *scoring.Engine {
	t.Helper()
	eng, err := scoring.NewEngine(scoring.DefaultConfig(), scoring.DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}

// ratedSubmission answers every question in the schema with the same value.
func ratedSubmission(value int) audit.Submission {
	responses := make(map[string]int)
	for _, b := range scoring.DefaultCatalog().Blocks {
		for _, q := range b.Questions {
			responses[q] = value
		}
	}
	return audit.Submission{AuditID: "audit-1", Company: "TechCorp Inc.", Responses: responses}
}

func TestEvaluateAllThrees(t *testing.T) {
	d, err := newEngine(t).Evaluate(ratedSubmission(3))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if d.OverallStatus != scoring.StatusGreen {
		t.Errorf("overall = %s, want green", d.OverallStatus)
	}
	if len(d.GateFailures) != 0 {
		t.Errorf("gate failures = %v, want none", d.GateFailures)
	}
	if len(d.Contradictions) != 0 {
		t.Errorf("contradictions = %v, want none", d.Contradictions)
	}
	if d.ConfidenceScore < 80 {
		t.Errorf("confidence = %d, want >= 80", d.ConfidenceScore)
	}
	if d.DTC != 1.0 {
		t.Errorf("dtc = %v, want 1.0", d.DTC)
	}
	for id, s := range d.BlockStatuses {
		if s != scoring.StatusGreen {
			t.Errorf("%s = %s, want green", id, s)
		}
	}
}

func TestEvaluateBlock1Collapse(t *testing.T) {
	// Block 1 rated 0/1 with its critical questions at 0, everything else 3.
	sub := ratedSubmission(3)
	for _, q := range scoring.DefaultCatalog().Blocks[0].Questions {
		sub.Responses[q] = 1
	}
	sub.Responses["b1_q3"] = 0
	sub.Responses["b1_q4"] = 0
	sub.Responses["b1_q7"] = 0

	d, err := newEngine(t).Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if d.BlockStatuses["block1"] != scoring.StatusRed {
		t.Errorf("block1 = %s, want red", d.BlockStatuses["block1"])
	}
	if d.OverallStatus != scoring.StatusRed {
		t.Errorf("overall = %s, want red", d.OverallStatus)
	}

	foundGate0 := false
	for _, f := range d.GateFailures {
		if f.Gate == "GATE_0" && f.Block == "block1" {
			foundGate0 = true
		}
	}
	if !foundGate0 {
		t.Errorf("gate failures %v missing GATE_0 for block1", d.GateFailures)
	}
}

func TestEvaluateSLATheatre(t *testing.T) {
	// SLA claimed in block 2 but not enforced per block 6; everything else
	// rated 2, so no block is red and the escalation comes from CV-05 alone.
	sub := ratedSubmission(2)
	sub.Responses["b2_q3"] = 3
	sub.Responses["b6_q5"] = 1

	d, err := newEngine(t).Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	for id, s := range d.BlockStatuses {
		if s == scoring.StatusRed {
			t.Fatalf("%s is red; scenario requires escalation via contradiction only", id)
		}
	}
	if len(d.GateFailures) != 0 {
		t.Errorf("gate failures = %v, want none", d.GateFailures)
	}

	var cv05 *scoring.Contradiction
	for i := range d.Contradictions {
		if d.Contradictions[i].RuleID == "CV-05" {
			cv05 = &d.Contradictions[i]
		}
	}
	if cv05 == nil {
		t.Fatalf("contradictions %v missing CV-05", d.Contradictions)
	}
	if cv05.Severity != scoring.SeverityForceRed {
		t.Errorf("CV-05 severity = %s, want force-red", cv05.Severity)
	}
	if d.OverallStatus != scoring.StatusRed {
		t.Errorf("overall = %s, want red", d.OverallStatus)
	}
}

func TestEvaluateTwoYellows(t *testing.T) {
	// Two blocks rated 2 (yellow), the rest 3 (green): overall yellow.
	sub := ratedSubmission(3)
	catalog := scoring.DefaultCatalog()
	for _, b := range catalog.Blocks {
		if b.ID != "block3" && b.ID != "block5" {
			continue
		}
		for _, q := range b.Questions {
			sub.Responses[q] = 2
		}
	}

	d, err := newEngine(t).Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if d.BlockStatuses["block3"] != scoring.StatusYellow || d.BlockStatuses["block5"] != scoring.StatusYellow {
		t.Fatalf("expected block3/block5 yellow, got %v", d.BlockStatuses)
	}
	if len(d.Contradictions) != 0 {
		t.Fatalf("contradictions = %v, want none", d.Contradictions)
	}
	if d.OverallStatus != scoring.StatusYellow {
		t.Errorf("overall = %s, want yellow", d.OverallStatus)
	}
}

func TestEvaluateAllNotApplicable(t *testing.T) {
	d, err := newEngine(t).Evaluate(ratedSubmission(audit.NotApplicable))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	for id, s := range d.BlockStatuses {
		if s != scoring.StatusGray {
			t.Errorf("%s = %s, want gray", id, s)
		}
	}
	if len(d.BlockScores) != 0 {
		t.Errorf("block scores = %v, want empty", d.BlockScores)
	}
	if d.ConfidenceScore < 0 || d.ConfidenceScore > 100 {
		t.Errorf("confidence = %d out of range", d.ConfidenceScore)
	}
	if d.OverallStatus != scoring.StatusGreen {
		t.Errorf("overall = %s, want green (gray never escalates)", d.OverallStatus)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	eng := newEngine(t)
	sub := ratedSubmission(2)
	sub.Responses["b2_q3"] = 3
	sub.Responses["b6_q5"] = 1
	sub.Responses["b7_q6"] = 0

	first, err := eng.Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, err := eng.Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("diagnoses differ:\n%s\n%s", a, b)
	}
}

func TestEvaluateMetadataPassthrough(t *testing.T) {
	sub := ratedSubmission(3)
	sub.AuditID = "audit-42"
	sub.Company = "Acme GmbH"

	d, err := newEngine(t).Evaluate(sub)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if d.AuditID != "audit-42" || d.Company != "Acme GmbH" {
		t.Errorf("metadata not passed through: %q %q", d.AuditID, d.Company)
	}
}

func TestEvaluateValidation(t *testing.T) {
	eng := newEngine(t)

	tests := []struct {
		name      string
		responses map[string]int
		wantErr   error
	}{
		{
			name:      "empty submission",
			responses: map[string]int{},
			wantErr:   scoring.ErrEmptySubmission,
		},
		{
			name:      "unknown question id",
			responses: map[string]int{"b9_q1": 2},
			wantErr:   scoring.ErrUnknownQuestion,
		},
		{
			name:      "question number outside schema",
			responses: map[string]int{"b3_q99": 2},
			wantErr:   scoring.ErrUnknownQuestion,
		},
		{
			name:      "value above range",
			responses: map[string]int{"b1_q1": 4},
			wantErr:   scoring.ErrValueOutOfRange,
		},
		{
			name:      "value below range",
			responses: map[string]int{"b1_q1": -2},
			wantErr:   scoring.ErrValueOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Evaluate(audit.Submission{Responses: tc.responses})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEvaluateErrorNamesOffender(t *testing.T) {
	eng := newEngine(t)
	_, err := eng.Evaluate(audit.Submission{Responses: map[string]int{"b1_q1": 7}})
	if err == nil || !strings.Contains(err.Error(), "b1_q1") {
		t.Errorf("error %v should name the offending question", err)
	}
}

func TestEvaluateDiagnosisShape(t *testing.T) {
	d, err := newEngine(t).Evaluate(ratedSubmission(3))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"block_scores", "block_statuses", "gate_failures", "contradictions",
		"overall_status", "confidence_score", "dtc", "recommendations",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("diagnosis JSON missing %q", key)
		}
	}

	statuses, ok := decoded["block_statuses"].(map[string]any)
	if !ok || len(statuses) != 7 {
		t.Errorf("block_statuses should carry all seven blocks, got %v", decoded["block_statuses"])
	}
}
