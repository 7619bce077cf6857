package scoring

import "testing"

func findEvaluation(evals []TriggerEvaluation, ruleID string) *TriggerEvaluation {
	for i := range evals {
		if evals[i].RuleID == ruleID {
			return &evals[i]
		}
	}
	return nil
}

func recommendationIDs(recs []Recommendation) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSelectRecommendationsStatusTriggers(t *testing.T) {
	rules := DefaultCatalog().Recommendations

	tests := []struct {
		name    string
		mutate  func(map[string]Status)
		answers map[string]int
		wantIDs []string
	}{
		{
			name:    "block1 red triggers ownerless hiring",
			mutate:  func(m map[string]Status) { m["block1"] = StatusRed },
			answers: map[string]int{"b1_q1": 0},
			wantIDs: []string{"B1-R01"},
		},
		{
			name:    "block2 yellow triggers capacity blindness",
			mutate:  func(m map[string]Status) { m["block2"] = StatusYellow },
			answers: map[string]int{"b2_q1": 2},
			wantIDs: []string{"B2-R03"},
		},
		{
			name:   "catalog order preserved across blocks",
			mutate: func(m map[string]Status) { m["block5"] = StatusRed; m["block1"] = StatusRed },
			answers: map[string]int{
				"b1_q1": 0, "b5_q1": 0,
			},
			wantIDs: []string{"B1-R01", "B5-R01"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			statuses := allGreen()
			tc.mutate(statuses)

			recs, _ := SelectRecommendations(rules, statuses, tc.answers)
			got := recommendationIDs(recs)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %v, want %v", got, tc.wantIDs)
			}
			for i := range got {
				if got[i] != tc.wantIDs[i] {
					t.Fatalf("got %v, want %v", got, tc.wantIDs)
				}
			}
		})
	}
}

func TestSelectRecommendationsAnswerTriggers(t *testing.T) {
	rules := DefaultCatalog().Recommendations
	statuses := allGreen()

	tests := []struct {
		name    string
		answers map[string]int
		wantID  string
	}{
		{"political prioritization on exact value", map[string]int{"b1_q8": 1}, "B1-R04"},
		{"key-person failure on zero", map[string]int{"b6_q4": 0}, "B6-R03"},
		{"shadow ai on not-applicable", map[string]int{"b7_q3": -1}, "B7-R02"},
		{"shadow ai on ungoverned tooling", map[string]int{"b7_q6": 1}, "B7-R02"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs, _ := SelectRecommendations(rules, statuses, tc.answers)
			for _, r := range recs {
				if r.ID == tc.wantID {
					return
				}
			}
			t.Errorf("expected %s in %v", tc.wantID, recommendationIDs(recs))
		})
	}
}

func TestSelectRecommendationsFailureIsolation(t *testing.T) {
	rules := DefaultCatalog().Recommendations
	statuses := allGreen()
	statuses["block1"] = StatusRed

	// b1_q8 is unanswered, so B1-R04 cannot be evaluated. B1-R01 must still
	// trigger and every other rule must still get an outcome.
	recs, evals := SelectRecommendations(rules, statuses, map[string]int{"b1_q1": 0})

	if len(evals) != len(rules) {
		t.Fatalf("got %d evaluations, want %d", len(evals), len(rules))
	}

	b1r04 := findEvaluation(evals, "B1-R04")
	if b1r04 == nil || b1r04.Outcome != OutcomeFailed {
		t.Errorf("B1-R04 outcome = %+v, want evaluation_failed", b1r04)
	}
	if b1r04 != nil && b1r04.Reason == "" {
		t.Error("failed evaluation should carry a reason")
	}

	found := false
	for _, r := range recs {
		if r.ID == "B1-R04" {
			t.Error("failed rule must not appear in output")
		}
		if r.ID == "B1-R01" {
			found = true
		}
	}
	if !found {
		t.Error("B1-R01 should trigger despite the failed rule")
	}
}

func TestSelectRecommendationsQuickWins(t *testing.T) {
	statuses := allGreen()
	statuses["block1"] = StatusRed

	recs, _ := SelectRecommendations(DefaultCatalog().Recommendations, statuses, map[string]int{"b1_q1": 0})
	if len(recs) == 0 {
		t.Fatal("expected a recommendation")
	}
	r := recs[0]
	if r.ID != "B1-R01" || len(r.QuickWins) == 0 {
		t.Fatalf("unexpected recommendation: %+v", r)
	}
	qw := r.QuickWins[0]
	if qw.Text == "" || qw.Owner == "" || qw.Effort == "" {
		t.Errorf("incomplete quick win: %+v", qw)
	}
}

func TestEvalClauseNotApplicable(t *testing.T) {
	statuses := allGreen()

	// Ordered comparison against an N/A answer is an evaluation failure,
	// not a match: -1 <= 1 must not fire a latency recommendation.
	_, err := evalClause(TriggerCondition{Question: "b3_q3", Op: OpLTE, Value: 1},
		statuses, map[string]int{"b3_q3": -1})
	if err == nil {
		t.Error("expected error for ordered comparison against not-applicable")
	}

	// Equality against -1 is how "answered N/A" is expressed.
	ok, err := evalClause(TriggerCondition{Question: "b7_q3", Op: OpEQ, Value: -1},
		statuses, map[string]int{"b7_q3": -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("equality against -1 should match an N/A answer")
	}
}
