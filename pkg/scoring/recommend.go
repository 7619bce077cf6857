package scoring

import (
	"fmt"

	"github.com/hirescope/hirescope/pkg/audit"
)

// TriggerOutcome is the explicit result of evaluating one recommendation
// trigger. Failures are observable for diagnostics but never abort selection
// of the remaining catalog entries.
type TriggerOutcome string

const (
	OutcomeTriggered    TriggerOutcome = "triggered"
	OutcomeNotTriggered TriggerOutcome = "not_triggered"
	OutcomeFailed       TriggerOutcome = "evaluation_failed"
)

// TriggerEvaluation records the outcome of one catalog entry.
type TriggerEvaluation struct {
	RuleID  string         `json:"rule_id"`
	Outcome TriggerOutcome `json:"outcome"`
	Reason  string         `json:"reason,omitempty"`
}

// evalClause evaluates one trigger clause. A question clause whose answer is
// missing cannot be evaluated; a not-applicable answer only satisfies
// equality tests (so "answered N/A" is expressible) and fails ordered ones.
func evalClause(tc TriggerCondition, statuses map[string]Status, answers map[string]int) (bool, error) {
	if tc.Block != "" {
		current := statuses[tc.Block]
		for _, s := range tc.StatusIn {
			if current == s {
				return true, nil
			}
		}
		return false, nil
	}

	v, ok := answers[tc.Question]
	if !ok {
		return false, fmt.Errorf("question %s unanswered", tc.Question)
	}
	if v == audit.NotApplicable && tc.Op != OpEQ {
		return false, fmt.Errorf("question %s marked not applicable", tc.Question)
	}
	return compare(v, tc.Op, tc.Value), nil
}

// evalTrigger applies a trigger's clause lists: every All clause must hold
// and, when present, at least one Any clause must hold.
func evalTrigger(tr Trigger, statuses map[string]Status, answers map[string]int) (bool, error) {
	for _, tc := range tr.All {
		ok, err := evalClause(tc, statuses, answers)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if len(tr.Any) == 0 {
		return len(tr.All) > 0, nil
	}

	var firstErr error
	for _, tc := range tr.Any {
		ok, err := evalClause(tc, statuses, answers)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			return true, nil
		}
	}
	if firstErr != nil {
		return false, firstErr
	}
	return false, nil
}

// SelectRecommendations evaluates the recommendation catalog in order and
// returns the triggered entries, preserving catalog order, together with the
// per-rule evaluation record. A rule that cannot be evaluated is reported as
// failed and skipped; it never aborts the others.
func SelectRecommendations(rules []RecommendationRule, statuses map[string]Status,
	answers map[string]int) ([]Recommendation, []TriggerEvaluation) {

	var selected []Recommendation
	evaluations := make([]TriggerEvaluation, 0, len(rules))

	for _, r := range rules {
		fired, err := evalTrigger(r.Trigger, statuses, answers)
		switch {
		case err != nil:
			evaluations = append(evaluations, TriggerEvaluation{
				RuleID: r.ID, Outcome: OutcomeFailed, Reason: err.Error(),
			})
		case fired:
			evaluations = append(evaluations, TriggerEvaluation{RuleID: r.ID, Outcome: OutcomeTriggered})
			selected = append(selected, Recommendation{
				ID:        r.ID,
				Name:      r.Name,
				Priority:  r.Priority,
				QuickWins: r.QuickWins,
			})
		default:
			evaluations = append(evaluations, TriggerEvaluation{RuleID: r.ID, Outcome: OutcomeNotTriggered})
		}
	}

	return selected, evaluations
}
