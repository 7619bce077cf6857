package scoring

import "github.com/hirescope/hirescope/pkg/audit"

// compare evaluates a single condition against an answer value.
func compare(value int, op string, threshold int) bool {
	switch op {
	case OpGTE:
		return value >= threshold
	case OpLTE:
		return value <= threshold
	case OpEQ:
		return value == threshold
	default:
		return false
	}
}

// crossValidate runs every contradiction rule against the raw answers, in
// catalog order. A rule is skipped, not failed, when either question is
// unanswered or marked not applicable.
func crossValidate(answers map[string]int, rules []ContradictionRule) []Contradiction {
	var found []Contradiction

	for _, r := range rules {
		sourceVal, ok := answers[r.Source.Question]
		if !ok || sourceVal == audit.NotApplicable {
			continue
		}
		validatorVal, ok := answers[r.Validator.Question]
		if !ok || validatorVal == audit.NotApplicable {
			continue
		}

		if compare(sourceVal, r.Source.Op, r.Source.Value) &&
			compare(validatorVal, r.Validator.Op, r.Validator.Value) {
			found = append(found, Contradiction{
				RuleID:    r.ID,
				Name:      r.Name,
				Severity:  r.Severity,
				Diagnosis: r.Diagnosis,
			})
		}
	}

	return found
}

// escalateForContradictions applies force-red contradictions to the overall
// status. This runs after the gates and can only escalate, never de-escalate.
func escalateForContradictions(overall Status, contradictions []Contradiction) Status {
	for _, c := range contradictions {
		if c.Severity == SeverityForceRed {
			return StatusRed
		}
	}
	return overall
}
