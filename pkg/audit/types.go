// Package audit defines the submission model for a hiring-practice audit:
// a fixed questionnaire answered on a 0-3 maturity scale, keyed by question
// identifiers of the form "b<block>_q<number>".
package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// Answer values outside NotApplicable..MaxRating are rejected at the boundary.
const (
	// NotApplicable marks a question excluded from scoring.
	NotApplicable = -1
	// MinRating and MaxRating bound the Likert-style maturity scale.
	MinRating = 0
	MaxRating = 3
)

// Submission is one complete questionnaire response. Audit metadata passes
// through the engine untouched.
type Submission struct {
	AuditID   string         `json:"audit_id"`
	Company   string         `json:"company_name"`
	Responses map[string]int `json:"responses"`
}

// ValidValue reports whether v is in the accepted answer domain.
func ValidValue(v int) bool {
	return v == NotApplicable || (v >= MinRating && v <= MaxRating)
}

// ParseQuestionID splits an identifier like "b3_q2" into its block and
// question numbers.
func ParseQuestionID(id string) (block, question int, err error) {
	rest, ok := strings.CutPrefix(id, "b")
	if !ok {
		return 0, 0, fmt.Errorf("question id %q: missing block prefix", id)
	}
	blockPart, qPart, ok := strings.Cut(rest, "_q")
	if !ok {
		return 0, 0, fmt.Errorf("question id %q: malformed", id)
	}
	block, err = strconv.Atoi(blockPart)
	if err != nil {
		return 0, 0, fmt.Errorf("question id %q: bad block number", id)
	}
	question, err = strconv.Atoi(qPart)
	if err != nil {
		return 0, 0, fmt.Errorf("question id %q: bad question number", id)
	}
	return block, question, nil
}

// BlockID returns the block key ("block3") for a question identifier.
func BlockID(questionID string) (string, error) {
	block, _, err := ParseQuestionID(questionID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("block%d", block), nil
}
