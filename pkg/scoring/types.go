// Package scoring implements the Hirescope audit rule-evaluation engine.
// It turns raw questionnaire responses into a structured diagnosis: per-block
// health statuses, escalation gates, cross-answer contradiction detection, a
// confidence score, and triggered recommendations. Evaluation is deterministic
// and side-effect-free; identical input produces byte-identical output.
package scoring

// Status is a traffic-light health level for a block or the overall audit.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
	// StatusGray means a block had no valid answers. Gray blocks contribute a
	// neutral confidence score but never escalate the overall status.
	StatusGray Status = "gray"
)

// rank orders statuses by severity: red > yellow > green. Gray is not
// escalatable and ranks lowest.
func (s Status) rank() int {
	switch s {
	case StatusRed:
		return 3
	case StatusYellow:
		return 2
	case StatusGreen:
		return 1
	default:
		return 0
	}
}

// Worse returns the more severe of two statuses.
func Worse(a, b Status) Status {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// Severity classifies a contradiction rule's impact on the overall status.
type Severity string

const (
	// SeverityForceRed overrides the overall status to red, regardless of
	// what the gates produced.
	SeverityForceRed Severity = "force-red"
	// SeverityFlag records the contradiction without escalating.
	SeverityFlag Severity = "flag"
)

// BlockResult holds one block's computed score and status.
// Average is nil when the block has no valid answers (status gray).
type BlockResult struct {
	Average       *float64 `json:"average,omitempty"`
	Status        Status   `json:"status"`
	Answered      int      `json:"answered"`
	CriticalZeros []string `json:"critical_zeros,omitempty"`
}

// GateFailure records an escalation rule that fired.
type GateFailure struct {
	Gate  string `json:"gate"` // GATE_0, GATE_1, EXECUTION
	Block string `json:"block"`
	Name  string `json:"name"`
}

// Contradiction is an instantiated contradiction-rule match between two
// answers that should logically agree.
type Contradiction struct {
	RuleID    string   `json:"rule_id"`
	Name      string   `json:"name"`
	Severity  Severity `json:"severity"`
	Diagnosis string   `json:"diagnosis,omitempty"`
}

// QuickWin is a single remediation action attached to a recommendation.
type QuickWin struct {
	Text   string `json:"text" yaml:"text"`
	Owner  string `json:"owner" yaml:"owner"`
	Effort string `json:"effort" yaml:"effort"`
}

// Recommendation is a triggered entry from the recommendation catalog.
type Recommendation struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Priority  int        `json:"priority"`
	QuickWins []QuickWin `json:"quick_wins,omitempty"`
}

// Diagnosis is the complete, JSON-serializable output of one evaluation.
// BlockStatuses always carries all seven blocks; BlockScores omits blocks
// with no valid answers. Sequence fields preserve evaluation order.
type Diagnosis struct {
	AuditID         string                 `json:"audit_id"`
	Company         string                 `json:"company_name"`
	BlockScores     map[string]float64     `json:"block_scores"`
	BlockStatuses   map[string]Status      `json:"block_statuses"`
	BlockDetails    map[string]BlockResult `json:"block_details"`
	GateFailures    []GateFailure          `json:"gate_failures"`
	Contradictions  []Contradiction        `json:"contradictions"`
	OverallStatus   Status                 `json:"overall_status"`
	ConfidenceScore int                    `json:"confidence_score"`
	DTC             float64                `json:"dtc"`
	Recommendations []Recommendation       `json:"recommendations"`
}
