package scoring

import (
	"errors"
	"fmt"

	"github.com/hirescope/hirescope/pkg/audit"
)

// Validation failures reject the whole submission at the boundary.
var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrValueOutOfRange = errors.New("answer value out of range")
	ErrEmptySubmission = errors.New("submission has no responses")
)

// Engine evaluates audit submissions against a fixed rule catalog.
// Construction validates the configuration and catalog; evaluation itself is
// a pure function over the submission and the static tables.
type Engine struct {
	cfg           Config
	catalog       *Catalog
	questionBlock map[string]string
}

// NewEngine creates an engine, failing on a malformed config or catalog.
func NewEngine(cfg Config, catalog *Catalog) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:           cfg,
		catalog:       catalog,
		questionBlock: catalog.QuestionBlocks(),
	}, nil
}

// Config returns the scoring constants in use.
func (e *Engine) Config() Config { return e.cfg }

// Catalog returns the rule tables in use.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// validate rejects answers outside the value domain or the question schema.
func (e *Engine) validate(sub audit.Submission) error {
	if len(sub.Responses) == 0 {
		return ErrEmptySubmission
	}
	for q, v := range sub.Responses {
		if _, known := e.questionBlock[q]; !known {
			return fmt.Errorf("%w: %q", ErrUnknownQuestion, q)
		}
		if !audit.ValidValue(v) {
			return fmt.Errorf("%w: %s = %d", ErrValueOutOfRange, q, v)
		}
	}
	return nil
}

// Evaluate runs the full pipeline: block scoring, gates, cross-validation,
// contradiction escalation, confidence, recommendations. The returned
// Diagnosis is freshly built per call; identical submissions yield
// byte-identical JSON.
func (e *Engine) Evaluate(sub audit.Submission) (*Diagnosis, error) {
	if err := e.validate(sub); err != nil {
		return nil, err
	}

	details := scoreBlocks(sub.Responses, e.catalog.Blocks, e.cfg)

	statuses := make(map[string]Status, len(details))
	scores := make(map[string]float64)
	for id, d := range details {
		statuses[id] = d.Status
		if d.Average != nil {
			scores[id] = *d.Average
		}
	}

	overall, gateFailures := evaluateGates(statuses, e.catalog.Gates, e.cfg)

	contradictions := crossValidate(sub.Responses, e.catalog.Rules)
	overall = escalateForContradictions(overall, contradictions)

	dtc := dataTrustCoefficient(statuses, e.cfg)
	confidence := computeConfidence(statuses, e.catalog.Blocks, gateFailures, contradictions, dtc, e.cfg)

	recommendations, _ := SelectRecommendations(e.catalog.Recommendations, statuses, sub.Responses)

	// Empty slices, not nil, so the JSON sequences are always present.
	if gateFailures == nil {
		gateFailures = []GateFailure{}
	}
	if contradictions == nil {
		contradictions = []Contradiction{}
	}
	if recommendations == nil {
		recommendations = []Recommendation{}
	}

	return &Diagnosis{
		AuditID:         sub.AuditID,
		Company:         sub.Company,
		BlockScores:     scores,
		BlockStatuses:   statuses,
		BlockDetails:    details,
		GateFailures:    gateFailures,
		Contradictions:  contradictions,
		OverallStatus:   overall,
		ConfidenceScore: confidence,
		DTC:             dtc,
		Recommendations: recommendations,
	}, nil
}
