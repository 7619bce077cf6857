package scoring

import "math"

// dataTrustCoefficient derives the multiplier from the reporting block's
// status. A gray or missing reporting block does not reduce trust.
func dataTrustCoefficient(statuses map[string]Status, cfg Config) float64 {
	if dtc, ok := cfg.DataTrust[statuses[cfg.DataTrustBlock]]; ok {
		return dtc
	}
	return 1.0
}

// computeConfidence derives the 0-100 confidence integer: the mean of the
// per-status point values over all blocks (gray blocks included), minus flat
// deductions per contradiction and per gate failure, scaled by the data-trust
// coefficient. Blocks are visited in catalog order so float accumulation is
// reproducible.
func computeConfidence(statuses map[string]Status, blocks []Block,
	gateFailures []GateFailure, contradictions []Contradiction,
	dtc float64, cfg Config) int {

	if len(blocks) == 0 {
		return 0
	}

	var sum float64
	for _, b := range blocks {
		sum += cfg.StatusPoints[statuses[b.ID]]
	}
	confidence := sum / float64(len(blocks))

	confidence -= float64(len(contradictions)) * cfg.ContradictionPenalty
	confidence -= float64(len(gateFailures)) * cfg.GatePenalty
	confidence *= dtc

	score := int(math.Floor(confidence))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
