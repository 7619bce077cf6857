package scoring

import (
	"math"

	"github.com/hirescope/hirescope/pkg/audit"
)

// scoreBlock computes one block's average and status from the raw answers.
// Not-applicable answers are excluded; a block with zero valid answers is
// gray with no average. The unrounded average drives threshold comparisons;
// the stored average is rounded to two decimals for reporting.
func scoreBlock(answers map[string]int, block Block, cfg Config) BlockResult {
	var (
		sum   float64
		valid int
	)
	var criticalZeros []string

	for _, q := range block.Questions {
		v, ok := answers[q]
		if !ok || v == audit.NotApplicable {
			continue
		}
		sum += float64(v)
		valid++
	}
	for _, q := range block.Critical {
		if v, ok := answers[q]; ok && v == 0 {
			criticalZeros = append(criticalZeros, q)
		}
	}

	if valid == 0 {
		return BlockResult{Status: StatusGray}
	}

	avg := sum / float64(valid)
	rounded := math.Round(avg*100) / 100

	var status Status
	switch {
	case len(criticalZeros) > 0 || avg < cfg.YellowFloor:
		status = StatusRed
	case avg < cfg.GreenFloor:
		status = StatusYellow
	default:
		status = StatusGreen
	}

	return BlockResult{
		Average:       &rounded,
		Status:        status,
		Answered:      valid,
		CriticalZeros: criticalZeros,
	}
}

// scoreBlocks evaluates every catalog block, in catalog order.
func scoreBlocks(answers map[string]int, blocks []Block, cfg Config) map[string]BlockResult {
	results := make(map[string]BlockResult, len(blocks))
	for _, b := range blocks {
		results[b.ID] = scoreBlock(answers, b, cfg)
	}
	return results
}
