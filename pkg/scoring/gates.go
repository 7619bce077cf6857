package scoring

// evaluateGates applies the escalation gates over block statuses. All gates
// run and their failures accumulate in catalog order; escalation is monotonic,
// a later rule never lowers a red. With no red blocks, reaching the yellow
// count escalates the overall status to yellow.
func evaluateGates(statuses map[string]Status, gates []GateRule, cfg Config) (Status, []GateFailure) {
	overall := StatusGreen
	var failures []GateFailure

	for _, g := range gates {
		if statuses[g.Block] != StatusRed {
			continue
		}
		failures = append(failures, GateFailure{Gate: g.Gate, Block: g.Block, Name: g.Name})
		overall = StatusRed
	}

	if overall != StatusRed {
		yellow := 0
		for _, s := range statuses {
			if s == StatusYellow {
				yellow++
			}
		}
		if yellow >= cfg.YellowGateCount {
			overall = StatusYellow
		}
	}

	return overall, failures
}
