package scoring

import "fmt"

// questionRange enumerates "b<block>_q1" .. "b<block>_q<n>".
func questionRange(block, n int) []string {
	qs := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, fmt.Sprintf("b%d_q%d", block, i))
	}
	return qs
}

// DefaultCatalog returns the built-in rule tables: the seven audit blocks,
// the escalation gates, the cross-validation rules, and the recommendation
// catalog. Order is evaluation order.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Blocks: []Block{
			{
				ID: "block1", Name: "Executive Ownership", Role: "Gatekeeper",
				Questions: questionRange(1, 12),
				Critical:  []string{"b1_q3", "b1_q4", "b1_q7"},
			},
			{
				ID: "block2", Name: "TA Leadership", Role: "Execution brain",
				Questions: questionRange(2, 10),
				Critical:  []string{"b2_q3", "b2_q5", "b2_q6"},
			},
			{
				ID: "block3", Name: "Delivery & Hiring Leadership", Role: "Demand integrity",
				Questions: questionRange(3, 8),
				Critical:  []string{"b3_q2", "b3_q3"},
			},
			{
				ID: "block4", Name: "Financial Governance", Role: "Cost control",
				Questions: questionRange(4, 8),
				Critical:  []string{"b4_q1", "b4_q2", "b4_q4"},
			},
			{
				ID: "block5", Name: "Technical Interviewing", Role: "Bottleneck layer",
				Questions: questionRange(5, 8),
				Critical:  []string{"b5_q1", "b5_q2"},
			},
			{
				ID: "block6", Name: "Recruitment Operations", Role: "Stability foundation",
				Questions: questionRange(6, 8),
				Critical:  []string{"b6_q5", "b6_q8"},
			},
			{
				ID: "block7", Name: "Reporting, Data & AI", Role: "Systemic multiplier",
				Questions: questionRange(7, 10),
				Critical:  []string{"b7_q1", "b7_q2"},
			},
		},

		Gates: []GateRule{
			{Gate: "GATE_0", Block: "block1", Name: "Ownerless Hiring"},
			{Gate: "GATE_1", Block: "block2", Name: "Ungoverned TA"},
			{Gate: "GATE_1", Block: "block4", Name: "Financial Opacity"},
			{Gate: "EXECUTION", Block: "block3", Name: "Interview Bottleneck"},
			{Gate: "EXECUTION", Block: "block5", Name: "Evaluation Collapse"},
			{Gate: "EXECUTION", Block: "block6", Name: "Operational Fragility"},
		},

		Rules: []ContradictionRule{
			{
				ID: "CV-01", Name: "Ownerless Hiring in Practice",
				Source:    Condition{Question: "b1_q3", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b6_q2", Op: OpLTE, Value: 1},
				Severity:  SeverityForceRed,
				Diagnosis: "Nominal ownership without mandate",
			},
			{
				ID: "CV-02", Name: "Planning Illusion",
				Source:    Condition{Question: "b1_q1", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b2_q5", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Planning without capacity math",
			},
			{
				ID: "CV-03", Name: "Cadence Claimed Not Lived",
				Source:    Condition{Question: "b1_q7", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b3_q4", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Prioritization cadence exists on paper only",
			},
			{
				ID: "CV-04", Name: "Visibility Illusion",
				Source:    Condition{Question: "b1_q5", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b7_q1", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Dashboard fantasy - no reliable reporting",
			},
			{
				ID: "CV-05", Name: "SLA Theatre",
				Source:    Condition{Question: "b2_q3", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b6_q5", Op: OpLTE, Value: 1},
				Severity:  SeverityForceRed,
				Diagnosis: "SLA exists on paper only",
			},
			{
				ID: "CV-06", Name: "Capacity Denial",
				Source:    Condition{Question: "b2_q5", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b6_q8", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Operational overload hidden",
			},
			{
				ID: "CV-07", Name: "Quality Misalignment",
				Source:    Condition{Question: "b2_q4", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b3_q1", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "TA and Delivery disagree on quality",
			},
			{
				ID: "CV-08", Name: "Interview Bottleneck Masked",
				Source:    Condition{Question: "b3_q2", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b5_q2", Op: OpLTE, Value: 1},
				Severity:  SeverityForceRed,
				Diagnosis: "Delivery denial on interviews",
			},
			{
				ID: "CV-09", Name: "Feedback Latency Hidden",
				Source:    Condition{Question: "b3_q3", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b6_q7", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Feedback delays not visible",
			},
			{
				ID: "CV-11", Name: "Unfounded Budget",
				Source:    Condition{Question: "b4_q2", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b2_q5", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Budget without formula",
			},
			{
				ID: "CV-15", Name: "Rubric Theatre",
				Source:    Condition{Question: "b5_q3", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b3_q4", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Evaluation criteria exist but not used",
			},
			{
				ID: "CV-17", Name: "Evaluation Governance Broken",
				Source:    Condition{Question: "b5_q2", Op: OpGTE, Value: 2},
				Validator: Condition{Question: "b6_q7", Op: OpLTE, Value: 1},
				Severity:  SeverityForceRed,
				Diagnosis: "No accountability, no SLA",
			},
			{
				ID: "CV-20", Name: "Bottleneck Denial",
				Source:    Condition{Question: "b1_q6", Op: OpLTE, Value: 1},
				Validator: Condition{Question: "b6_q7", Op: OpLTE, Value: 1},
				Severity:  SeverityFlag,
				Diagnosis: "Executive blind to operational reality",
			},
		},

		Recommendations: []RecommendationRule{
			{
				ID: "B1-R01", Name: "Ownerless Hiring", Priority: 1,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block1", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Designate interim hiring owner (CEO/COO) for 90 days", Owner: "CEO", Effort: "1 day"},
					{Text: "Add hiring status to weekly leadership agenda", Owner: "COO/EA", Effort: "2 hours"},
				},
			},
			{
				ID: "B1-R04", Name: "Political Prioritization", Priority: 2,
				Trigger: Trigger{All: []TriggerCondition{
					{Question: "b1_q8", Op: OpEQ, Value: 1},
				}},
				QuickWins: []QuickWin{
					{Text: "Define RACI matrix for hiring decisions", Owner: "HR + Business", Effort: "1 week"},
				},
			},
			{
				ID: "B2-R02", Name: "SLA Theatre", Priority: 1,
				Trigger: Trigger{All: []TriggerCondition{
					{Question: "b2_q3", Op: OpGTE, Value: 2},
					{Question: "b6_q5", Op: OpLTE, Value: 1},
				}},
				QuickWins: []QuickWin{
					{Text: "Implement SLA dashboard visible to all stakeholders", Owner: "TA + IT", Effort: "2 weeks"},
					{Text: "Set 24-hour feedback SLA with automated reminders", Owner: "TA Ops", Effort: "2 hours"},
				},
			},
			{
				ID: "B2-R03", Name: "Capacity Blindness", Priority: 2,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block2", StatusIn: []Status{StatusRed, StatusYellow}},
				}},
				QuickWins: []QuickWin{
					{Text: "Count active roles per recruiter and set max threshold", Owner: "TA Lead", Effort: "4 hours"},
					{Text: "Build capacity model by role complexity", Owner: "TA Ops", Effort: "2 weeks"},
				},
			},
			{
				ID: "B3-R01", Name: "Interview Bottleneck", Priority: 1,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block3", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Block 4 interview slots per week for key interviewers", Owner: "Delivery", Effort: "1 day"},
				},
			},
			{
				ID: "B3-R02", Name: "Feedback Latency", Priority: 2,
				Trigger: Trigger{All: []TriggerCondition{
					{Question: "b3_q3", Op: OpLTE, Value: 1},
				}},
				QuickWins: []QuickWin{
					{Text: "Set 24-hour feedback SLA with automated reminders", Owner: "TA Ops", Effort: "2 hours"},
				},
			},
			{
				ID: "B4-R01", Name: "Financial Opacity", Priority: 1,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block4", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Assign a single owner for the TA budget", Owner: "Finance", Effort: "1 day"},
					{Text: "Publish monthly cost-per-hire to leadership", Owner: "Finance + TA", Effort: "1 week"},
				},
			},
			{
				ID: "B5-R01", Name: "Evaluation Collapse", Priority: 1,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block5", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Create standardized evaluation scorecard template", Owner: "Engineering", Effort: "4 hours"},
				},
			},
			{
				ID: "B6-R01", Name: "Operational Fragility", Priority: 1,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block6", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Document the end-to-end recruitment process", Owner: "TA Ops", Effort: "1 week"},
				},
			},
			{
				ID: "B6-R03", Name: "Key-Person Failure", Priority: 1,
				Trigger: Trigger{All: []TriggerCondition{
					{Question: "b6_q4", Op: OpEQ, Value: 0},
				}},
				QuickWins: []QuickWin{
					{Text: "Cross-train a backup for each critical recruiting role", Owner: "TA Lead", Effort: "2 weeks"},
				},
			},
			{
				ID: "B7-R01", Name: "Systemic Visibility Failure", Priority: 2,
				Trigger: Trigger{Any: []TriggerCondition{
					{Block: "block7", StatusIn: []Status{StatusRed}},
				}},
				QuickWins: []QuickWin{
					{Text: "Stand up a weekly hiring funnel report from ATS data", Owner: "TA Ops", Effort: "1 week"},
					{Text: "Establish monthly Hiring Governance Forum", Owner: "COO", Effort: "2 weeks"},
				},
			},
			{
				ID: "B7-R02", Name: "Shadow AI", Priority: 2,
				Trigger: Trigger{Any: []TriggerCondition{
					{Question: "b7_q3", Op: OpEQ, Value: -1},
					{Question: "b7_q6", Op: OpLTE, Value: 1},
				}},
				QuickWins: []QuickWin{
					{Text: "Inventory AI tools used in hiring and assign an approver", Owner: "HR + IT", Effort: "1 week"},
				},
			},
		},
	}
}
