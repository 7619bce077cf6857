package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hirescope/hirescope/pkg/audit"
)

// Comparison operators accepted by contradiction rules and recommendation
// triggers. Equality is only used by triggers (e.g. "answered not-applicable").
const (
	OpGTE = ">="
	OpLTE = "<="
	OpEQ  = "=="
)

// Block is one of the seven fixed audit categories.
type Block struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Role      string   `yaml:"role" json:"role"`
	Questions []string `yaml:"questions" json:"questions"`
	// Critical questions force the block red when rated exactly 0,
	// regardless of the block average.
	Critical []string `yaml:"critical" json:"critical"`
}

// GateRule forces the overall status to red when its block is red.
// Rules are evaluated in catalog order; all of them run and accumulate.
type GateRule struct {
	Gate  string `yaml:"gate" json:"gate"`
	Block string `yaml:"block" json:"block"`
	Name  string `yaml:"name" json:"name"`
}

// Condition compares one answer against a threshold.
type Condition struct {
	Question string `yaml:"question" json:"question"`
	Op       string `yaml:"op" json:"op"`
	Value    int    `yaml:"value" json:"value"`
}

// ContradictionRule pairs a claim (source) with a reality check (validator).
// Both halves must hold for the contradiction to fire.
type ContradictionRule struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Source    Condition `yaml:"source" json:"source"`
	Validator Condition `yaml:"validator" json:"validator"`
	Severity  Severity  `yaml:"severity" json:"severity"`
	Diagnosis string    `yaml:"diagnosis,omitempty" json:"diagnosis,omitempty"`
}

// TriggerCondition is one clause of a recommendation trigger: either a
// block-status membership test or an answer comparison, never both.
type TriggerCondition struct {
	Block    string   `yaml:"block,omitempty" json:"block,omitempty"`
	StatusIn []Status `yaml:"status_in,omitempty" json:"status_in,omitempty"`

	Question string `yaml:"question,omitempty" json:"question,omitempty"`
	Op       string `yaml:"op,omitempty" json:"op,omitempty"`
	Value    int    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Trigger is a declarative predicate over block statuses and raw answers.
// Any fires when at least one clause holds; All requires every clause.
// A trigger with both lists empty never fires.
type Trigger struct {
	Any []TriggerCondition `yaml:"any,omitempty" json:"any,omitempty"`
	All []TriggerCondition `yaml:"all,omitempty" json:"all,omitempty"`
}

// RecommendationRule is one entry in the static recommendation catalog.
type RecommendationRule struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	Priority  int        `yaml:"priority" json:"priority"`
	Trigger   Trigger    `yaml:"trigger" json:"trigger"`
	QuickWins []QuickWin `yaml:"quick_wins,omitempty" json:"quick_wins,omitempty"`
}

// Catalog bundles the rule tables the engine owns: blocks with their critical
// questions, gates, contradiction rules, and recommendations. All tables are
// ordered; order is evaluation order and must stay stable.
type Catalog struct {
	Blocks          []Block              `yaml:"blocks" json:"blocks"`
	Gates           []GateRule           `yaml:"gates" json:"gates"`
	Rules           []ContradictionRule  `yaml:"rules" json:"rules"`
	Recommendations []RecommendationRule `yaml:"recommendations" json:"recommendations"`
}

// QuestionBlocks returns a lookup from question id to owning block id.
func (c *Catalog) QuestionBlocks() map[string]string {
	m := make(map[string]string)
	for _, b := range c.Blocks {
		for _, q := range b.Questions {
			m[q] = b.ID
		}
	}
	return m
}

// Validate checks catalog integrity: unique ids, known questions and blocks,
// supported operators. A malformed catalog fails engine initialization.
func (c *Catalog) Validate() error {
	if len(c.Blocks) == 0 {
		return fmt.Errorf("catalog: no blocks defined")
	}

	blockIDs := make(map[string]bool)
	questions := make(map[string]bool)
	for _, b := range c.Blocks {
		if blockIDs[b.ID] {
			return fmt.Errorf("catalog: duplicate block id %q", b.ID)
		}
		blockIDs[b.ID] = true
		for _, q := range b.Questions {
			if questions[q] {
				return fmt.Errorf("catalog: question %q listed twice", q)
			}
			owner, err := audit.BlockID(q)
			if err != nil {
				return fmt.Errorf("catalog: block %s: %w", b.ID, err)
			}
			if owner != b.ID {
				return fmt.Errorf("catalog: question %q listed under block %s", q, b.ID)
			}
			questions[q] = true
		}
		for _, q := range b.Critical {
			if !questions[q] {
				return fmt.Errorf("catalog: block %s: critical question %q not in block", b.ID, q)
			}
		}
	}

	gateNames := make(map[string]bool)
	for _, g := range c.Gates {
		if !blockIDs[g.Block] {
			return fmt.Errorf("catalog: gate %q references unknown block %q", g.Name, g.Block)
		}
		if gateNames[g.Name] {
			return fmt.Errorf("catalog: duplicate gate %q", g.Name)
		}
		gateNames[g.Name] = true
	}

	ruleIDs := make(map[string]bool)
	for _, r := range c.Rules {
		if ruleIDs[r.ID] {
			return fmt.Errorf("catalog: duplicate rule id %q", r.ID)
		}
		ruleIDs[r.ID] = true
		for _, cond := range []Condition{r.Source, r.Validator} {
			if cond.Op != OpGTE && cond.Op != OpLTE {
				return fmt.Errorf("catalog: rule %s: unsupported operator %q", r.ID, cond.Op)
			}
			if !questions[cond.Question] {
				return fmt.Errorf("catalog: rule %s: unknown question %q", r.ID, cond.Question)
			}
		}
		if r.Severity != SeverityForceRed && r.Severity != SeverityFlag {
			return fmt.Errorf("catalog: rule %s: unknown severity %q", r.ID, r.Severity)
		}
	}

	recIDs := make(map[string]bool)
	for _, rec := range c.Recommendations {
		if recIDs[rec.ID] {
			return fmt.Errorf("catalog: duplicate recommendation id %q", rec.ID)
		}
		recIDs[rec.ID] = true
		clauses := append(append([]TriggerCondition{}, rec.Trigger.Any...), rec.Trigger.All...)
		if len(clauses) == 0 {
			return fmt.Errorf("catalog: recommendation %s: empty trigger", rec.ID)
		}
		for _, tc := range clauses {
			switch {
			case tc.Block != "" && tc.Question != "":
				return fmt.Errorf("catalog: recommendation %s: clause sets both block and question", rec.ID)
			case tc.Block != "":
				if !blockIDs[tc.Block] {
					return fmt.Errorf("catalog: recommendation %s: unknown block %q", rec.ID, tc.Block)
				}
				if len(tc.StatusIn) == 0 {
					return fmt.Errorf("catalog: recommendation %s: block clause without status_in", rec.ID)
				}
			case tc.Question != "":
				if !questions[tc.Question] {
					return fmt.Errorf("catalog: recommendation %s: unknown question %q", rec.ID, tc.Question)
				}
				if tc.Op != OpGTE && tc.Op != OpLTE && tc.Op != OpEQ {
					return fmt.Errorf("catalog: recommendation %s: unsupported operator %q", rec.ID, tc.Op)
				}
			default:
				return fmt.Errorf("catalog: recommendation %s: clause sets neither block nor question", rec.ID)
			}
		}
	}

	return nil
}

// LoadCatalog reads a rule catalog from a YAML file. A missing file returns
// the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
