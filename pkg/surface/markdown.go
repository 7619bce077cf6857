package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/hirescope/hirescope/pkg/scoring"
)

// MarkdownRenderer produces a client-facing audit report in markdown.
// Names, when set, maps block ids to display names.
type MarkdownRenderer struct {
	Names map[string]string
}

func (r *MarkdownRenderer) blockName(id string) string {
	if name, ok := r.Names[id]; ok {
		return name
	}
	return id
}

func statusLabel(s scoring.Status) string {
	switch s {
	case scoring.StatusGreen:
		return "🟢 Green"
	case scoring.StatusYellow:
		return "🟡 Yellow"
	case scoring.StatusRed:
		return "🔴 Red"
	default:
		return "⚪ No data"
	}
}

func (r *MarkdownRenderer) Render(w io.Writer, d *scoring.Diagnosis) error {
	fmt.Fprintf(w, "# Hiring Practice Audit — %s\n\n", d.Company)

	fmt.Fprintf(w, "**Overall status:** %s  \n", statusLabel(d.OverallStatus))
	fmt.Fprintf(w, "**Confidence:** %d%%", d.ConfidenceScore)
	if d.DTC < 1.0 {
		fmt.Fprintf(w, " (data trust ×%.2f)", d.DTC)
	}
	fmt.Fprintf(w, "\n\n")

	fmt.Fprintln(w, "## Block scores")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Block | Score | Status |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, id := range sortedBlockIDs(d) {
		score := "—"
		if avg, ok := d.BlockScores[id]; ok {
			score = fmt.Sprintf("%.2f", avg)
		}
		fmt.Fprintf(w, "| %s | %s | %s |\n", r.blockName(id), score, statusLabel(d.BlockStatuses[id]))
	}
	fmt.Fprintln(w)

	if len(d.GateFailures) > 0 {
		fmt.Fprintln(w, "## Critical failures")
		fmt.Fprintln(w)
		for _, g := range d.GateFailures {
			fmt.Fprintf(w, "- **%s** — %s is in a failing state (%s)\n", g.Name, r.blockName(g.Block), g.Gate)
		}
		fmt.Fprintln(w)
	}

	if len(d.Contradictions) > 0 {
		fmt.Fprintln(w, "## Contradictions")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Answers that should agree but do not. These reduce confidence in the self-reported picture.")
		fmt.Fprintln(w)
		for _, c := range d.Contradictions {
			fmt.Fprintf(w, "- **%s** (`%s`)", c.Name, c.RuleID)
			if c.Severity == scoring.SeverityForceRed {
				fmt.Fprintf(w, " — forces overall red")
			}
			fmt.Fprintln(w)
			if c.Diagnosis != "" {
				fmt.Fprintf(w, "  %s\n", c.Diagnosis)
			}
		}
		fmt.Fprintln(w)
	}

	if len(d.Recommendations) > 0 {
		fmt.Fprintln(w, "## Recommendations")
		fmt.Fprintln(w)
		for _, rec := range d.Recommendations {
			fmt.Fprintf(w, "### %s\n\n", rec.Name)
			if len(rec.QuickWins) > 0 {
				fmt.Fprintln(w, "Quick wins:")
				fmt.Fprintln(w)
				for _, qw := range rec.QuickWins {
					fmt.Fprintf(w, "- %s *(owner: %s, effort: %s)*\n", qw.Text, qw.Owner, qw.Effort)
				}
				fmt.Fprintln(w)
			}
		}
	} else {
		fmt.Fprintln(w, "## Recommendations")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No remediation recommendations triggered.")
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "---\n_Audit %s_\n", strings.TrimSpace(d.AuditID))
	return nil
}
