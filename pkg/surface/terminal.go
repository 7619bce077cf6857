package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hirescope/hirescope/pkg/scoring"
)

// TerminalRenderer renders a Diagnosis as colored terminal output.
// Names, when set, maps block ids to display names.
type TerminalRenderer struct {
	Names map[string]string
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func statusColor(s scoring.Status) string {
	if noColor() {
		return ""
	}
	switch s {
	case scoring.StatusGreen:
		return colorGreen
	case scoring.StatusYellow:
		return colorYellow
	case scoring.StatusRed:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) blockName(id string) string {
	if name, ok := r.Names[id]; ok {
		return name
	}
	return id
}

func (r *TerminalRenderer) Render(w io.Writer, d *scoring.Diagnosis) error {
	oc := statusColor(d.OverallStatus)

	header := fmt.Sprintf("Hirescope: %s — %s, confidence %d%%",
		d.Company, colored(strings.ToUpper(string(d.OverallStatus)), oc), d.ConfidenceScore)
	fmt.Fprintf(w, "%s\n\n", bold(header))

	fmt.Fprintln(w, "Blocks:")
	for _, id := range sortedBlockIDs(d) {
		status := d.BlockStatuses[id]
		sc := statusColor(status)
		if avg, ok := d.BlockScores[id]; ok {
			fmt.Fprintf(w, "  %-8s %s  %.2f  %s\n",
				colored(strings.ToUpper(string(status)), sc), id, avg, dim(r.blockName(id)))
		} else {
			fmt.Fprintf(w, "  %-8s %s  %s  %s\n",
				"GRAY", id, "n/a", dim(r.blockName(id)))
		}
	}
	fmt.Fprintln(w)

	if len(d.GateFailures) > 0 {
		fmt.Fprintln(w, "Gates:")
		for _, g := range d.GateFailures {
			fmt.Fprintf(w, "  %s %s — %s (%s)\n",
				colored("●", colorRed), bold(g.Name), g.Block, g.Gate)
		}
		fmt.Fprintln(w)
	}

	if len(d.Contradictions) > 0 {
		fmt.Fprintln(w, "Contradictions:")
		for _, c := range d.Contradictions {
			fmt.Fprintf(w, "  [%s] %s", c.RuleID, bold(c.Name))
			if c.Severity == scoring.SeverityForceRed {
				fmt.Fprintf(w, " %s", colored("(forces red)", colorRed))
			}
			fmt.Fprintln(w)
			if c.Diagnosis != "" {
				for _, line := range wrapText(c.Diagnosis, 70) {
					fmt.Fprintf(w, "    %s\n", dim(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	if len(d.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range d.Recommendations {
			fmt.Fprintf(w, "  • %s %s\n", dim(rec.ID), rec.Name)
			for _, qw := range rec.QuickWins {
				fmt.Fprintf(w, "    %s\n", dim(fmt.Sprintf("- %s (%s, %s)", qw.Text, qw.Owner, qw.Effort)))
			}
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No recommendations triggered.")
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
