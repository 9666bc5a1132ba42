// Package reporter renders an analyzed schedule for terminals and as
// machine-readable JSON. It owns presentation only; all numbers come from
// the analyze package.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshharrison/slackline/internal/analyze"
	"github.com/joshharrison/slackline/internal/graph"
	"github.com/joshharrison/slackline/internal/ui"
)

// Reporter renders a schedule report at a fixed criticality tolerance.
type Reporter struct {
	Report    *analyze.Report
	Warnings  []graph.UnresolvedRef
	Tolerance float64
}

// New creates a Reporter. A non-positive tolerance falls back to
// analyze.DefaultCriticalTolerance.
func New(report *analyze.Report, warnings []graph.UnresolvedRef, tolerance float64) *Reporter {
	if tolerance <= 0 {
		tolerance = analyze.DefaultCriticalTolerance
	}
	return &Reporter{Report: report, Warnings: warnings, Tolerance: tolerance}
}

// PrintSchedule writes the terminal-friendly schedule table: a makespan
// header, start-ordered task rows with float, and any unresolved
// predecessor warnings.
func (r *Reporter) PrintSchedule(w io.Writer) {
	critical := r.Report.CriticalCount(r.Tolerance)

	fmt.Fprintf(w, "%s — %s %s hours — %d tasks, %d critical\n\n",
		ui.BoldCyan("Slackline Schedule"),
		ui.Bold("makespan"), ui.Bold(ui.Hours(r.Report.Makespan)),
		len(r.Report.Rows), critical)

	fmt.Fprintf(w, "    %-14s %10s %10s %10s %10s\n",
		ui.BoldWhite("task"), "start", "end", "duration", "float")

	for _, row := range r.Report.Rows {
		crit := analyze.Critical(row.Float, r.Tolerance)

		floatCell := ui.Hours(row.Float)
		if crit {
			floatCell = ui.BoldYellow(floatCell)
		} else {
			floatCell = ui.Green(floatCell)
		}

		fmt.Fprintf(w, "  %s %-14s %10s %10s %10s %10s\n",
			ui.CriticalMark(crit),
			ui.BoldMagenta(row.ID),
			ui.Hours(row.Start), ui.Hours(row.End), ui.Hours(row.Duration),
			floatCell)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Yellow(fmt.Sprintf("%d unresolved predecessor reference(s):", len(r.Warnings))))
		for _, u := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", ui.Yellow("!"), u.String())
		}
	}
}

// Summary returns the one-line human summary of the solved schedule.
func (r *Reporter) Summary() string {
	return fmt.Sprintf("Total Duration: %s hours", ui.Hours(r.Report.Makespan))
}

// JSON returns the machine-readable report: solve status, makespan, the
// full per-task result rows, and any unresolved-reference warnings.
func (r *Reporter) JSON() ([]byte, error) {
	type warning struct {
		TaskID string `json:"taskID"`
		Ref    string `json:"unresolvedRef"`
	}

	type taskResult struct {
		analyze.Row
		Critical bool `json:"critical"`
	}

	type output struct {
		Status   string       `json:"status"`
		Makespan float64      `json:"makespan"`
		Tasks    []taskResult `json:"tasks"`
		Warnings []warning    `json:"warnings,omitempty"`
	}

	o := output{Status: "Optimal", Makespan: r.Report.Makespan}
	for _, row := range r.Report.Rows {
		o.Tasks = append(o.Tasks, taskResult{
			Row:      row,
			Critical: analyze.Critical(row.Float, r.Tolerance),
		})
	}
	for _, u := range r.Warnings {
		o.Warnings = append(o.Warnings, warning{TaskID: u.TaskID, Ref: u.Ref})
	}

	return json.MarshalIndent(o, "", "  ")
}
