package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshharrison/slackline/internal/analyze"
	"github.com/joshharrison/slackline/internal/graph"
)

func makeReport() *analyze.Report {
	return &analyze.Report{
		Makespan: 7,
		Rows: []analyze.Row{
			{ID: "a", Start: 0, End: 2, Duration: 2, BestHours: 1, ExpectedHours: 2, WorstHours: 3, Float: 5},
			{ID: "b", Start: 2, End: 6, Duration: 4, BestHours: 2, ExpectedHours: 4, WorstHours: 6, Float: 1},
			{ID: "c", Start: 6, End: 7, Duration: 1, BestHours: 1, ExpectedHours: 1, WorstHours: 1, Float: 0},
		},
	}
}

func TestPrintSchedule(t *testing.T) {
	rpt := New(makeReport(), nil, 0)

	var buf bytes.Buffer
	rpt.PrintSchedule(&buf)

	output := buf.String()

	if !strings.Contains(output, "Slackline Schedule") {
		t.Error("expected output to contain the header")
	}
	if !strings.Contains(output, "7.00") {
		t.Error("expected output to contain the makespan")
	}
	for _, id := range []string{"a", "b", "c"} {
		if !strings.Contains(output, id) {
			t.Errorf("expected output to contain task %s", id)
		}
	}
	if !strings.Contains(output, "⚡") {
		t.Error("expected output to contain the critical marker")
	}
	if strings.Contains(output, "unresolved") {
		t.Error("expected no warnings section without warnings")
	}
}

func TestPrintSchedule_Warnings(t *testing.T) {
	warnings := []graph.UnresolvedRef{{TaskID: "a", Ref: "z"}}
	rpt := New(makeReport(), warnings, 0)

	var buf bytes.Buffer
	rpt.PrintSchedule(&buf)

	output := buf.String()
	if !strings.Contains(output, "unresolved predecessor") {
		t.Error("expected warnings section")
	}
	if !strings.Contains(output, `"z"`) || !strings.Contains(output, `"a"`) {
		t.Error("warning should name both the task and the reference")
	}
}

func TestSummary(t *testing.T) {
	rpt := New(makeReport(), nil, 0)
	if got := rpt.Summary(); got != "Total Duration: 7.00 hours" {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestJSON(t *testing.T) {
	warnings := []graph.UnresolvedRef{{TaskID: "b", Ref: "ghost"}}
	rpt := New(makeReport(), warnings, 0)

	data, err := rpt.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out struct {
		Status   string  `json:"status"`
		Makespan float64 `json:"makespan"`
		Tasks    []struct {
			ID       string  `json:"taskID"`
			Start    float64 `json:"startTime"`
			End      float64 `json:"endTime"`
			Duration float64 `json:"pertDuration"`
			Float    float64 `json:"floatHours"`
			Critical bool    `json:"critical"`
		} `json:"tasks"`
		Warnings []struct {
			TaskID string `json:"taskID"`
			Ref    string `json:"unresolvedRef"`
		} `json:"warnings"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if out.Status != "Optimal" {
		t.Errorf("expected status Optimal, got %q", out.Status)
	}
	if out.Makespan != 7 {
		t.Errorf("expected makespan 7, got %g", out.Makespan)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(out.Tasks))
	}
	if !out.Tasks[2].Critical {
		t.Error("expected task c to be marked critical")
	}
	if out.Tasks[0].Critical {
		t.Error("expected task a to not be critical")
	}
	if len(out.Warnings) != 1 || out.Warnings[0].Ref != "ghost" {
		t.Errorf("unexpected warnings: %+v", out.Warnings)
	}
}
