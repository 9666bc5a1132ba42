package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joshharrison/slackline/internal/task"
)

type hclTask struct {
	ID           string  `hcl:"id,label"`
	Best         float64 `hcl:"best_case_hours"`
	Expected     float64 `hcl:"expected_hours"`
	Worst        float64 `hcl:"worst_case_hours"`
	Predecessors *string `hcl:"predecessors"`
}

type hclFile struct {
	Tasks []hclTask `hcl:"task,block"`
}

// LoadHCL parses labeled task blocks from HCL source:
//
//	task "design" {
//	  best_case_hours     = 4
//	  expected_hours      = 8
//	  worst_case_hours    = 16
//	  predecessors        = "kickoff, estimate"
//	}
//
// Missing required attributes surface through gohcl diagnostics, which
// name the attribute and its source location. filename is used in
// diagnostics only.
func LoadHCL(filename string, src []byte) ([]task.Task, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl: %s", diags.Error())
	}

	var doc hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl: %s", diags.Error())
	}

	var tasks []task.Task
	for _, ht := range doc.Tasks {
		t := task.Task{
			ID:            ht.ID,
			BestHours:     ht.Best,
			ExpectedHours: ht.Expected,
			WorstHours:    ht.Worst,
		}
		if ht.Predecessors != nil {
			t.Predecessors = *ht.Predecessors
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
