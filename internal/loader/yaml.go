package loader

import (
	"fmt"
	"strings"

	"github.com/joshharrison/slackline/internal/task"
	"gopkg.in/yaml.v3"
)

type yamlTask struct {
	ID           string   `yaml:"taskID"`
	Predecessors string   `yaml:"predecessorTaskIDs"`
	Best         *float64 `yaml:"bestCaseHours"`
	Expected     *float64 `yaml:"expectedHours"`
	Worst        *float64 `yaml:"worstCaseHours"`
}

type yamlFile struct {
	Tasks []yamlTask `yaml:"tasks"`
}

// LoadYAML parses a YAML document with a top-level tasks list. Pointer
// fields distinguish an absent estimate from a zero one so missing fields
// can be reported by name.
func LoadYAML(data []byte) ([]task.Task, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var tasks []task.Task
	for i, yt := range doc.Tasks {
		if yt.ID == "" {
			return nil, fmt.Errorf("loader: tasks[%d] missing taskID", i)
		}

		var missing []string
		if yt.Best == nil {
			missing = append(missing, "bestCaseHours")
		}
		if yt.Expected == nil {
			missing = append(missing, "expectedHours")
		}
		if yt.Worst == nil {
			missing = append(missing, "worstCaseHours")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("loader: task %s missing fields: %s", yt.ID, strings.Join(missing, ", "))
		}

		tasks = append(tasks, task.Task{
			ID:            yt.ID,
			Predecessors:  yt.Predecessors,
			BestHours:     *yt.Best,
			ExpectedHours: *yt.Expected,
			WorstHours:    *yt.Worst,
		})
	}

	return tasks, nil
}
