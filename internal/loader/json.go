package loader

import (
	"fmt"

	"github.com/joshharrison/slackline/internal/task"
	"github.com/tidwall/gjson"
)

// LoadJSON parses a JSON array of task objects using the same field names
// as the tabular formats. predecessorTaskIDs may be absent, a string, or a
// number (spreadsheet exports sometimes emit bare numeric IDs); everything
// else is required per record.
func LoadJSON(data []byte) ([]task.Task, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("loader: invalid JSON input")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("loader: expected a JSON array of task records")
	}

	var tasks []task.Task
	var err error
	root.ForEach(func(_, item gjson.Result) bool {
		id := item.Get("taskID")
		if !id.Exists() || id.String() == "" {
			err = fmt.Errorf("loader: task record %d missing taskID", len(tasks))
			return false
		}

		t := task.Task{
			ID:           id.String(),
			Predecessors: item.Get("predecessorTaskIDs").String(),
		}

		for _, field := range []struct {
			name string
			dst  *float64
		}{
			{"bestCaseHours", &t.BestHours},
			{"expectedHours", &t.ExpectedHours},
			{"worstCaseHours", &t.WorstHours},
		} {
			v := item.Get(field.name)
			if !v.Exists() {
				err = fmt.Errorf("loader: task %s missing field %s", t.ID, field.name)
				return false
			}
			*field.dst = v.Float()
		}

		tasks = append(tasks, t)
		return true
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
