package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTaskSet is returned when Solve is given a graph with no tasks.
var ErrEmptyTaskSet = errors.New("schedule: empty task set")

// CycleError reports that the precedence graph contains a dependency cycle
// and names the tasks on it. No schedule exists for cyclic input.
type CycleError struct {
	Tasks []string // cycle path in dependency order
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("schedule: dependency cycle detected: %s", strings.Join(e.Tasks, " -> "))
}
