package schedule

// TaskTimes holds the solved timing for a single task, in hours from
// project start.
type TaskTimes struct {
	ID       string
	Start    float64
	End      float64 // Start + Duration
	Duration float64
}

// Schedule is the earliest-start assignment for the whole task set.
type Schedule struct {
	Tasks    map[string]*TaskTimes
	Order    []string // topological order the solver processed
	Makespan float64  // max End over all tasks
}
