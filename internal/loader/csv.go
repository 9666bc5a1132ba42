package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/joshharrison/slackline/internal/task"
)

// LoadCSV parses task records from CSV input. The first record is the
// header row and must contain all required columns.
func LoadCSV(r io.Reader) ([]task.Task, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	return fromRows(rows)
}
