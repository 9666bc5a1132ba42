package loader

import (
	"fmt"

	"github.com/joshharrison/slackline/internal/task"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX parses task records from the first sheet of an Excel workbook.
// The first row is the header row and must contain all required columns.
func LoadXLSX(path string) ([]task.Task, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	return fromRows(rows)
}
