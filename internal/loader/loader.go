// Package loader reads task records from tabular and structured files.
// Every format produces the same record contract: taskID,
// predecessorTaskIDs (raw reference text), bestCaseHours, expectedHours,
// worstCaseHours. Field presence is validated here, before the scheduling
// core runs; missing fields fail with an error naming them.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joshharrison/slackline/internal/task"
)

// Format identifies a supported input file format.
type Format string

const (
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// requiredColumns are the tabular columns every CSV/XLSX input must carry.
var requiredColumns = []string{
	"taskID",
	"predecessorTaskIDs",
	"bestCaseHours",
	"expectedHours",
	"worstCaseHours",
}

// Load reads task records from path, detecting the format from the file
// extension when format is FormatAuto.
func Load(path string, format Format) ([]task.Task, error) {
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			format = FormatCSV
		case ".xlsx", ".xlsm":
			format = FormatXLSX
		case ".json":
			format = FormatJSON
		case ".yaml", ".yml":
			format = FormatYAML
		case ".hcl":
			format = FormatHCL
		default:
			return nil, fmt.Errorf("loader: cannot detect format of %s (specify one explicitly)", path)
		}
	}

	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return LoadCSV(f)
	case FormatXLSX:
		return LoadXLSX(path)
	case FormatJSON:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return LoadJSON(data)
	case FormatYAML:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return LoadYAML(data)
	case FormatHCL:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return LoadHCL(path, data)
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", format)
	}
}

// fromRows converts a header row plus data rows into task records. Shared
// by the CSV and XLSX loaders. Rows with a blank taskID cell are skipped.
func fromRows(rows [][]string) ([]task.Task, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("loader: input has no header row")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("loader: missing required columns: %s", strings.Join(missing, ", "))
	}

	cell := func(row []string, col string) string {
		// XLSX rows may be shorter than the header when trailing cells
		// are empty.
		if i := idx[col]; i < len(row) {
			return row[i]
		}
		return ""
	}

	var tasks []task.Task
	for rowNum, row := range rows[1:] {
		id := strings.TrimSpace(cell(row, "taskID"))
		if id == "" {
			continue
		}

		t := task.Task{ID: id, Predecessors: cell(row, "predecessorTaskIDs")}

		var err error
		if t.BestHours, err = parseHours(id, "bestCaseHours", cell(row, "bestCaseHours")); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+2, err)
		}
		if t.ExpectedHours, err = parseHours(id, "expectedHours", cell(row, "expectedHours")); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+2, err)
		}
		if t.WorstHours, err = parseHours(id, "worstCaseHours", cell(row, "worstCaseHours")); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+2, err)
		}

		tasks = append(tasks, t)
	}

	return tasks, nil
}

func parseHours(taskID, field, cellText string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cellText), 64)
	if err != nil {
		return 0, fmt.Errorf("task %s: invalid %s value %q", taskID, field, cellText)
	}
	return v, nil
}
