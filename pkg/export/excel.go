// Package export renders a generated roster.Result as a spreadsheet: one
// row per nurse, one column per day, with the score breakdown on a second
// sheet.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/ward-roster/pkg/core/roster"
)

const rosterSheet = "Roster"
const scoreSheet = "Score"

// ToXLSX renders res as a workbook and writes it to path.
func ToXLSX(res roster.Result, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet(rosterSheet); err != nil {
		return fmt.Errorf("failed to create roster sheet: %w", err)
	}
	if err := writeRosterSheet(f, res); err != nil {
		return err
	}

	if _, err := f.NewSheet(scoreSheet); err != nil {
		return fmt.Errorf("failed to create score sheet: %w", err)
	}
	writeScoreSheet(f, res.Score)

	f.SetActiveSheet(0)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}

func writeRosterSheet(f *excelize.File, res roster.Result) error {
	names := make([]string, 0, len(res.Matrix))
	for name := range res.Matrix {
		names = append(names, name)
	}
	sort.Strings(names)

	headerCell, _ := excelize.CoordinatesToCellName(1, 1)
	_ = f.SetCellValue(rosterSheet, headerCell, "Nurse")
	for d := 1; d <= res.LastDay; d++ {
		cell, _ := excelize.CoordinatesToCellName(d+1, 1)
		_ = f.SetCellValue(rosterSheet, cell, d)
	}

	for rowIdx, name := range names {
		nameCell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		_ = f.SetCellValue(rosterSheet, nameCell, name)

		row := res.Matrix[name]
		for d := 1; d <= res.LastDay; d++ {
			cell, err := excelize.CoordinatesToCellName(d+1, rowIdx+2)
			if err != nil {
				return err
			}
			_ = f.SetCellValue(rosterSheet, cell, string(row[d]))
		}
	}
	return nil
}

func writeScoreSheet(f *excelize.File, sc roster.Score) {
	rows := [][2]any{
		{"Holes", sc.Holes},
		{"OffDiff", sc.OffDiff},
		{"Singles", sc.Singles},
		{"Longs", sc.Longs},
		{"MinOffViolations", sc.MinOffViolations},
		{"MaxNViolations", sc.MaxNViolations},
		{"Total", sc.Total},
	}
	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(scoreSheet, labelCell, r[0])
		_ = f.SetCellValue(scoreSheet, valueCell, r[1])
	}
}

// EnsureDir creates the parent directory of path if it doesn't exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
