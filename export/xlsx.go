// Package export renders a generated schedule into presentation artifacts:
// an Excel workbook and CSV tables. It consumes the core's output
// read-only and performs no generation of its own.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/classmix/regroup/roster"
	"github.com/classmix/regroup/types"
)

// Sheet names in the generated workbook.
const (
	SheetAssignments = "Assignments"
	SheetGroups      = "Groups"
	SheetSummary     = "Pair Summary"
)

// ErrEmptySchedule is returned when asked to export a schedule with no
// rounds.
var ErrEmptySchedule = errors.New("schedule has no rounds")

// Workbook builds an Excel workbook for a generated schedule.
//
// Sheets:
//   - Assignments: one row per item, one column per round, cells holding
//     the item's group number for that round
//   - Groups: one row per (round, group) with the member names and size
//   - Pair Summary: aggregate statistics plus per-pair repeat details
//
// Parameters:
//   - schedule: Ordered round sequence to render
//   - stats: Statistics for the schedule (see regroup.ComputeStatistics)
//   - ros: Display names for item indices (nil falls back to positional names)
//
// Returns:
//   - *excelize.File: In-memory workbook; the caller owns closing/saving it
//   - error: ErrEmptySchedule or a sheet construction error
func Workbook(schedule types.Schedule, stats types.Stats, ros *roster.Roster) (*excelize.File, error) {
	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}

	if ros == nil {
		ros = roster.New(nil)
	}

	f := excelize.NewFile()

	if err := writeAssignmentsSheet(f, schedule, ros); err != nil {
		_ = f.Close()

		return nil, err
	}

	if err := writeGroupsSheet(f, schedule, ros); err != nil {
		_ = f.Close()

		return nil, err
	}

	if err := writeSummarySheet(f, stats, ros); err != nil {
		_ = f.Close()

		return nil, err
	}

	// Drop the default sheet created by excelize.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	f.SetActiveSheet(0)

	return f, nil
}

// WriteWorkbook builds the workbook and streams it to w.
//
// Parameters:
//   - w: Destination writer (HTTP response, file, buffer)
//   - schedule: Ordered round sequence to render
//   - stats: Statistics for the schedule
//   - ros: Display names for item indices
//
// Returns:
//   - error: Workbook construction or write error
func WriteWorkbook(w io.Writer, schedule types.Schedule, stats types.Stats, ros *roster.Roster) error {
	f, err := Workbook(schedule, stats, ros)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeAssignmentsSheet(f *excelize.File, schedule types.Schedule, ros *roster.Roster) error {
	if _, err := f.NewSheet(SheetAssignments); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetAssignments, err)
	}

	header := make([]any, 0, len(schedule)+1)
	header = append(header, "Member")
	for round := range schedule {
		header = append(header, "Round "+strconv.Itoa(round+1))
	}

	if err := setRow(f, SheetAssignments, 1, header); err != nil {
		return err
	}

	itemCount := 0
	for _, g := range schedule[0] {
		itemCount += len(g)
	}

	for item := 0; item < itemCount; item++ {
		row := make([]any, 0, len(schedule)+1)
		row = append(row, ros.Name(item))

		for _, round := range schedule {
			if gi := round.GroupOf(item); gi >= 0 {
				row = append(row, gi+1)
			} else {
				row = append(row, "-")
			}
		}

		if err := setRow(f, SheetAssignments, item+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeGroupsSheet(f *excelize.File, schedule types.Schedule, ros *roster.Roster) error {
	if _, err := f.NewSheet(SheetGroups); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetGroups, err)
	}

	if err := setRow(f, SheetGroups, 1, []any{"Round", "Group", "Members", "Size"}); err != nil {
		return err
	}

	rowIdx := 2

	for ri, round := range schedule {
		for gi, group := range round {
			members := ""
			for i, name := range ros.Names(group) {
				if i > 0 {
					members += ", "
				}
				members += name
			}

			row := []any{ri + 1, gi + 1, members, len(group)}
			if err := setRow(f, SheetGroups, rowIdx, row); err != nil {
				return err
			}

			rowIdx++
		}
	}

	return nil
}

func writeSummarySheet(f *excelize.File, stats types.Stats, ros *roster.Roster) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetSummary, err)
	}

	rows := [][]any{
		{"Total unique pairs", stats.TotalUniquePairs},
		{"Repeated pairs", stats.RepeatedPairs},
		{"Consecutive repeats", stats.ConsecutiveRepeats},
		{"Max repetitions", stats.MaxRepetitions},
		{},
		{"Pair", "Times grouped"},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		if err := setRow(f, SheetSummary, i+1, row); err != nil {
			return err
		}
	}

	detailRow := len(rows) + 1

	for _, p := range stats.RepeatedPairDetails.SortedPairs() {
		label := ros.Name(p.A) + " & " + ros.Name(p.B)

		row := []any{label, stats.RepeatedPairDetails[p]}
		if err := setRow(f, SheetSummary, detailRow, row); err != nil {
			return err
		}

		detailRow++
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set %s row %d: %w", sheet, row, err)
	}

	return nil
}
