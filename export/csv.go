package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/classmix/regroup/roster"
	"github.com/classmix/regroup/types"
)

// WriteAssignmentsCSV writes the member-by-round assignment matrix as CSV:
// one row per item, one column per round, cells holding the item's group
// number (1-based).
//
// Parameters:
//   - w: Destination writer
//   - schedule: Ordered round sequence to render
//   - ros: Display names for item indices (nil falls back to positional names)
//
// Returns:
//   - error: ErrEmptySchedule or a write error
func WriteAssignmentsCSV(w io.Writer, schedule types.Schedule, ros *roster.Roster) error {
	if len(schedule) == 0 {
		return ErrEmptySchedule
	}

	if ros == nil {
		ros = roster.New(nil)
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(schedule)+1)
	header = append(header, "Member")
	for round := range schedule {
		header = append(header, "Round "+strconv.Itoa(round+1))
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	itemCount := 0
	for _, g := range schedule[0] {
		itemCount += len(g)
	}

	for item := 0; item < itemCount; item++ {
		row := make([]string, 0, len(schedule)+1)
		row = append(row, ros.Name(item))

		for _, round := range schedule {
			if gi := round.GroupOf(item); gi >= 0 {
				row = append(row, strconv.Itoa(gi+1))
			} else {
				row = append(row, "-")
			}
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteGroupsCSV writes the per-group composition table as CSV: one row
// per (round, group) with comma-joined member names and the group size.
//
// Parameters:
//   - w: Destination writer
//   - schedule: Ordered round sequence to render
//   - ros: Display names for item indices (nil falls back to positional names)
//
// Returns:
//   - error: ErrEmptySchedule or a write error
func WriteGroupsCSV(w io.Writer, schedule types.Schedule, ros *roster.Roster) error {
	if len(schedule) == 0 {
		return ErrEmptySchedule
	}

	if ros == nil {
		ros = roster.New(nil)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Round", "Group", "Members", "Size"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for ri, round := range schedule {
		for gi, group := range round {
			row := []string{
				strconv.Itoa(ri + 1),
				strconv.Itoa(gi + 1),
				strings.Join(ros.Names(group), ", "),
				strconv.Itoa(len(group)),
			}

			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
