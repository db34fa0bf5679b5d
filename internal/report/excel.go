// Package report renders projected schedules into xlsx workbooks for the
// admin UI's export button.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

const (
	scheduleSheet = "Schedule"
	summarySheet  = "Summary"
)

// BuildScheduleWorkbook renders a projected schedule view plus its derived
// conflicts and statistics. The shifts are written in the view's order.
func BuildScheduleWorkbook(location *domain.Location, dr domain.DateRange, shifts []domain.Shift, conflicts []domain.Conflict, stats domain.Stats) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Start", "End", "Type", "Status", "Assigned employees"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(scheduleSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, shift := range shifts {
		row := i + 2
		values := []any{
			shift.Date,
			shift.StartTime,
			shift.EndTime,
			shift.ShiftType,
			string(shift.Status),
			joinEmployeeIDs(shift.AssignedEmployeeIDs),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(scheduleSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Location", location.Name},
		{"Range", fmt.Sprintf("%s to %s", dr.Start, dr.End)},
		{"Total shifts", stats.TotalShifts},
		{"Night shifts", stats.NightShifts},
		{"Average hours", stats.AvgHours},
		{"Balance score", stats.BalanceScore},
		{"Conflicts", len(conflicts)},
	}
	for i, pair := range summary {
		rowRef := strconv.Itoa(i + 1)
		if err := f.SetCellValue(summarySheet, "A"+rowRef, pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, "B"+rowRef, pair[1]); err != nil {
			return nil, err
		}
	}

	for i, conflict := range conflicts {
		rowRef := strconv.Itoa(len(summary) + 2 + i)
		if err := f.SetCellValue(summarySheet, "A"+rowRef, conflict.Type); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, "B"+rowRef, conflict.Description); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func joinEmployeeIDs(ids []int64) string {
	if len(ids) == 0 {
		return "open"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
