package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
	"github.com/google/uuid"
)

// FetchShifts returns the shifts for a location inside an inclusive date
// range, with their assignees aggregated in assignment order.
func (r *Repository) FetchShifts(ctx context.Context, locationID string, dr domain.DateRange) ([]domain.Shift, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT
			s.id,
			s.location_id,
			s.date,
			s.start_time,
			s.end_time,
			s.shift_type,
			s.status,
			s.created_at,
			s.version,
			sa.employee_id
		FROM shifts s
		LEFT JOIN shift_assignees sa ON s.id = sa.shift_id
		WHERE s.location_id = $1 AND s.date >= $2 AND s.date <= $3
		ORDER BY s.date, s.start_time, s.id, sa.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, locationID, dr.Start, dr.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftsMap := make(map[string]*domain.Shift)
	order := make([]string, 0)

	for rows.Next() {
		var row struct {
			ID         string
			LocationID string
			Date       string
			StartTime  string
			EndTime    string
			ShiftType  string
			Status     string
			CreatedAt  sql.NullTime
			Version    int32

			EmployeeID sql.NullInt64
		}

		dst := []any{
			&row.ID,
			&row.LocationID,
			&row.Date,
			&row.StartTime,
			&row.EndTime,
			&row.ShiftType,
			&row.Status,
			&row.CreatedAt,
			&row.Version,
			&row.EmployeeID,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		shift, exists := shiftsMap[row.ID]
		if !exists {
			shift = &domain.Shift{
				ID:                  row.ID,
				LocationID:          row.LocationID,
				Date:                row.Date,
				StartTime:           row.StartTime,
				EndTime:             row.EndTime,
				ShiftType:           row.ShiftType,
				AssignedEmployeeIDs: make([]int64, 0),
				Status:              domain.ShiftStatus(row.Status),
				CreatedAt:           row.CreatedAt.Time,
				Version:             row.Version,
			}
			shiftsMap[row.ID] = shift
			order = append(order, row.ID)
		}

		// A NULL employee id means the shift is open.
		if !row.EmployeeID.Valid {
			continue
		}
		shift.AssignedEmployeeIDs = append(shift.AssignedEmployeeIDs, row.EmployeeID.Int64)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	shifts := make([]domain.Shift, 0, len(order))
	for _, id := range order {
		shifts = append(shifts, *shiftsMap[id])
	}

	return shifts, nil
}

// CreateShift inserts a shift with its assignees in one transaction and
// computes advisory overlap warnings against the rest of that day.
func (r *Repository) CreateShift(ctx context.Context, in schedule.CreateShiftInput) (*schedule.CreateShiftResult, error) {
	ctx, cancel := r.txCtx(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	shift := domain.Shift{
		ID:                  uuid.New().String(),
		LocationID:          in.LocationID,
		Date:                in.Date,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		ShiftType:           in.ShiftType,
		AssignedEmployeeIDs: in.EmployeeIDs,
		Status:              domain.ShiftScheduled,
	}

	if err := insertShiftTx(ctx, tx, &shift); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	warnings, err := r.overlapWarnings(ctx, &shift)
	if err != nil {
		// The shift is committed; warnings are advisory only.
		warnings = nil
	}

	return &schedule.CreateShiftResult{Shift: shift, Warnings: warnings}, nil
}

func insertShiftTx(ctx context.Context, tx *sql.Tx, shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (id, location_id, date, start_time, end_time, shift_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, version
	`
	params := []any{shift.ID, shift.LocationID, shift.Date, shift.StartTime, shift.EndTime, shift.ShiftType, shift.Status}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	for position, employeeID := range shift.AssignedEmployeeIDs {
		query = `
			INSERT INTO shift_assignees (shift_id, employee_id, position)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.ExecContext(ctx, query, shift.ID, employeeID, position); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) overlapWarnings(ctx context.Context, shift *domain.Shift) ([]string, error) {
	day := domain.DateRange{Start: shift.Date, End: shift.Date}
	sameDay, err := r.FetchShifts(ctx, shift.LocationID, day)
	if err != nil {
		return nil, err
	}

	warnings := make([]string, 0)
	for _, conflict := range schedule.DetectConflicts(sameDay) {
		if conflict.ShiftIDA == shift.ID || conflict.ShiftIDB == shift.ID {
			warnings = append(warnings, conflict.Description)
		}
	}
	return warnings, nil
}

func (r *Repository) UpdateShift(ctx context.Context, shiftID, startTime, endTime string) (*domain.Shift, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE shifts
		SET
			start_time = $1,
			end_time = $2,
			version = version + 1
		WHERE id = $3
		RETURNING version
	`
	var version int32
	if err := r.dbpool.QueryRowContext(ctx, query, startTime, endTime, shiftID).Scan(&version); err != nil {
		return nil, err
	}

	return r.GetShiftByID(ctx, shiftID)
}

// MoveShiftToDate atomically reassigns a shift's date and employee. The moved
// shift receives a fresh identifier; the caller gets both the retired id and
// the replacement record.
func (r *Repository) MoveShiftToDate(ctx context.Context, shiftID, newDate string, employeeID int64) (*schedule.MoveResult, error) {
	ctx, cancel := r.txCtx(ctx)
	defer cancel()

	old, err := r.GetShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if old.Status.Terminal() {
		return nil, fmt.Errorf("shift %s is %s and can no longer be moved", shiftID, old.Status)
	}

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	replacement := domain.Shift{
		ID:                  uuid.New().String(),
		LocationID:          old.LocationID,
		Date:                newDate,
		StartTime:           old.StartTime,
		EndTime:             old.EndTime,
		ShiftType:           old.ShiftType,
		AssignedEmployeeIDs: []int64{employeeID},
		Status:              domain.ShiftScheduled,
	}

	if err := insertShiftTx(ctx, tx, &replacement); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts WHERE id = $1`, shiftID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &schedule.MoveResult{OldShiftID: shiftID, NewShift: replacement}, nil
}

func (r *Repository) DeleteShift(ctx context.Context, shiftID string) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, `DELETE FROM shifts WHERE id = $1`, shiftID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repository) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT location_id, date, start_time, end_time, shift_type, status, created_at, version
		FROM shifts WHERE id = $1
	`

	shift := &domain.Shift{
		ID:                  shiftID,
		AssignedEmployeeIDs: make([]int64, 0),
	}
	dst := []any{&shift.LocationID, &shift.Date, &shift.StartTime, &shift.EndTime, &shift.ShiftType, &shift.Status, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, shiftID).Scan(dst...); err != nil {
		return nil, err
	}

	rows, err := r.dbpool.QueryContext(ctx, `
		SELECT employee_id FROM shift_assignees WHERE shift_id = $1 ORDER BY position
	`, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID int64
		if err := rows.Scan(&employeeID); err != nil {
			return nil, err
		}
		shift.AssignedEmployeeIDs = append(shift.AssignedEmployeeIDs, employeeID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shift, nil
}

// UpdateShiftStatus marks a shift completed, missed or cancelled. Shifts in a
// terminal status cannot transition again.
func (r *Repository) UpdateShiftStatus(ctx context.Context, shiftID string, status domain.ShiftStatus) (*domain.Shift, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE shifts
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING version
	`
	var version int32
	if err := r.dbpool.QueryRowContext(ctx, query, status, shiftID, domain.ShiftScheduled).Scan(&version); err != nil {
		return nil, err
	}

	return r.GetShiftByID(ctx, shiftID)
}
