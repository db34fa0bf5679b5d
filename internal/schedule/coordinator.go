package schedule

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// Coordinator orchestrates mutating shift operations against the external
// backend. Every operation is two-phase: validate locally, then commit
// remotely; the input snapshot is never mutated, a new snapshot is returned
// only after the backend call succeeded. On backend failure the returned
// snapshot is the input snapshot unchanged.
type Coordinator struct {
	svc  ShiftService
	rule domain.ComplianceRule
}

func NewCoordinator(svc ShiftService, rule domain.ComplianceRule) *Coordinator {
	return &Coordinator{
		svc:  svc,
		rule: rule,
	}
}

func (c *Coordinator) Rule() domain.ComplianceRule {
	return c.rule
}

// LoadShifts fetches the canonical shift set for a location and date range.
func (c *Coordinator) LoadShifts(ctx context.Context, locationID string, dr domain.DateRange) ([]domain.Shift, error) {
	return c.svc.FetchShifts(ctx, locationID, dr)
}

// AddShift validates the requested window, creates the shift on the backend
// and appends the backend-returned record to the snapshot.
func (c *Coordinator) AddShift(ctx context.Context, shifts []domain.Shift, in CreateShiftInput) ([]domain.Shift, *CreateShiftResult, error) {
	if err := ValidateWindow(in.StartTime, in.EndTime, c.rule); err != nil {
		return shifts, nil, err
	}

	res, err := c.svc.CreateShift(ctx, in)
	if err != nil {
		return shifts, nil, err
	}

	next := slices.Clone(shifts)
	next = append(next, res.Shift)
	return next, res, nil
}

// UpdateShiftWindow resizes a shift's time window after compliance checks.
func (c *Coordinator) UpdateShiftWindow(ctx context.Context, shifts []domain.Shift, shiftID, startTime, endTime string) ([]domain.Shift, *domain.Shift, error) {
	if err := ValidateWindow(startTime, endTime, c.rule); err != nil {
		return shifts, nil, err
	}

	updated, err := c.svc.UpdateShift(ctx, shiftID, startTime, endTime)
	if err != nil {
		return shifts, nil, err
	}

	next := replaceShift(shifts, shiftID, *updated)
	return next, updated, nil
}

// MoveShift reassigns a shift to a new date and employee. The backend may
// issue a new identifier for the moved shift, so the old record is removed
// and the backend-returned replacement inserted.
func (c *Coordinator) MoveShift(ctx context.Context, shifts []domain.Shift, shiftID, newDate string, employeeID int64) ([]domain.Shift, *domain.Shift, error) {
	res, err := c.svc.MoveShiftToDate(ctx, shiftID, newDate, employeeID)
	if err != nil {
		return shifts, nil, err
	}

	next := replaceShift(shifts, res.OldShiftID, res.NewShift)
	return next, &res.NewShift, nil
}

// DeleteShift removes a shift on the backend, then locally.
func (c *Coordinator) DeleteShift(ctx context.Context, shifts []domain.Shift, shiftID string) ([]domain.Shift, error) {
	if err := c.svc.DeleteShift(ctx, shiftID); err != nil {
		return shifts, err
	}

	return removeShift(shifts, shiftID), nil
}

// SwapShifts exchanges the date assignments of two shifts: each shift's sole
// assigned employee takes the other shift's date. The two underlying moves
// are issued concurrently; the swap is complete only when both succeed.
//
// If exactly one move succeeds the coordinator returns a *PartialSwapError
// naming the applied half. The applied half is reflected in the returned
// snapshot (the backend already committed it), the failed half stays
// untouched. No compensating move is attempted, the backend is the source of
// truth and the caller must re-fetch and reconcile.
func (c *Coordinator) SwapShifts(ctx context.Context, shifts []domain.Shift, shiftAID, shiftBID string) ([]domain.Shift, error) {
	shiftA := findShift(shifts, shiftAID)
	if shiftA == nil {
		return shifts, fmt.Errorf("shift %s is not in the current schedule", shiftAID)
	}
	shiftB := findShift(shifts, shiftBID)
	if shiftB == nil {
		return shifts, fmt.Errorf("shift %s is not in the current schedule", shiftBID)
	}

	// Only the first assignee takes part in the swap, matching the
	// single-employee-per-slot assumption of the move operation.
	if len(shiftA.AssignedEmployeeIDs) == 0 {
		return shifts, newError(NoEmployeeAssigned, "shift %s has no assigned employee", shiftAID)
	}
	if len(shiftB.AssignedEmployeeIDs) == 0 {
		return shifts, newError(NoEmployeeAssigned, "shift %s has no assigned employee", shiftBID)
	}
	employeeA := shiftA.AssignedEmployeeIDs[0]
	employeeB := shiftB.AssignedEmployeeIDs[0]

	var (
		wg   sync.WaitGroup
		resA *MoveResult
		errA error
		resB *MoveResult
		errB error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		resA, errA = c.svc.MoveShiftToDate(ctx, shiftA.ID, shiftB.Date, employeeA)
	}()
	go func() {
		defer wg.Done()
		resB, errB = c.svc.MoveShiftToDate(ctx, shiftB.ID, shiftA.Date, employeeB)
	}()
	wg.Wait()

	switch {
	case errA == nil && errB == nil:
		next := replaceShift(shifts, resA.OldShiftID, resA.NewShift)
		next = replaceShift(next, resB.OldShiftID, resB.NewShift)
		return next, nil

	case errA == nil && errB != nil:
		next := replaceShift(shifts, resA.OldShiftID, resA.NewShift)
		return next, &PartialSwapError{
			AppliedShiftID: shiftA.ID,
			AppliedShift:   &resA.NewShift,
			FailedShiftID:  shiftB.ID,
			Cause:          errB,
		}

	case errA != nil && errB == nil:
		next := replaceShift(shifts, resB.OldShiftID, resB.NewShift)
		return next, &PartialSwapError{
			AppliedShiftID: shiftB.ID,
			AppliedShift:   &resB.NewShift,
			FailedShiftID:  shiftA.ID,
			Cause:          errA,
		}

	default:
		// Both halves failed, nothing applied.
		return shifts, errA
	}
}

func findShift(shifts []domain.Shift, id string) *domain.Shift {
	for i := range shifts {
		if shifts[i].ID == id {
			return &shifts[i]
		}
	}
	return nil
}

func removeShift(shifts []domain.Shift, id string) []domain.Shift {
	next := make([]domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if shift.ID != id {
			next = append(next, shift)
		}
	}
	return next
}

func replaceShift(shifts []domain.Shift, oldID string, replacement domain.Shift) []domain.Shift {
	next := removeShift(shifts, oldID)
	return append(next, replacement)
}
