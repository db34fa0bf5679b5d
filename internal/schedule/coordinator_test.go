package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddShiftValidatesBeforeCommit(t *testing.T) {
	svc := newFakeService()
	c := NewCoordinator(svc, testRule())

	shifts := []domain.Shift{shift("a", "2026-03-02", "09:00", "13:00", 1)}
	next, res, err := c.AddShift(context.Background(), shifts, CreateShiftInput{
		LocationID:  "loc-1",
		Date:        "2026-03-03",
		StartTime:   "21:00",
		EndTime:     "23:00",
		ShiftType:   "regular",
		EmployeeIDs: []int64{1},
	})

	require.Error(t, err)
	assert.True(t, IsKind(err, WindowViolation))
	assert.Nil(t, res)
	assert.Equal(t, shifts, next, "snapshot must be unchanged after a validation failure")
	assert.Empty(t, svc.shifts, "no backend call may happen when validation fails")
}

func TestAddShiftAppendsBackendRecord(t *testing.T) {
	svc := newFakeService()
	c := NewCoordinator(svc, testRule())

	shifts := []domain.Shift{shift("a", "2026-03-02", "09:00", "13:00", 1)}
	next, res, err := c.AddShift(context.Background(), shifts, CreateShiftInput{
		LocationID:  "loc-1",
		Date:        "2026-03-03",
		StartTime:   "08:00",
		EndTime:     "16:00",
		ShiftType:   "regular",
		EmployeeIDs: []int64{2},
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, next, 2)
	assert.Len(t, shifts, 1, "input snapshot must not be mutated")
	assert.NotNil(t, findShift(next, res.Shift.ID))
}

func TestAddShiftBackendFailureLeavesStateUnchanged(t *testing.T) {
	svc := newFakeService()
	svc.createErr = errors.New("backend unavailable")
	c := NewCoordinator(svc, testRule())

	shifts := []domain.Shift{shift("a", "2026-03-02", "09:00", "13:00", 1)}
	next, _, err := c.AddShift(context.Background(), shifts, CreateShiftInput{
		LocationID: "loc-1",
		Date:       "2026-03-03",
		StartTime:  "08:00",
		EndTime:    "16:00",
	})

	require.ErrorIs(t, err, svc.createErr)
	assert.Equal(t, shifts, next)
}

func TestMoveShiftReplacesRecordWithNewIdentifier(t *testing.T) {
	original := shift("a", "2026-03-02", "09:00", "13:00", 1)
	svc := newFakeService(original)
	c := NewCoordinator(svc, testRule())

	next, moved, err := c.MoveShift(context.Background(), []domain.Shift{original}, "a", "2026-03-05", 2)

	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.NotEqual(t, "a", moved.ID, "the backend issues a new identifier on move")
	assert.Equal(t, "2026-03-05", moved.Date)
	assert.Equal(t, []int64{2}, moved.AssignedEmployeeIDs)
	assert.Nil(t, findShift(next, "a"))
	assert.NotNil(t, findShift(next, moved.ID))
	assert.Len(t, next, 1)
}

func TestDeleteShift(t *testing.T) {
	original := shift("a", "2026-03-02", "09:00", "13:00", 1)
	svc := newFakeService(original)
	c := NewCoordinator(svc, testRule())

	next, err := c.DeleteShift(context.Background(), []domain.Shift{original}, "a")
	require.NoError(t, err)
	assert.Empty(t, next)

	svc.deleteErr = errors.New("backend unavailable")
	snapshot := []domain.Shift{original}
	next, err = c.DeleteShift(context.Background(), snapshot, "a")
	require.Error(t, err)
	assert.Equal(t, snapshot, next)
}

func TestSwapShiftsExchangesDates(t *testing.T) {
	shiftA := shift("a", "2026-03-02", "09:00", "13:00", 1)
	shiftB := shift("b", "2026-03-04", "14:00", "18:00", 2)
	svc := newFakeService(shiftA, shiftB)
	c := NewCoordinator(svc, testRule())

	next, err := c.SwapShifts(context.Background(), []domain.Shift{shiftA, shiftB}, "a", "b")
	require.NoError(t, err)
	require.Len(t, next, 2)

	byEmployee := make(map[int64]domain.Shift)
	for _, s := range next {
		require.Len(t, s.AssignedEmployeeIDs, 1)
		byEmployee[s.AssignedEmployeeIDs[0]] = s
	}
	assert.Equal(t, "2026-03-04", byEmployee[1].Date, "employee 1 takes shift b's date")
	assert.Equal(t, "2026-03-02", byEmployee[2].Date, "employee 2 takes shift a's date")
	assert.Nil(t, findShift(next, "a"))
	assert.Nil(t, findShift(next, "b"))
}

func TestSwapShiftsRequiresAssignees(t *testing.T) {
	shiftA := shift("a", "2026-03-02", "09:00", "13:00")
	shiftB := shift("b", "2026-03-04", "14:00", "18:00", 2)
	svc := newFakeService(shiftA, shiftB)
	c := NewCoordinator(svc, testRule())

	snapshot := []domain.Shift{shiftA, shiftB}
	next, err := c.SwapShifts(context.Background(), snapshot, "a", "b")

	require.Error(t, err)
	assert.True(t, IsKind(err, NoEmployeeAssigned))
	assert.Equal(t, snapshot, next)
	assert.NotNil(t, svc.shifts["a"], "no move may be issued when validation fails")
	assert.NotNil(t, svc.shifts["b"])
}

func TestSwapShiftsPartialFailure(t *testing.T) {
	shiftA := shift("a", "2026-03-02", "09:00", "13:00", 1)
	shiftB := shift("b", "2026-03-04", "14:00", "18:00", 2)
	svc := newFakeService(shiftA, shiftB)
	svc.moveErr["b"] = errors.New("backend rejected move")
	c := NewCoordinator(svc, testRule())

	next, err := c.SwapShifts(context.Background(), []domain.Shift{shiftA, shiftB}, "a", "b")

	var partial *PartialSwapError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "a", partial.AppliedShiftID)
	assert.Equal(t, "b", partial.FailedShiftID)
	require.NotNil(t, partial.AppliedShift)

	// The applied half is reflected, the failed half untouched.
	require.Len(t, next, 2)
	assert.Nil(t, findShift(next, "a"))
	assert.NotNil(t, findShift(next, partial.AppliedShift.ID))
	assert.NotNil(t, findShift(next, "b"))

	// No duplicate identifiers after the partial failure.
	seen := make(map[string]bool)
	for _, s := range next {
		assert.False(t, seen[s.ID], "duplicate shift id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestSwapShiftsBothHalvesFailing(t *testing.T) {
	shiftA := shift("a", "2026-03-02", "09:00", "13:00", 1)
	shiftB := shift("b", "2026-03-04", "14:00", "18:00", 2)
	svc := newFakeService(shiftA, shiftB)
	svc.moveErr["a"] = errors.New("down")
	svc.moveErr["b"] = errors.New("down")
	c := NewCoordinator(svc, testRule())

	snapshot := []domain.Shift{shiftA, shiftB}
	next, err := c.SwapShifts(context.Background(), snapshot, "a", "b")

	require.Error(t, err)
	var partial *PartialSwapError
	assert.False(t, errors.As(err, &partial), "a fully failed swap is not a partial failure")
	assert.Equal(t, snapshot, next)
}

func TestUpdateShiftWindowValidates(t *testing.T) {
	original := shift("a", "2026-03-02", "09:00", "13:00", 1)
	svc := newFakeService(original)
	c := NewCoordinator(svc, testRule())

	snapshot := []domain.Shift{original}
	next, _, err := c.UpdateShiftWindow(context.Background(), snapshot, "a", "08:00", "16:30")
	require.Error(t, err)
	assert.True(t, IsKind(err, DurationViolation))
	assert.Equal(t, snapshot, next)

	next, updated, err := c.UpdateShiftWindow(context.Background(), snapshot, "a", "08:00", "16:00")
	require.NoError(t, err)
	assert.Equal(t, "08:00", updated.StartTime)
	assert.Equal(t, "16:00", findShift(next, "a").StartTime)
}
