package schedule

import (
	"math/rand"
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shift(id, date, start, end string, employees ...int64) domain.Shift {
	return domain.Shift{
		ID:                  id,
		LocationID:          "loc-1",
		Date:                date,
		StartTime:           start,
		EndTime:             end,
		ShiftType:           "regular",
		AssignedEmployeeIDs: employees,
		Status:              domain.ShiftScheduled,
	}
}

func TestDetectConflictsReportsOverlap(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 7),
		shift("b", "2026-03-02", "12:00", "16:00", 7),
	}

	conflicts := DetectConflicts(shifts)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "a", conflicts[0].ShiftIDA)
	assert.Equal(t, "b", conflicts[0].ShiftIDB)
	assert.Equal(t, domain.ConflictTypeOverlap, conflicts[0].Type)
}

func TestDetectConflictsTouchingIntervals(t *testing.T) {
	// [09:00,12:00) and [12:00,16:00) touch but do not overlap.
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "12:00", 7),
		shift("b", "2026-03-02", "12:00", "16:00", 7),
	}

	assert.Empty(t, DetectConflicts(shifts))
}

func TestDetectConflictsIgnoresDifferentDatesAndEmployees(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 7),
		shift("b", "2026-03-03", "09:00", "13:00", 7),
		shift("c", "2026-03-02", "09:00", "13:00", 8),
	}

	assert.Empty(t, DetectConflicts(shifts))
}

func TestDetectConflictsOneConflictPerPair(t *testing.T) {
	// Two shared employees still produce a single conflict for the pair.
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 7, 8),
		shift("b", "2026-03-02", "10:00", "14:00", 8, 7),
	}

	assert.Len(t, DetectConflicts(shifts), 1)
}

func TestDetectConflictsOpenShiftsNeverConflict(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00"),
		shift("b", "2026-03-02", "09:00", "13:00"),
	}

	assert.Empty(t, DetectConflicts(shifts))
}

func TestDetectConflictsInvariantUnderPermutation(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 1),
		shift("b", "2026-03-02", "12:00", "16:00", 1),
		shift("c", "2026-03-02", "08:00", "14:00", 2),
		shift("d", "2026-03-02", "13:00", "17:00", 2),
		shift("e", "2026-03-03", "09:00", "13:00", 1),
		shift("f", "2026-03-02", "11:00", "15:00", 1, 2),
	}

	want := DetectConflicts(shifts)
	require.NotEmpty(t, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Shift, len(shifts))
		copy(shuffled, shifts)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, DetectConflicts(shuffled))
	}
}
