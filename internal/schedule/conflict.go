package schedule

import (
	"fmt"
	"sort"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// DetectConflicts compares every unordered pair of shifts on the same date
// and reports one conflict per pair whose assignee sets intersect and whose
// half-open time intervals overlap. The result is sorted by normalized shift
// id pair, so it does not depend on the order of the input.
//
// The comparison is quadratic per date. Shift volume per location per day is
// small, so this is fine; a caller that ever needs scale must pre-bucket by
// date and employee while keeping these pairwise semantics.
func DetectConflicts(shifts []domain.Shift) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0)

	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			a, b := shifts[i], shifts[j]

			if a.Date != b.Date {
				continue
			}
			if !shareEmployee(a.AssignedEmployeeIDs, b.AssignedEmployeeIDs) {
				continue
			}

			aStart, errA := parseClock(a.StartTime)
			aEnd, errB := parseClock(a.EndTime)
			bStart, errC := parseClock(b.StartTime)
			bEnd, errD := parseClock(b.EndTime)
			if errA != nil || errB != nil || errC != nil || errD != nil {
				// Unparseable windows cannot be compared; the validator
				// rejects them before they ever reach a stored shift.
				continue
			}

			// half-open interval overlap
			if aStart < bEnd && bStart < aEnd {
				idA, idB := a.ID, b.ID
				if idB < idA {
					idA, idB = idB, idA
				}
				conflicts = append(conflicts, domain.Conflict{
					ShiftIDA: idA,
					ShiftIDB: idB,
					Type:     domain.ConflictTypeOverlap,
					Description: fmt.Sprintf("shifts %s-%s and %s-%s on %s share an assigned employee",
						a.StartTime, a.EndTime, b.StartTime, b.EndTime, a.Date),
				})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].ShiftIDA != conflicts[j].ShiftIDA {
			return conflicts[i].ShiftIDA < conflicts[j].ShiftIDA
		}
		return conflicts[i].ShiftIDB < conflicts[j].ShiftIDB
	})

	return conflicts
}

func shareEmployee(a, b []int64) bool {
	for _, idA := range a {
		for _, idB := range b {
			if idA == idB {
				return true
			}
		}
	}
	return false
}
