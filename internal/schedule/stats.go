package schedule

import (
	"math"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// AggregateStats computes summary metrics over a shift set. It is pure:
// calling it twice on the same input yields identical output.
//
// A night shift is one starting at or after 22:00 or at or before 06:59.
// The balance score compares the least-loaded to the most-loaded employee by
// shift count; 100 means perfectly even distribution (or no assignments at
// all).
func AggregateStats(shifts []domain.Shift) domain.Stats {
	stats := domain.Stats{
		TotalShifts:  len(shifts),
		BalanceScore: 100,
	}

	totalMinutes := 0
	perEmployee := make(map[int64]int)

	for _, shift := range shifts {
		start, err := parseClock(shift.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(shift.EndTime)
		if err != nil {
			continue
		}

		if hour := clockHour(start); hour >= 22 || hour <= 6 {
			stats.NightShifts++
		}
		totalMinutes += end - start

		for _, employeeID := range shift.AssignedEmployeeIDs {
			perEmployee[employeeID]++
		}
	}

	if stats.TotalShifts > 0 {
		avg := float64(totalMinutes) / 60 / float64(stats.TotalShifts)
		stats.AvgHours = math.Round(avg*10) / 10
	}

	if len(perEmployee) > 0 {
		minCount, maxCount := math.MaxInt, 0
		for _, count := range perEmployee {
			if count < minCount {
				minCount = count
			}
			if count > maxCount {
				maxCount = count
			}
		}
		stats.BalanceScore = int(math.Round(100 * float64(minCount) / float64(maxCount)))
	}

	return stats
}
