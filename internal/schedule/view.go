package schedule

import (
	"sort"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ProjectView filters a shift set down to one location and an inclusive date
// range and returns it sorted by start time ascending (stable, ties keep
// their relative order). Conflict detection and statistics run over this same
// filtered set, so the ordering is a contract, not a presentation nicety.
//
// For day granularity the range collapses to its start date.
func ProjectView(all []domain.Shift, locationID string, dr domain.DateRange, g Granularity) []domain.Shift {
	if g == GranularityDay {
		dr.End = dr.Start
	}

	view := make([]domain.Shift, 0, len(all))
	for _, shift := range all {
		if shift.LocationID != locationID {
			continue
		}
		if !dr.Contains(shift.Date) {
			continue
		}
		view = append(view, shift)
	}

	sort.SliceStable(view, func(i, j int) bool {
		return view[i].StartTime < view[j].StartTime
	})

	return view
}
