package schedule

import (
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectViewFiltersLocationAndRange(t *testing.T) {
	all := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 1),
		shift("b", "2026-03-05", "09:00", "13:00", 1),
		shift("c", "2026-03-09", "09:00", "13:00", 1), // outside range
	}
	all[1].LocationID = "loc-2"

	view := ProjectView(all, "loc-1", domain.DateRange{Start: "2026-03-02", End: "2026-03-08"}, GranularityWeek)

	require.Len(t, view, 1)
	assert.Equal(t, "a", view[0].ID)
}

func TestProjectViewRangeIsInclusive(t *testing.T) {
	all := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 1),
		shift("b", "2026-03-08", "09:00", "13:00", 1),
	}

	view := ProjectView(all, "loc-1", domain.DateRange{Start: "2026-03-02", End: "2026-03-08"}, GranularityWeek)
	assert.Len(t, view, 2)
}

func TestProjectViewDayGranularityCollapsesRange(t *testing.T) {
	all := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 1),
		shift("b", "2026-03-03", "09:00", "13:00", 1),
	}

	view := ProjectView(all, "loc-1", domain.DateRange{Start: "2026-03-02", End: "2026-03-08"}, GranularityDay)

	require.Len(t, view, 1)
	assert.Equal(t, "a", view[0].ID)
}

func TestProjectViewSortsByStartTimeStable(t *testing.T) {
	all := []domain.Shift{
		shift("late", "2026-03-02", "14:00", "18:00", 1),
		shift("first-nine", "2026-03-02", "09:00", "13:00", 2),
		shift("second-nine", "2026-03-03", "09:00", "13:00", 3),
		shift("early", "2026-03-02", "07:00", "11:00", 4),
	}

	view := ProjectView(all, "loc-1", domain.DateRange{Start: "2026-03-02", End: "2026-03-08"}, GranularityWeek)

	ids := make([]string, 0, len(view))
	for _, s := range view {
		ids = append(ids, s.ID)
	}
	// ties on 09:00 keep their original relative order
	assert.Equal(t, []string{"early", "first-nine", "second-nine", "late"}, ids)
}

func TestProjectViewDoesNotMutateInput(t *testing.T) {
	all := []domain.Shift{
		shift("late", "2026-03-02", "14:00", "18:00", 1),
		shift("early", "2026-03-02", "07:00", "11:00", 2),
	}

	_ = ProjectView(all, "loc-1", domain.DateRange{Start: "2026-03-02", End: "2026-03-02"}, GranularityDay)

	assert.Equal(t, "late", all[0].ID)
	assert.Equal(t, "early", all[1].ID)
}
