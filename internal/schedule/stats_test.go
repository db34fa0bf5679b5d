package schedule

import (
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregateStatsEmpty(t *testing.T) {
	stats := AggregateStats(nil)

	assert.Equal(t, 0, stats.TotalShifts)
	assert.Equal(t, 0, stats.NightShifts)
	assert.Equal(t, 0.0, stats.AvgHours)
	assert.Equal(t, 100, stats.BalanceScore)
}

func TestAggregateStatsNightShifts(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "22:00", "23:00", 1),
		shift("b", "2026-03-02", "06:30", "10:30", 1),
		shift("c", "2026-03-02", "07:00", "11:00", 1),
		shift("d", "2026-03-02", "21:00", "22:00", 1),
	}

	stats := AggregateStats(shifts)
	assert.Equal(t, 4, stats.TotalShifts)
	assert.Equal(t, 2, stats.NightShifts) // 22:00 and 06:30 starts
}

func TestAggregateStatsAvgHoursRounding(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "09:00", "13:00", 1), // 4h
		shift("b", "2026-03-02", "09:00", "14:00", 1), // 5h
		shift("c", "2026-03-02", "09:00", "13:00", 1), // 4h
	}

	stats := AggregateStats(shifts)
	assert.Equal(t, 4.3, stats.AvgHours)
}

func TestAggregateStatsBalanceScore(t *testing.T) {
	// Employee shift counts {2, 4, 4} -> round(100 * 2 / 4) = 50.
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "08:00", "12:00", 1, 2),
		shift("b", "2026-03-03", "08:00", "12:00", 1, 2),
		shift("c", "2026-03-04", "08:00", "12:00", 2, 3),
		shift("d", "2026-03-05", "08:00", "12:00", 2, 3),
		shift("e", "2026-03-06", "08:00", "12:00", 3),
		shift("f", "2026-03-07", "08:00", "12:00", 3),
	}

	stats := AggregateStats(shifts)
	assert.Equal(t, 50, stats.BalanceScore)
}

func TestAggregateStatsBalanceScoreNoAssignments(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "08:00", "12:00"),
		shift("b", "2026-03-03", "08:00", "12:00"),
	}

	stats := AggregateStats(shifts)
	assert.Equal(t, 100, stats.BalanceScore)
}

func TestAggregateStatsIdempotent(t *testing.T) {
	shifts := []domain.Shift{
		shift("a", "2026-03-02", "18:00", "22:00", 1),
		shift("b", "2026-03-03", "08:00", "16:00", 2),
	}

	first := AggregateStats(shifts)
	second := AggregateStats(shifts)
	assert.Equal(t, first, second)
}
