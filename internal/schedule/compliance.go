package schedule

import (
	"slices"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// ValidateWindow checks a proposed shift time window against the configured
// business rules. It must pass before any mutating operation is issued.
// Checks run in a fixed order: format, ordering, window bounds, duration.
func ValidateWindow(startTime, endTime string, rule domain.ComplianceRule) error {
	start, err := parseClock(startTime)
	if err != nil {
		return newError(InvalidFormat, "start time %q is not a valid HH:MM time", startTime)
	}
	end, err := parseClock(endTime)
	if err != nil {
		return newError(InvalidFormat, "end time %q is not a valid HH:MM time", endTime)
	}

	if end <= start {
		return newError(OrderingViolation, "end time %s must be after start time %s", endTime, startTime)
	}

	minStart, err := parseClock(rule.MinStart)
	if err != nil {
		return newError(InvalidFormat, "rule min start %q is not a valid HH:MM time", rule.MinStart)
	}
	maxEnd, err := parseClock(rule.MaxEnd)
	if err != nil {
		return newError(InvalidFormat, "rule max end %q is not a valid HH:MM time", rule.MaxEnd)
	}

	if start < minStart || end > maxEnd {
		return newError(WindowViolation, "shift %s-%s is outside the permitted window %s-%s",
			startTime, endTime, rule.MinStart, rule.MaxEnd)
	}

	minutes := end - start
	if minutes%60 != 0 || !slices.Contains(rule.AllowedDurations, minutes/60) {
		return newError(DurationViolation, "shift duration of %d minutes is not a permitted whole-hour duration", minutes)
	}

	return nil
}
