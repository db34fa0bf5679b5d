package schedule

import (
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRule() domain.ComplianceRule {
	return domain.ComplianceRule{
		MinStart:         "06:00",
		MaxEnd:           "22:00",
		AllowedDurations: []int{4, 6, 8, 10, 12},
	}
}

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		kind  ErrorKind
	}{
		{name: "valid eight hour shift", start: "08:00", end: "16:00"},
		{name: "valid shift at window bounds", start: "06:00", end: "18:00"},
		{name: "garbage start time", start: "late", end: "16:00", kind: InvalidFormat},
		{name: "garbage end time", start: "08:00", end: "25:61", kind: InvalidFormat},
		{name: "end equals start", start: "08:00", end: "08:00", kind: OrderingViolation},
		{name: "end before start", start: "16:00", end: "08:00", kind: OrderingViolation},
		{name: "starts before window opens", start: "05:00", end: "11:00", kind: WindowViolation},
		{name: "ends after window closes", start: "21:00", end: "23:00", kind: WindowViolation},
		{name: "half hour duration", start: "08:00", end: "16:30", kind: DurationViolation},
		{name: "whole hours but not permitted", start: "08:00", end: "13:00", kind: DurationViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.start, tt.end, testRule())
			if tt.kind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "expected kind %s, got %v", tt.kind, err)
		})
	}
}

func TestValidateWindowIsDeterministic(t *testing.T) {
	first := ValidateWindow("21:00", "23:00", testRule())
	second := ValidateWindow("21:00", "23:00", testRule())
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}
