package domain

import "time"

type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftCompleted ShiftStatus = "completed"
	ShiftMissed    ShiftStatus = "missed"
	ShiftCancelled ShiftStatus = "cancelled"
)

// Terminal reports whether a shift status permits no further transitions.
func (s ShiftStatus) Terminal() bool {
	return s == ShiftCompleted || s == ShiftMissed || s == ShiftCancelled
}

type Shift struct {
	ID                  string      `json:"id"`
	LocationID          string      `json:"locationID"`
	Date                string      `json:"date"`      // YYYY-MM-DD
	StartTime           string      `json:"startTime"` // HH:MM
	EndTime             string      `json:"endTime"`   // HH:MM
	ShiftType           string      `json:"shiftType"`
	AssignedEmployeeIDs []int64     `json:"assignedEmployeeIDs"` // empty = open shift
	Status              ShiftStatus `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
	Version             int32       `json:"-"`
}

// DateRange is an inclusive calendar date range. Dates use the YYYY-MM-DD
// form, so plain string comparison orders them correctly.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (dr DateRange) Contains(date string) bool {
	return date >= dr.Start && date <= dr.End
}

// ComplianceRule bounds permissible shift windows. It is supplied by
// configuration and immutable for the lifetime of a scheduling session.
type ComplianceRule struct {
	MinStart         string `json:"minStart"` // HH:MM
	MaxEnd           string `json:"maxEnd"`   // HH:MM
	AllowedDurations []int  `json:"allowedDurations"` // whole hours
}

// Conflict is derived from a shift set on demand, never stored.
type Conflict struct {
	ShiftIDA    string `json:"shiftIDA"`
	ShiftIDB    string `json:"shiftIDB"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

const ConflictTypeOverlap = "overlap"

type Stats struct {
	TotalShifts  int     `json:"totalShifts"`
	NightShifts  int     `json:"nightShifts"`
	AvgHours     float64 `json:"avgHours"`
	BalanceScore int     `json:"balanceScore"`
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
