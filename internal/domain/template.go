package domain

import "time"

type TemplateStatus string

const (
	TemplateDraft           TemplateStatus = "draft"
	TemplatePendingApproval TemplateStatus = "pending_approval"
	TemplateApproved        TemplateStatus = "approved"
	TemplateRejected        TemplateStatus = "rejected"
)

// Terminal reports whether a template status permits no further transitions.
func (s TemplateStatus) Terminal() bool {
	return s == TemplateApproved || s == TemplateRejected
}

// SlotSpec describes one recurring shift slot inside a generation spec.
// ApplicableDays uses ISO weekday numbers (1 = Monday ... 7 = Sunday).
type SlotSpec struct {
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	ShiftType      string  `json:"shiftType"`
	EmployeeIDs    []int64 `json:"employeeIDs"`
	ApplicableDays []int32 `json:"applicableDays"`
}

// GenerationSpec describes the shifts a bulk template expands into on approval.
type GenerationSpec struct {
	LocationID string     `json:"locationID"`
	StartDate  string     `json:"startDate"` // YYYY-MM-DD
	EndDate    string     `json:"endDate"`   // YYYY-MM-DD
	Slots      []SlotSpec `json:"slots"`
}

type BulkShiftTemplate struct {
	ID              string         `json:"id"`
	Status          TemplateStatus `json:"status"`
	Spec            GenerationSpec `json:"generationSpec"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	CreatedShiftIDs []string       `json:"createdShiftIDs,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	Version         int32          `json:"-"`
}
