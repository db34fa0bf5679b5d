package schedule

import (
	"context"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

type CreateShiftInput struct {
	LocationID  string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	ShiftType   string
	EmployeeIDs []int64
}

type CreateShiftResult struct {
	Shift    domain.Shift
	Warnings []string // advisory compliance warnings from the backend
}

type MoveResult struct {
	OldShiftID string
	NewShift   domain.Shift
}

type ApprovalResult struct {
	CreatedShiftIDs []string
}

// ShiftService is the external shift-management backend. Mutating calls are
// not assumed to be safe to retry; retry policy belongs to the caller.
type ShiftService interface {
	FetchShifts(ctx context.Context, locationID string, dr domain.DateRange) ([]domain.Shift, error)
	CreateShift(ctx context.Context, in CreateShiftInput) (*CreateShiftResult, error)
	UpdateShift(ctx context.Context, shiftID, startTime, endTime string) (*domain.Shift, error)
	// MoveShiftToDate atomically reassigns a shift's date and employee. The
	// backend may issue a new identifier for the moved shift.
	MoveShiftToDate(ctx context.Context, shiftID, newDate string, employeeID int64) (*MoveResult, error)
	DeleteShift(ctx context.Context, shiftID string) error

	CreateBulkTemplate(ctx context.Context, spec domain.GenerationSpec) (*domain.BulkShiftTemplate, error)
	ApproveBulkTemplate(ctx context.Context, templateID string) (*ApprovalResult, error)
	RejectBulkTemplate(ctx context.Context, templateID, reason string) error
	ListBulkTemplates(ctx context.Context, status domain.TemplateStatus) ([]*domain.BulkShiftTemplate, error)
}
