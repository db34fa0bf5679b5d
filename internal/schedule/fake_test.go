package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// fakeService is an in-memory ShiftService used by coordinator and workflow
// tests. Moves issue fresh identifiers, like the real backend.
type fakeService struct {
	mu        sync.Mutex
	shifts    map[string]domain.Shift
	templates map[string]*domain.BulkShiftTemplate
	nextID    int

	createErr error
	updateErr error
	deleteErr error
	moveErr   map[string]error // original shift id -> forced failure
}

func newFakeService(seed ...domain.Shift) *fakeService {
	f := &fakeService{
		shifts:    make(map[string]domain.Shift),
		templates: make(map[string]*domain.BulkShiftTemplate),
		moveErr:   make(map[string]error),
	}
	for _, s := range seed {
		f.shifts[s.ID] = s
	}
	return f
}

func (f *fakeService) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeService) FetchShifts(_ context.Context, locationID string, dr domain.DateRange) ([]domain.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Shift, 0, len(f.shifts))
	for _, s := range f.shifts {
		if s.LocationID == locationID && dr.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeService) CreateShift(_ context.Context, in CreateShiftInput) (*CreateShiftResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	s := domain.Shift{
		ID:                  f.newID("shift"),
		LocationID:          in.LocationID,
		Date:                in.Date,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		ShiftType:           in.ShiftType,
		AssignedEmployeeIDs: in.EmployeeIDs,
		Status:              domain.ShiftScheduled,
		CreatedAt:           time.Now(),
	}
	f.shifts[s.ID] = s
	return &CreateShiftResult{Shift: s}, nil
}

func (f *fakeService) UpdateShift(_ context.Context, shiftID, startTime, endTime string) (*domain.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	s, ok := f.shifts[shiftID]
	if !ok {
		return nil, fmt.Errorf("shift %s not found", shiftID)
	}
	s.StartTime = startTime
	s.EndTime = endTime
	f.shifts[shiftID] = s
	return &s, nil
}

func (f *fakeService) MoveShiftToDate(_ context.Context, shiftID, newDate string, employeeID int64) (*MoveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.moveErr[shiftID]; err != nil {
		return nil, err
	}

	old, ok := f.shifts[shiftID]
	if !ok {
		return nil, fmt.Errorf("shift %s not found", shiftID)
	}

	moved := old
	moved.ID = f.newID("moved")
	moved.Date = newDate
	moved.AssignedEmployeeIDs = []int64{employeeID}
	delete(f.shifts, shiftID)
	f.shifts[moved.ID] = moved

	return &MoveResult{OldShiftID: shiftID, NewShift: moved}, nil
}

func (f *fakeService) DeleteShift(_ context.Context, shiftID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.shifts[shiftID]; !ok {
		return fmt.Errorf("shift %s not found", shiftID)
	}
	delete(f.shifts, shiftID)
	return nil
}

func (f *fakeService) CreateBulkTemplate(_ context.Context, spec domain.GenerationSpec) (*domain.BulkShiftTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tpl := &domain.BulkShiftTemplate{
		ID:        f.newID("tpl"),
		Status:    domain.TemplatePendingApproval,
		Spec:      spec,
		CreatedAt: time.Now(),
		Version:   1,
	}
	f.templates[tpl.ID] = tpl
	return tpl, nil
}

func (f *fakeService) ApproveBulkTemplate(_ context.Context, templateID string) (*ApprovalResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tpl, ok := f.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("template %s not found", templateID)
	}
	if tpl.Status != domain.TemplatePendingApproval {
		return nil, fmt.Errorf("template %s is not pending approval", templateID)
	}

	created := make([]string, 0)
	for _, slot := range tpl.Spec.Slots {
		s := domain.Shift{
			ID:                  f.newID("shift"),
			LocationID:          tpl.Spec.LocationID,
			Date:                tpl.Spec.StartDate,
			StartTime:           slot.StartTime,
			EndTime:             slot.EndTime,
			ShiftType:           slot.ShiftType,
			AssignedEmployeeIDs: slot.EmployeeIDs,
			Status:              domain.ShiftScheduled,
		}
		f.shifts[s.ID] = s
		created = append(created, s.ID)
	}

	tpl.Status = domain.TemplateApproved
	tpl.CreatedShiftIDs = created
	return &ApprovalResult{CreatedShiftIDs: created}, nil
}

func (f *fakeService) RejectBulkTemplate(_ context.Context, templateID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tpl, ok := f.templates[templateID]
	if !ok {
		return fmt.Errorf("template %s not found", templateID)
	}
	if tpl.Status != domain.TemplatePendingApproval {
		return fmt.Errorf("template %s is not pending approval", templateID)
	}

	tpl.Status = domain.TemplateRejected
	tpl.RejectionReason = reason
	return nil
}

func (f *fakeService) ListBulkTemplates(_ context.Context, status domain.TemplateStatus) ([]*domain.BulkShiftTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*domain.BulkShiftTemplate, 0)
	for _, tpl := range f.templates {
		if status == "" || tpl.Status == status {
			out = append(out, tpl)
		}
	}
	return out, nil
}
