package schedule

import (
	"context"
	"strings"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// Workflow drives the bulk-template state machine:
//
//	draft -> pending_approval -> approved | rejected
//
// approved and rejected are terminal; any further transition attempt fails
// with InvalidTransition. A draft is client-local and only reaches the
// backend on submission.
type Workflow struct {
	svc ShiftService
}

func NewWorkflow(svc ShiftService) *Workflow {
	return &Workflow{svc: svc}
}

// NewDraftTemplate builds a client-local draft for a generation spec.
func NewDraftTemplate(spec domain.GenerationSpec) *domain.BulkShiftTemplate {
	return &domain.BulkShiftTemplate{
		Status: domain.TemplateDraft,
		Spec:   spec,
	}
}

// Submit sends a draft to the backend, transitioning it to pending_approval.
func (w *Workflow) Submit(ctx context.Context, tpl *domain.BulkShiftTemplate) error {
	if tpl.Status != domain.TemplateDraft {
		return newError(InvalidTransition, "cannot submit a template in status %q", tpl.Status)
	}
	if tpl.Spec.LocationID == "" || len(tpl.Spec.Slots) == 0 {
		return newError(InvalidTransition, "cannot submit a template with an empty generation spec")
	}

	created, err := w.svc.CreateBulkTemplate(ctx, tpl.Spec)
	if err != nil {
		return err
	}

	tpl.ID = created.ID
	tpl.Status = domain.TemplatePendingApproval
	tpl.CreatedAt = created.CreatedAt
	tpl.Version = created.Version
	return nil
}

// Approve transitions a pending template to approved. The backend fans the
// generation spec out into concrete shifts and returns their ids; the caller
// must refresh its local shift set afterwards.
func (w *Workflow) Approve(ctx context.Context, tpl *domain.BulkShiftTemplate) (*ApprovalResult, error) {
	if tpl.Status != domain.TemplatePendingApproval {
		return nil, newError(InvalidTransition, "cannot approve a template in status %q", tpl.Status)
	}

	res, err := w.svc.ApproveBulkTemplate(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}

	tpl.Status = domain.TemplateApproved
	tpl.CreatedShiftIDs = res.CreatedShiftIDs
	return res, nil
}

// Reject transitions a pending template to rejected. The reason is mandatory;
// no shifts are created.
func (w *Workflow) Reject(ctx context.Context, tpl *domain.BulkShiftTemplate, reason string) error {
	if tpl.Status != domain.TemplatePendingApproval {
		return newError(InvalidTransition, "cannot reject a template in status %q", tpl.Status)
	}
	if strings.TrimSpace(reason) == "" {
		return newError(MissingReason, "a rejection must carry a non-empty reason")
	}

	if err := w.svc.RejectBulkTemplate(ctx, tpl.ID, reason); err != nil {
		return err
	}

	tpl.Status = domain.TemplateRejected
	tpl.RejectionReason = reason
	return nil
}

// ListTemplates is a read projection filtered by status; it never changes
// template state. An empty status lists every template.
func (w *Workflow) ListTemplates(ctx context.Context, status domain.TemplateStatus) ([]*domain.BulkShiftTemplate, error) {
	return w.svc.ListBulkTemplates(ctx, status)
}
