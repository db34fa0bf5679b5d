package schedule

import (
	"context"
	"testing"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() domain.GenerationSpec {
	return domain.GenerationSpec{
		LocationID: "loc-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-08",
		Slots: []domain.SlotSpec{
			{
				StartTime:      "08:00",
				EndTime:        "16:00",
				ShiftType:      "regular",
				EmployeeIDs:    []int64{1},
				ApplicableDays: []int32{1, 2, 3, 4, 5},
			},
		},
	}
}

func TestWorkflowLifecycle(t *testing.T) {
	svc := newFakeService()
	w := NewWorkflow(svc)

	tpl := NewDraftTemplate(testSpec())
	assert.Equal(t, domain.TemplateDraft, tpl.Status)
	assert.Empty(t, tpl.ID, "a draft is client-local until submission")

	require.NoError(t, w.Submit(context.Background(), tpl))
	assert.Equal(t, domain.TemplatePendingApproval, tpl.Status)
	assert.NotEmpty(t, tpl.ID)

	res, err := w.Approve(context.Background(), tpl)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateApproved, tpl.Status)
	assert.GreaterOrEqual(t, len(res.CreatedShiftIDs), 0)
	assert.Equal(t, res.CreatedShiftIDs, tpl.CreatedShiftIDs)
}

func TestWorkflowSubmitRequiresNonEmptySpec(t *testing.T) {
	w := NewWorkflow(newFakeService())

	tpl := NewDraftTemplate(domain.GenerationSpec{LocationID: "loc-1"})
	err := w.Submit(context.Background(), tpl)

	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidTransition))
	assert.Equal(t, domain.TemplateDraft, tpl.Status)
}

func TestWorkflowApproveIsTerminal(t *testing.T) {
	svc := newFakeService()
	w := NewWorkflow(svc)

	tpl := NewDraftTemplate(testSpec())
	require.NoError(t, w.Submit(context.Background(), tpl))
	_, err := w.Approve(context.Background(), tpl)
	require.NoError(t, err)

	_, err = w.Approve(context.Background(), tpl)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidTransition))

	err = w.Reject(context.Background(), tpl, "too late")
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidTransition))
}

func TestWorkflowRejectRequiresReason(t *testing.T) {
	svc := newFakeService()
	w := NewWorkflow(svc)

	tpl := NewDraftTemplate(testSpec())
	require.NoError(t, w.Submit(context.Background(), tpl))

	err := w.Reject(context.Background(), tpl, "   ")
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingReason))
	assert.Equal(t, domain.TemplatePendingApproval, tpl.Status, "a failed rejection does not transition")

	require.NoError(t, w.Reject(context.Background(), tpl, "coverage already planned"))
	assert.Equal(t, domain.TemplateRejected, tpl.Status)
	assert.Equal(t, "coverage already planned", tpl.RejectionReason)
	assert.Empty(t, tpl.CreatedShiftIDs, "rejection creates no shifts")
}

func TestWorkflowListTemplatesFiltersByStatus(t *testing.T) {
	svc := newFakeService()
	w := NewWorkflow(svc)

	pending := NewDraftTemplate(testSpec())
	require.NoError(t, w.Submit(context.Background(), pending))

	rejected := NewDraftTemplate(testSpec())
	require.NoError(t, w.Submit(context.Background(), rejected))
	require.NoError(t, w.Reject(context.Background(), rejected, "duplicate of another template"))

	got, err := w.ListTemplates(context.Background(), domain.TemplatePendingApproval)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)

	all, err := w.ListTemplates(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
