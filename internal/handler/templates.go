package handler

import (
	"net/http"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
)

func (h *Handler) SubmitBulkTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LocationID string `json:"locationID" validate:"required"`
		StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Slots      []struct {
			StartTime      string  `json:"startTime" validate:"required"`
			EndTime        string  `json:"endTime" validate:"required"`
			ShiftType      string  `json:"shiftType"`
			EmployeeIDs    []int64 `json:"employeeIDs"`
			ApplicableDays []int32 `json:"applicableDays" validate:"required,dive,gte=1,lte=7"`
		} `json:"slots" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.EndDate < req.StartDate {
		h.errorResponse(w, r, "end date must not be before start date")
		return
	}

	spec := domain.GenerationSpec{
		LocationID: req.LocationID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Slots:      make([]domain.SlotSpec, 0, len(req.Slots)),
	}
	rule := h.coordinator.Rule()
	for _, slot := range req.Slots {
		if err := schedule.ValidateWindow(slot.StartTime, slot.EndTime, rule); h.scheduleError(w, r, err) {
			return
		}
		shiftType := slot.ShiftType
		if shiftType == "" {
			shiftType = "regular"
		}
		spec.Slots = append(spec.Slots, domain.SlotSpec{
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			ShiftType:      shiftType,
			EmployeeIDs:    slot.EmployeeIDs,
			ApplicableDays: slot.ApplicableDays,
		})
	}

	tpl := schedule.NewDraftTemplate(spec)
	if err := h.workflow.Submit(r.Context(), tpl); h.scheduleError(w, r, err) {
		return
	}

	h.successResponse(w, r, "bulk template submitted for approval", tpl)
}

func (h *Handler) ListBulkTemplates(w http.ResponseWriter, r *http.Request) {
	status := domain.TemplateStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.TemplatePendingApproval, domain.TemplateApproved, domain.TemplateRejected:
	default:
		h.errorResponse(w, r, "invalid status filter")
		return
	}

	templates, err := h.workflow.ListTemplates(r.Context(), status)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "bulk templates fetched", templates)
}

func (h *Handler) GetBulkTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := r.Context().Value(BulkTemplateCtx).(*domain.BulkShiftTemplate)

	h.successResponse(w, r, "bulk template fetched", tpl)
}

func (h *Handler) ApproveBulkTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := r.Context().Value(BulkTemplateCtx).(*domain.BulkShiftTemplate)

	res, err := h.workflow.Approve(r.Context(), tpl)
	if h.scheduleError(w, r, err) {
		return
	}

	h.successResponse(w, r, "bulk template approved", map[string]any{
		"template":          tpl,
		"createdShiftCount": len(res.CreatedShiftIDs),
		"createdShiftIDs":   res.CreatedShiftIDs,
	})
}

func (h *Handler) RejectBulkTemplate(w http.ResponseWriter, r *http.Request) {
	tpl := r.Context().Value(BulkTemplateCtx).(*domain.BulkShiftTemplate)

	var req struct {
		Reason string `json:"reason"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.workflow.Reject(r.Context(), tpl, req.Reason); h.scheduleError(w, r, err) {
		return
	}

	h.successResponse(w, r, "bulk template rejected", tpl)
}
