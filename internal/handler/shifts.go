package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	var req struct {
		Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
		StartTime   string  `json:"startTime" validate:"required"`
		EndTime     string  `json:"endTime" validate:"required"`
		ShiftType   string  `json:"shiftType"`
		EmployeeIDs []int64 `json:"employeeIDs"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.ShiftType == "" {
		req.ShiftType = "regular"
	}

	day := domain.DateRange{Start: req.Date, End: req.Date}
	snapshot, err := h.coordinator.LoadShifts(r.Context(), location.ID, day)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	_, res, err := h.coordinator.AddShift(r.Context(), snapshot, schedule.CreateShiftInput{
		LocationID:  location.ID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ShiftType:   req.ShiftType,
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_assignees_employee_id_fkey":
				h.errorResponse(w, r, "one of the assigned employees does not exist")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.scheduleError(w, r, err)
		}
		return
	}

	h.notifyShiftAssigned(r, location, &res.Shift)

	h.successResponse(w, r, "shift created", map[string]any{
		"shift":    res.Shift,
		"warnings": res.Warnings,
	})
}

func (h *Handler) UpdateShiftWindow(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	_, updated, err := h.coordinator.UpdateShiftWindow(r.Context(), []domain.Shift{*shift}, shift.ID, req.StartTime, req.EndTime)
	if h.scheduleError(w, r, err) {
		return
	}

	h.successResponse(w, r, "shift window updated", updated)
}

func (h *Handler) UpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Status string `json:"status" validate:"required,oneof=completed missed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.repository.UpdateShiftStatus(r.Context(), shift.ID, domain.ShiftStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift status can no longer change")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if updated.Status == domain.ShiftCancelled {
		location := r.Context().Value(LocationCtx).(*domain.Location)
		h.notifyShiftCancelled(r, location, updated)
	}

	h.successResponse(w, r, "shift status updated", updated)
}

func (h *Handler) MoveShift(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		NewDate    string `json:"newDate" validate:"required,datetime=2006-01-02"`
		EmployeeID int64  `json:"employeeID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	oldDate := shift.Date
	_, moved, err := h.coordinator.MoveShift(r.Context(), []domain.Shift{*shift}, shift.ID, req.NewDate, req.EmployeeID)
	if h.scheduleError(w, r, err) {
		return
	}

	h.notifyShiftMoved(r, location, moved, oldDate)

	h.successResponse(w, r, "shift moved", map[string]any{
		"oldShiftID": shift.ID,
		"newShift":   moved,
	})
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	_, err := h.coordinator.DeleteShift(r.Context(), []domain.Shift{*shift}, shift.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift does not exist")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}

func (h *Handler) SwapShifts(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	var req struct {
		ShiftAID string `json:"shiftAID" validate:"required"`
		ShiftBID string `json:"shiftBID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	snapshot := make([]domain.Shift, 0, 2)
	for _, shiftID := range []string{req.ShiftAID, req.ShiftBID} {
		shift, err := h.repository.GetShiftByID(r.Context(), shiftID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "one of the shifts does not exist")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if shift.LocationID != location.ID {
			h.errorResponse(w, r, "both shifts must belong to this location")
			return
		}
		snapshot = append(snapshot, *shift)
	}

	next, err := h.coordinator.SwapShifts(r.Context(), snapshot, req.ShiftAID, req.ShiftBID)
	if err != nil {
		var partial *schedule.PartialSwapError
		if errors.As(err, &partial) {
			// One half is committed on the backend; tell the client exactly
			// which one so it can force a refresh of the affected shifts.
			h.errorResponseWithData(w, r, "swap partially failed, refresh the affected shifts", map[string]any{
				"appliedShiftID": partial.AppliedShiftID,
				"appliedShift":   partial.AppliedShift,
				"failedShiftID":  partial.FailedShiftID,
			})
			return
		}
		h.scheduleError(w, r, err)
		return
	}

	for i := range next {
		h.notifyShiftAssigned(r, location, &next[i])
	}

	h.successResponse(w, r, "shifts swapped", next)
}
