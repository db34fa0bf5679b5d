package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/report"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
)

const dateLayout = "2006-01-02"

// parseScheduleQuery reads the common schedule query parameters: from, to and
// granularity (defaulting to a week view).
func (h *Handler) parseScheduleQuery(r *http.Request) (domain.DateRange, schedule.Granularity, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if _, err := time.Parse(dateLayout, from); err != nil {
		return domain.DateRange{}, "", fmt.Errorf("from %q is not a valid date", from)
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return domain.DateRange{}, "", fmt.Errorf("to %q is not a valid date", to)
	}
	if to < from {
		return domain.DateRange{}, "", fmt.Errorf("to must not be before from")
	}

	granularity := schedule.Granularity(r.URL.Query().Get("granularity"))
	switch granularity {
	case "":
		granularity = schedule.GranularityWeek
	case schedule.GranularityDay, schedule.GranularityWeek, schedule.GranularityMonth:
	default:
		return domain.DateRange{}, "", fmt.Errorf("granularity %q is not one of day, week, month", granularity)
	}

	return domain.DateRange{Start: from, End: to}, granularity, nil
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	dr, granularity, err := h.parseScheduleQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shifts, err := h.coordinator.LoadShifts(r.Context(), location.ID, dr)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	view := schedule.ProjectView(shifts, location.ID, dr, granularity)
	conflicts := schedule.DetectConflicts(view)
	stats := schedule.AggregateStats(view)

	h.successResponse(w, r, "schedule fetched", map[string]any{
		"shifts":    view,
		"conflicts": conflicts,
		"stats":     stats,
		"rule":      h.coordinator.Rule(),
	})
}

func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	location := r.Context().Value(LocationCtx).(*domain.Location)

	dr, granularity, err := h.parseScheduleQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shifts, err := h.coordinator.LoadShifts(r.Context(), location.ID, dr)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	view := schedule.ProjectView(shifts, location.ID, dr, granularity)
	workbook, err := report.BuildScheduleWorkbook(location, dr, view, schedule.DetectConflicts(view), schedule.AggregateStats(view))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("schedule_%s_%s_%s.xlsx", location.Name, dr.Start, dr.End)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
