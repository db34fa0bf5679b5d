package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// publishNotification queues a notification message for the notifier worker.
// Notifications are best-effort: a publish failure is logged, never surfaced,
// because the scheduling mutation itself already committed.
func (h *Handler) publishNotification(r *http.Request, msg domain.NotificationMessage) {
	body, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal notification", "type", msg.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("failed to publish notification", "type", msg.Type, "to", msg.To, "error", err)
	}
}

// notifyAssignees resolves the mail addresses for a shift's assignees and
// publishes one message per employee.
func (h *Handler) notifyAssignees(r *http.Request, shift *domain.Shift, build func(user *domain.User) domain.NotificationMessage) {
	for _, employeeID := range shift.AssignedEmployeeIDs {
		user, err := h.repository.GetUserByID(r.Context(), employeeID)
		if err != nil {
			slog.Error("failed to resolve notification recipient", "employeeID", employeeID, "error", err)
			continue
		}
		h.publishNotification(r, build(user))
	}
}

func (h *Handler) notifyShiftAssigned(r *http.Request, location *domain.Location, shift *domain.Shift) {
	h.notifyAssignees(r, shift, func(user *domain.User) domain.NotificationMessage {
		return domain.NotificationMessage{
			Type: "shift_assigned",
			To:   user.Email,
			Data: domain.ShiftAssignedMailData{
				FullName:     user.FullName,
				LocationName: location.Name,
				Date:         shift.Date,
				StartTime:    shift.StartTime,
				EndTime:      shift.EndTime,
			},
		}
	})
}

func (h *Handler) notifyShiftMoved(r *http.Request, location *domain.Location, shift *domain.Shift, oldDate string) {
	h.notifyAssignees(r, shift, func(user *domain.User) domain.NotificationMessage {
		return domain.NotificationMessage{
			Type: "shift_moved",
			To:   user.Email,
			Data: domain.ShiftMovedMailData{
				FullName:     user.FullName,
				LocationName: location.Name,
				OldDate:      oldDate,
				NewDate:      shift.Date,
				StartTime:    shift.StartTime,
				EndTime:      shift.EndTime,
			},
		}
	})
}

func (h *Handler) notifyShiftCancelled(r *http.Request, location *domain.Location, shift *domain.Shift) {
	h.notifyAssignees(r, shift, func(user *domain.User) domain.NotificationMessage {
		return domain.NotificationMessage{
			Type: "shift_cancelled",
			To:   user.Email,
			Data: domain.ShiftCancelledMailData{
				FullName:     user.FullName,
				LocationName: location.Name,
				Date:         shift.Date,
				StartTime:    shift.StartTime,
				EndTime:      shift.EndTime,
			},
		}
	})
}
