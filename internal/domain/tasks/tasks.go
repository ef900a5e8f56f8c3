// Package tasks derives the staff work queues from customer activity.
package tasks

import (
	"slices"
	"strings"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
)

// PendingFeedback returns a pending feedback task, newest invoice first, for
// every purchase made within window before now that has no task yet.
// Vouchers and cancelled orders are not purchases.
func PendingFeedback(state *entity.AppState, now time.Time, window time.Duration) []entity.DailyFeedbackTask {
	existing := make(map[string]struct{}, len(state.DailyFeedbackTasks))
	for _, t := range state.DailyFeedbackTasks {
		existing[t.ID] = struct{}{}
	}

	since := now.Add(-window)

	var out []entity.DailyFeedbackTask
	for _, c := range state.Customers {
		for _, e := range c.Log {
			if e.InvoiceID == "" || e.Amount <= 0 || e.Status == entity.OrderStatusCancelled {
				continue
			}
			if e.Date.Before(since) || e.Date.After(now) {
				continue
			}

			id := entity.FeedbackTaskID(e.InvoiceID)
			if _, ok := existing[id]; ok {
				continue
			}
			existing[id] = struct{}{}

			out = append(out, entity.DailyFeedbackTask{
				ID:           id,
				CustomerID:   c.ID,
				CustomerName: c.Name,
				InvoiceID:    e.InvoiceID,
				InvoiceDate:  e.Date,
				Status:       entity.DailyFeedbackPending,
				LastModified: now,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b entity.DailyFeedbackTask) int {
		return b.InvoiceDate.Compare(a.InvoiceDate)
	})

	return out
}

// Resolve closes a pending follow-up task.
func Resolve(task entity.FollowUpTask, resolver entity.Actor, notes string, now time.Time) (entity.FollowUpTask, error) {
	if task.Status == entity.FollowUpDone {
		return task, domainerrors.ErrInvalidTransition.WithDetails("follow-up task is already resolved")
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return task, domainerrors.ErrValidationFailed.WithDetails("resolution notes are required")
	}

	task.Status = entity.FollowUpDone
	task.AssignedTo = resolver.UserID
	task.ResolutionNotes = notes
	task.LastModified = now

	return task, nil
}
