package impl

import (
	"context"

	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/usecase"
)

// effectRunner executes the effects returned by the pure domain packages.
type effectRunner struct {
	clock  service.Clock
	ids    service.IDGenerator
	alerts usecase.AlertUsecase
}

// audit appends an ACTION entry attributed to actor.
func (r *effectRunner) audit(state *entity.AppState, actor entity.Actor, details string) {
	state.AddActivity(entity.ActivityLogEntry{
		ID:        r.ids.New("log-"),
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Timestamp: r.clock.Now(),
		Type:      entity.ActivityAction,
		Details:   details,
	})
}

// apply writes Audit effects into state and returns the notices and the
// notifications to run after commit. It must be called inside a mutation.
func (r *effectRunner) apply(state *entity.AppState, actor entity.Actor, effects []effect.Effect) ([]entity.Notice, []effect.Notify) {
	var (
		notices  []entity.Notice
		notifies []effect.Notify
	)
	for _, e := range effects {
		switch e := e.(type) {
		case effect.Audit:
			r.audit(state, actor, e.Details)
		case effect.Notice:
			notices = append(notices, entity.Notice{Level: e.Level, Message: e.Message})
		case effect.Notify:
			notifies = append(notifies, e)
		}
	}

	return notices, notifies
}

// dispatch runs notifications after commit. Failures surface as notices only.
func (r *effectRunner) dispatch(ctx context.Context, actor entity.Actor, notifies []effect.Notify) []entity.Notice {
	var notices []entity.Notice
	for _, n := range notifies {
		notices = append(notices, r.alerts.Dispatch(ctx, actor, n.Kind, n.ComplaintID)...)
	}

	return notices
}
