package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/domain/tasks"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

const defaultFeedbackWindow = 7 * 24 * time.Hour

type taskService struct {
	store          usecase.StateStore
	runner         *effectRunner
	clock          service.Clock
	texts          *i18n.Texts
	feedbackWindow time.Duration
	logger         *slog.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(
	cfg *config.Config,
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.TaskUsecase {
	window := defaultFeedbackWindow
	if cfg != nil && cfg.Tasks != nil && cfg.Tasks.FeedbackWindow > 0 {
		window = cfg.Tasks.FeedbackWindow
	}

	return &taskService{
		store:          store,
		runner:         &effectRunner{clock: clock, ids: ids},
		clock:          clock,
		texts:          texts,
		feedbackWindow: window,
		logger:         logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFollowUps returns follow-up tasks, optionally filtered by status
func (srv *taskService) ListFollowUps(_ context.Context, status entity.FollowUpStatus) ([]entity.FollowUpTask, error) {
	all := srv.store.Snapshot().FollowUpTasks

	out := make([]entity.FollowUpTask, 0, len(all))
	for _, t := range all {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}

	return out, nil
}

// ResolveFollowUp closes a follow-up task with the resolver's notes
func (srv *taskService) ResolveFollowUp(ctx context.Context, actor entity.Actor, id, notes string) (*usecase.Result[entity.FollowUpTask], error) {
	if actor.Role.ViewOnly() {
		return nil, domainerrors.ErrPermissionDenied
	}

	var resolved entity.FollowUpTask
	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		idx := -1
		for i, t := range state.FollowUpTasks {
			if t.ID == id {
				idx = i

				break
			}
		}
		if idx < 0 {
			return domainerrors.ErrTaskNotFound
		}

		next, err := tasks.Resolve(state.FollowUpTasks[idx], actor, notes, srv.clock.Now())
		if err != nil {
			return err
		}
		state.PutFollowUpTask(next)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditFollowUpResolved, next.ID))
		resolved = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Follow-up resolution rejected", slog.Any("error", err), slog.String("task_id", id))

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Follow-up resolved", slog.String("task_id", id), slog.String("user_id", actor.UserID))

	return &usecase.Result[entity.FollowUpTask]{Value: resolved}, nil
}

// ListFeedbackTasks returns daily feedback tasks, optionally filtered by status
func (srv *taskService) ListFeedbackTasks(_ context.Context, status entity.DailyFeedbackStatus) ([]entity.DailyFeedbackTask, error) {
	all := srv.store.Snapshot().DailyFeedbackTasks

	out := make([]entity.DailyFeedbackTask, 0, len(all))
	for _, t := range all {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}

	return out, nil
}

// GenerateFeedbackTasks creates pending tasks for recent invoices that have none
func (srv *taskService) GenerateFeedbackTasks(ctx context.Context, actor entity.Actor) (*usecase.Result[int], error) {
	created := 0

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		pending := tasks.PendingFeedback(state, srv.clock.Now(), srv.feedbackWindow)
		if len(pending) == 0 {
			return nil
		}
		for _, t := range pending {
			state.PutDailyFeedbackTask(t)
		}
		created = len(pending)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditFeedbackGenerated, strconv.Itoa(created)))

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Daily feedback tasks generated", slog.Int("count", created))

	return &usecase.Result[int]{Value: created}, nil
}
