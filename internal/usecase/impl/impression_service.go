package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/impression"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type impressionService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	ids    service.IDGenerator
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewImpressionService creates a new impression service instance
func NewImpressionService(
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.ImpressionUsecase {
	return &impressionService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids},
		clock:  clock,
		ids:    ids,
		texts:  texts,
		logger: logger,
	}
}

func (srv *impressionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores a customer impression and the follow-up work it implies
func (srv *impressionService) Record(
	ctx context.Context,
	actor entity.Actor,
	customerID string,
	imp entity.CustomerImpression,
) (*usecase.Result[usecase.ImpressionOutcome], error) {
	var (
		outcome usecase.ImpressionOutcome
		notices []entity.Notice
	)

	if imp.ID == "" {
		imp.ID = srv.ids.New("imp-")
	}

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		customer, ok := state.FindCustomer(customerID)
		if !ok {
			return domainerrors.ErrCustomerNotFound
		}

		res, err := impression.Record(customer, imp, impression.Input{
			Actor:      actor,
			Branches:   state.Branches,
			Tasks:      state.DailyFeedbackTasks,
			FollowUpID: srv.ids.New("follow-"),
			Now:        srv.clock.Now(),
			Texts:      srv.texts,
		})
		if err != nil {
			return err
		}

		state.PutCustomer(res.Customer)
		if res.FollowUp != nil {
			state.PutFollowUpTask(*res.FollowUp)
		}
		for _, task := range res.CompletedTasks {
			state.PutDailyFeedbackTask(task)
		}
		notices, _ = srv.runner.apply(state, actor, res.Effects)

		outcome = usecase.ImpressionOutcome{
			Customer:            res.Customer,
			FollowUp:            res.FollowUp,
			CompletedInvoiceIDs: res.CompletedInvoiceIDs(),
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Impression recorded",
		slog.String("customer_id", customerID),
		slog.Bool("follow_up", outcome.FollowUp != nil),
		slog.Int("completed_tasks", len(outcome.CompletedInvoiceIDs)),
	)

	return &usecase.Result[usecase.ImpressionOutcome]{Value: outcome, Notices: notices}, nil
}
