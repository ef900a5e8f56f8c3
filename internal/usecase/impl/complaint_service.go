package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/domain/workflow"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type complaintService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	ids    service.IDGenerator
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(
	store usecase.StateStore,
	alerts usecase.AlertUsecase,
	clock service.Clock,
	ids service.IDGenerator,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.ComplaintUsecase {
	return &complaintService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids, alerts: alerts},
		clock:  clock,
		ids:    ids,
		texts:  texts,
		logger: logger,
	}
}

func (srv *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *complaintService) env(actor entity.Actor) workflow.Env {
	return workflow.Env{Actor: actor, Now: srv.clock.Now(), Texts: srv.texts}
}

// List returns complaints newest first
func (srv *complaintService) List(_ context.Context, filter usecase.ComplaintFilter) ([]entity.Complaint, error) {
	state := srv.store.Snapshot()

	out := make([]entity.Complaint, 0, len(state.Complaints))
	for _, c := range state.Complaints {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && c.Priority != filter.Priority {
			continue
		}
		if filter.AssignedTo != "" && c.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.CustomerID != "" && c.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

// Get returns one complaint
func (srv *complaintService) Get(_ context.Context, id string) (*entity.Complaint, error) {
	c, ok := srv.store.Snapshot().FindComplaint(id)
	if !ok {
		return nil, domainerrors.ErrComplaintNotFound
	}

	return &c, nil
}

// Register opens a new complaint and alerts managers when it is urgent
func (srv *complaintService) Register(ctx context.Context, actor entity.Actor, in workflow.NewComplaint) (*usecase.Result[entity.Complaint], error) {
	var (
		created  entity.Complaint
		notices  []entity.Notice
		notifies []effect.Notify
	)

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		if err := in.Validate(); err != nil {
			return err
		}
		customer, ok := state.FindCustomer(in.CustomerID)
		if !ok {
			return domainerrors.ErrCustomerNotFound
		}

		c, effects, err := workflow.Register(in, customer, srv.ids.New("CMPT-"), srv.env(actor))
		if err != nil {
			return err
		}
		state.PutComplaint(c)
		created = c
		notices, notifies = srv.runner.apply(state, actor, effects)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register complaint", slog.Any("error", err), slog.String("customer_id", in.CustomerID))

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Complaint registered",
		slog.String("complaint_id", created.ComplaintID),
		slog.String("priority", string(created.Priority)),
	)

	notices = append(notices, srv.runner.dispatch(ctx, actor, notifies)...)

	return &usecase.Result[entity.Complaint]{Value: created, Notices: notices}, nil
}

// ApplyAction moves a complaint to another status
func (srv *complaintService) ApplyAction(ctx context.Context, actor entity.Actor, id string, cmd workflow.Command) (*usecase.Result[entity.Complaint], error) {
	var (
		updated  entity.Complaint
		notices  []entity.Notice
		notifies []effect.Notify
	)

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		current, ok := state.FindComplaint(id)
		if !ok {
			return domainerrors.ErrComplaintNotFound
		}

		next, effects, err := workflow.Transition(current, cmd, srv.env(actor))
		if err != nil {
			return err
		}
		state.PutComplaint(next)
		updated = next
		notices, notifies = srv.runner.apply(state, actor, effects)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Complaint transition rejected",
			slog.Any("error", err),
			slog.String("complaint_id", id),
			slog.String("target", cmd.Target.Key()),
			slog.String("role", actor.Role.Key()),
		)

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Complaint transitioned", slog.String("complaint_id", id), slog.String("status", updated.Status.Key()))

	notices = append(notices, srv.runner.dispatch(ctx, actor, notifies)...)

	return &usecase.Result[entity.Complaint]{Value: updated, Notices: notices}, nil
}

// AddLog appends a note to the complaint log
func (srv *complaintService) AddLog(ctx context.Context, actor entity.Actor, id, note string) (*usecase.Result[entity.Complaint], error) {
	var (
		updated entity.Complaint
		notices []entity.Notice
	)

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		current, ok := state.FindComplaint(id)
		if !ok {
			return domainerrors.ErrComplaintNotFound
		}

		next, effects, err := workflow.AddNote(current, note, srv.env(actor))
		if err != nil {
			return err
		}
		state.PutComplaint(next)
		updated = next
		notices, _ = srv.runner.apply(state, actor, effects)

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.Result[entity.Complaint]{Value: updated, Notices: notices}, nil
}

// AllowedActions lists the transitions the actor may take on the complaint
func (srv *complaintService) AllowedActions(_ context.Context, actor entity.Actor, id string) ([]workflow.Option, error) {
	c, ok := srv.store.Snapshot().FindComplaint(id)
	if !ok {
		return nil, domainerrors.ErrComplaintNotFound
	}

	if !workflow.Owns(c, actor) {
		return []workflow.Option{}, nil
	}

	return workflow.AllowedTargets(actor.Role, c.Status), nil
}
