package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	"crm/internal/domain/i18n"
	"crm/internal/domain/lifecycle"
	"crm/internal/domain/notify"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"go.uber.org/fx"
)

// alertService sends complaint alerts by email and exports them for push delivery.
type alertService struct {
	store     usecase.StateStore
	runner    *effectRunner
	email     service.EmailSender
	publisher service.EventPublisher
	texts     *i18n.Texts
	logger    *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	Store     usecase.StateStore
	Clock     service.Clock
	IDs       service.IDGenerator
	Email     service.EmailSender
	Publisher service.EventPublisher
	Texts     *i18n.Texts
	Logger    *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		store:     params.Store,
		runner:    &effectRunner{clock: params.Clock, ids: params.IDs},
		email:     params.Email,
		publisher: params.Publisher,
		texts:     params.Texts,
		logger:    params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch alerts the staff responsible for kind about a complaint. Every
// outcome becomes an audit entry and a notice; nothing is returned as error.
func (srv *alertService) Dispatch(ctx context.Context, actor entity.Actor, kind entity.AlertKind, complaintID string) []entity.Notice {
	state := srv.store.Snapshot()

	complaint, ok := state.FindComplaint(complaintID)
	if !ok {
		srv.log(ctx).Warn("Alert skipped, complaint not found", slog.String("complaint_id", complaintID))

		return nil
	}

	// Sends outlive the request that triggered them.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	// Push delivery targets roles and does not depend on email recipients.
	msg := notify.Compose(complaint, kind, srv.texts)
	srv.export(sendCtx, complaint, kind, msg)

	recipients := notify.Recipients(state.Users, kind)
	if len(recipients) == 0 {
		srv.log(ctx).Info("Alert has no email recipients", slog.String("kind", string(kind)), slog.String("complaint_id", complaintID))

		return nil
	}

	settings := state.SystemSettings
	label := srv.texts.Alert(kind)

	var effects []effect.Effect
	if !settings.EmailConfigured() {
		effects = append(effects,
			effect.Audit{Details: srv.texts.T(i18n.AlertUnconfigured, label, notify.Names(recipients))},
			effect.Info(srv.texts.T(i18n.NoticeEmailIncomplete)),
		)
		srv.log(ctx).Warn("Email settings incomplete, alert logged only",
			slog.String("kind", string(kind)),
			slog.Int("recipients", len(recipients)),
		)
	} else {
		for _, to := range recipients {
			effects = append(effects, srv.send(sendCtx, to, msg, settings, label)...)
		}
	}

	var notices []entity.Notice
	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		notices, _ = srv.runner.apply(state, actor, effects)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record alert outcome", slog.Any("error", err))
	}

	return notices
}

// send delivers msg to one recipient and describes the outcome as effects.
func (srv *alertService) send(ctx context.Context, to entity.User, msg notify.Message, settings entity.SystemSettings, label string) []effect.Effect {
	err := srv.email.Send(ctx, &service.EmailRequest{
		ServiceID:      settings.EmailJSServiceID,
		TemplateID:     settings.EmailJSTemplateID,
		PublicKey:      settings.EmailJSPublicKey,
		TemplateParams: notify.TemplateParams(to, msg, settings),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send alert email", slog.Any("error", err), slog.String("user_id", to.ID))

		return []effect.Effect{
			effect.Audit{Details: srv.texts.T(i18n.AlertFailed, label, to.Name, err.Error())},
			effect.Notice{Level: entity.NoticeError, Message: srv.texts.T(i18n.NoticeAlertFailed, to.Name)},
		}
	}
	srv.log(ctx).Info("Alert email sent", slog.String("user_id", to.ID))

	return []effect.Effect{
		effect.Audit{Details: srv.texts.T(i18n.AlertSent, label, to.Name)},
		effect.Success(srv.texts.T(i18n.NoticeAlertSent, to.Name)),
	}
}

// export publishes the alert for push delivery. Failures are logged only.
func (srv *alertService) export(ctx context.Context, c entity.Complaint, kind entity.AlertKind, msg notify.Message) {
	if srv.publisher == nil {
		return
	}

	event := &service.AlertEventMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertEvent: entity.AlertEvent{
			Kind:         kind,
			ComplaintID:  c.ComplaintID,
			CustomerName: c.CustomerName,
			Subject:      msg.Subject,
			Message:      msg.Body,
			Roles:        notify.RolesFor(kind),
		},
	}
	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to export alert event", slog.Any("error", err), slog.String("complaint_id", c.ComplaintID))
	}
}
