package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/errors"
	"crm/internal/usecase"
)

// RoleTopicPrefix prefixes the push topic each staff role's devices subscribe to.
const RoleTopicPrefix = "crm-role-"

type staffAlertService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewStaffAlertService creates the push delivery side of complaint alerts
func NewStaffAlertService(notificationSvc service.NotificationService, logger *slog.Logger) usecase.StaffAlertUsecase {
	return &staffAlertService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (srv *staffAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RoleTopic returns the push topic of role.
func RoleTopic(role entity.Role) string {
	return RoleTopicPrefix + role.Key()
}

// Deliver pushes the alert to the topic of every alerted role. A failure on
// one topic does not stop the others.
func (srv *staffAlertService) Deliver(ctx context.Context, event *service.AlertEventMessage) error {
	if event == nil || len(event.Roles) == 0 {
		return nil
	}

	data := map[string]string{
		"kind":         string(event.Kind),
		"complaint_id": event.ComplaintID,
	}
	if event.RequestID != "" {
		data["request_id"] = event.RequestID
	}

	var errs []error
	for _, role := range event.Roles {
		topic := RoleTopic(role)
		if err := srv.notificationSvc.SendToTopic(ctx, topic, event.Subject, event.Message, data); err != nil {
			srv.log(ctx).Error("Failed to push alert", slog.Any("error", err), slog.String("topic", topic))
			errs = append(errs, errors.Wrapf(err, "topic %s", topic))

			continue
		}
		srv.log(ctx).Info("Alert pushed", slog.String("topic", topic), slog.String("complaint_id", event.ComplaintID))
	}

	return errors.Join(errs...)
}
