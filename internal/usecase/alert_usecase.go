package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
)

// AlertUsecase dispatches complaint alerts to staff. It never fails: every
// outcome is reported as an audit entry and a notice.
type AlertUsecase interface {
	Dispatch(ctx context.Context, actor entity.Actor, kind entity.AlertKind, complaintID string) []entity.Notice
}

// StaffAlertUsecase delivers exported alerts as push notifications
type StaffAlertUsecase interface {
	Deliver(ctx context.Context, event *service.AlertEventMessage) error
}
