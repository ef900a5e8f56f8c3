package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	mockService "crm/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertEvent() *service.AlertEventMessage {
	return &service.AlertEventMessage{
		RequestID: "req-1",
		AlertEvent: entity.AlertEvent{
			Kind:        entity.AlertEscalation,
			ComplaintID: "CMPT-1",
			Subject:     "[Complaint escalated] CMPT-1",
			Message:     "body",
			Roles:       entity.Roles{entity.RoleAccountsManager, entity.RoleGeneralManager},
		},
	}
}

func TestRoleTopic(t *testing.T) {
	assert.Equal(t, "crm-role-general_manager", RoleTopic(entity.RoleGeneralManager))
	assert.Equal(t, "crm-role-team_leader", RoleTopic(entity.RoleTeamLeader))
}

func TestStaffAlertService_Deliver(t *testing.T) {
	notifier := mockService.NewMockNotificationService(t)
	svc := NewStaffAlertService(notifier, newDiscardLogger())
	ctx := context.Background()

	data := map[string]string{"kind": "ESCALATION", "complaint_id": "CMPT-1", "request_id": "req-1"}
	notifier.EXPECT().
		SendToTopic(ctx, "crm-role-accounts_manager", "[Complaint escalated] CMPT-1", "body", data).
		Return(nil)
	notifier.EXPECT().
		SendToTopic(ctx, "crm-role-general_manager", "[Complaint escalated] CMPT-1", "body", data).
		Return(nil)

	require.NoError(t, svc.Deliver(ctx, alertEvent()))
}

func TestStaffAlertService_Deliver_PartialFailure(t *testing.T) {
	notifier := mockService.NewMockNotificationService(t)
	svc := NewStaffAlertService(notifier, newDiscardLogger())
	ctx := context.Background()

	notifier.EXPECT().
		SendToTopic(ctx, "crm-role-accounts_manager", "[Complaint escalated] CMPT-1", "body", map[string]string{
			"kind": "ESCALATION", "complaint_id": "CMPT-1", "request_id": "req-1",
		}).
		Return(errors.New("fcm unavailable"))
	notifier.EXPECT().
		SendToTopic(ctx, "crm-role-general_manager", "[Complaint escalated] CMPT-1", "body", map[string]string{
			"kind": "ESCALATION", "complaint_id": "CMPT-1", "request_id": "req-1",
		}).
		Return(nil)

	err := svc.Deliver(ctx, alertEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic crm-role-accounts_manager")
	assert.Contains(t, err.Error(), "fcm unavailable")
}

func TestStaffAlertService_Deliver_NoRoles(t *testing.T) {
	svc := NewStaffAlertService(mockService.NewMockNotificationService(t), newDiscardLogger())

	assert.NoError(t, svc.Deliver(context.Background(), nil))
	assert.NoError(t, svc.Deliver(context.Background(), &service.AlertEventMessage{}))
}
