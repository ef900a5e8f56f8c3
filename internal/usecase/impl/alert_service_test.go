package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	mockService "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	coreFixtures
	service   usecase.AlertUsecase
	email     *mockService.MockEmailSender
	publisher *mockService.MockEventPublisher
}

func createTestAlertService(t *testing.T, emailConfigured bool) alertServiceFixtures {
	state := entity.DefaultState()
	seedUsers(state)
	state.Complaints = []entity.Complaint{{
		ComplaintID:  "CMPT-1",
		CustomerName: "Mona",
		Type:         "Damaged item",
		Description:  "Torn seam",
		Status:       entity.ComplaintStatusEscalated,
		Priority:     entity.PriorityUrgent,
	}}
	state.SystemSettings.CompanyName = "Acme"
	if emailConfigured {
		state.SystemSettings.EmailJSServiceID = "service_1"
		state.SystemSettings.EmailJSTemplateID = "template_1"
		state.SystemSettings.EmailJSPublicKey = "public_1"
	}

	core := newCoreFixtures(t, state)
	email := mockService.NewMockEmailSender(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewAlertService(AlertServiceParams{
		Store:     core.store,
		Clock:     core.clock,
		IDs:       core.ids,
		Email:     email,
		Publisher: publisher,
		Texts:     core.texts,
		Logger:    core.logger,
	})

	return alertServiceFixtures{
		coreFixtures: core,
		service:      svc,
		email:        email,
		publisher:    publisher,
	}
}

func TestAlertService_Dispatch_Escalation(t *testing.T) {
	fx := createTestAlertService(t, true)

	fx.publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.AnythingOfType("*service.AlertEventMessage")).
		Run(func(_ context.Context, event *service.AlertEventMessage) {
			assert.Equal(t, entity.AlertEscalation, event.Kind)
			assert.Equal(t, "[Complaint escalated] CMPT-1", event.Subject)
			assert.Equal(t, []entity.Role{entity.RoleAccountsManager, entity.RoleGeneralManager}, []entity.Role(event.Roles))
		}).
		Return(nil)

	var sent []map[string]string
	fx.email.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.EmailRequest")).
		Run(func(_ context.Context, req *service.EmailRequest) {
			assert.Equal(t, "service_1", req.ServiceID)
			sent = append(sent, req.TemplateParams)
		}).
		Return(nil).
		Times(2)

	notices := fx.service.Dispatch(context.Background(), teamLeader, entity.AlertEscalation, "CMPT-1")

	require.Len(t, sent, 2)
	assert.Equal(t, "Hala", sent[0]["to_name"])
	assert.Equal(t, "hala@example.com", sent[0]["to_email"])
	assert.Equal(t, "Acme", sent[0]["from_name"])
	assert.Equal(t, "Karim", sent[1]["to_name"])

	assert.Equal(t, []entity.Notice{
		{Level: entity.NoticeSuccess, Message: "Alert sent to Hala"},
		{Level: entity.NoticeSuccess, Message: "Alert sent to Karim"},
	}, notices)

	details := activityDetails(fx.store.Snapshot())
	assert.Contains(t, details, "Sent complaint escalation alert email to Hala")
	assert.Contains(t, details, "Sent complaint escalation alert email to Karim")
}

func TestAlertService_Dispatch_SendFailure(t *testing.T) {
	fx := createTestAlertService(t, true)

	fx.publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker down"))
	fx.email.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(errors.New("quota exceeded")).
		Times(2)

	notices := fx.service.Dispatch(context.Background(), teamLeader, entity.AlertEscalation, "CMPT-1")

	require.Len(t, notices, 2)
	for _, n := range notices {
		assert.Equal(t, entity.NoticeError, n.Level)
	}
	assert.Contains(t, activityDetails(fx.store.Snapshot()),
		"Failed to send complaint escalation alert to Hala: quota exceeded")
}

func TestAlertService_Dispatch_Unconfigured(t *testing.T) {
	fx := createTestAlertService(t, false)

	fx.publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(nil)

	notices := fx.service.Dispatch(context.Background(), staffMember, entity.AlertUrgentNew, "CMPT-1")

	assert.Equal(t, []entity.Notice{
		{Level: entity.NoticeInfo, Message: "Email settings are incomplete, the alert was only logged"},
	}, notices)

	entry := fx.store.Snapshot().ActivityLog[0]
	assert.Equal(t, "user-st", entry.UserID)
	assert.Equal(t, "Alert (new urgent complaint) for recipients: Hala، Karim، Sara. No email was sent because email settings are incomplete", entry.Details)
}

func TestAlertService_Dispatch_NothingToDo(t *testing.T) {
	fx := createTestAlertService(t, true)
	before := fx.store.Snapshot()

	assert.Nil(t, fx.service.Dispatch(context.Background(), staffMember, entity.AlertUrgentNew, "CMPT-404"))
	assert.Same(t, before, fx.store.Snapshot())
}

func TestAlertService_Dispatch_NoRecipients(t *testing.T) {
	state := entity.DefaultState()
	state.Complaints = []entity.Complaint{{ComplaintID: "CMPT-1"}}
	core := newCoreFixtures(t, state)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.AnythingOfType("*service.AlertEventMessage")).
		Run(func(_ context.Context, event *service.AlertEventMessage) {
			assert.Equal(t, entity.AlertUrgentNew, event.Kind)
			assert.Equal(t, "CMPT-1", event.ComplaintID)
		}).
		Return(nil).
		Once()

	svc := NewAlertService(AlertServiceParams{
		Store:     core.store,
		Clock:     core.clock,
		IDs:       core.ids,
		Email:     mockService.NewMockEmailSender(t),
		Publisher: publisher,
		Texts:     core.texts,
		Logger:    core.logger,
	})

	assert.Nil(t, svc.Dispatch(context.Background(), staffMember, entity.AlertUrgentNew, "CMPT-1"))
	assert.Empty(t, core.store.Snapshot().ActivityLog)
}
