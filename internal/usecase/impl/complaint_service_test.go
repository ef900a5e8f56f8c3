package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/workflow"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type complaintServiceFixtures struct {
	coreFixtures
	service usecase.ComplaintUsecase
	alerts  *mockUsecase.MockAlertUsecase
}

func createTestComplaintService(t *testing.T) complaintServiceFixtures {
	state := entity.DefaultState()
	seedUsers(state)
	seedCustomer(state, entity.Customer{ID: "CUST-0001", Name: "Mona", Phone: "0100"})
	state.Complaints = []entity.Complaint{
		{ComplaintID: "CMPT-OPEN", CustomerID: "CUST-0001", CustomerName: "Mona", Status: entity.ComplaintStatusOpen, Priority: entity.PriorityNormal},
		{ComplaintID: "CMPT-WIP", CustomerID: "CUST-0001", CustomerName: "Mona", Status: entity.ComplaintStatusInProgress, Priority: entity.PriorityMedium, AssignedTo: "user-tl"},
	}

	core := newCoreFixtures(t, state)
	alerts := mockUsecase.NewMockAlertUsecase(t)

	return complaintServiceFixtures{
		coreFixtures: core,
		service:      NewComplaintService(core.store, alerts, core.clock, core.ids, core.texts, core.logger),
		alerts:       alerts,
	}
}

func TestComplaintService_Register_Urgent(t *testing.T) {
	fx := createTestComplaintService(t)
	ctx := context.Background()

	dispatched := []entity.Notice{{Level: entity.NoticeSuccess, Message: "Alert sent to Hala"}}
	fx.alerts.EXPECT().
		Dispatch(mock.Anything, staffMember, entity.AlertUrgentNew, "CMPT-1").
		Return(dispatched)

	result, err := fx.service.Register(ctx, staffMember, workflow.NewComplaint{
		CustomerID:  "CUST-0001",
		Type:        "Damaged item",
		Priority:    entity.PriorityUrgent,
		Description: "Torn seam",
	})
	require.NoError(t, err)

	assert.Equal(t, "CMPT-1", result.Value.ComplaintID)
	assert.Equal(t, entity.ComplaintStatusOpen, result.Value.Status)
	assert.Equal(t, "Mona", result.Value.CustomerName)
	assert.Equal(t, testNow, result.Value.DateOpened)
	require.Len(t, result.Notices, 2)
	assert.Equal(t, "Complaint CMPT-1 registered", result.Notices[0].Message)
	assert.Equal(t, dispatched[0], result.Notices[1])

	state := fx.store.Snapshot()
	assert.Equal(t, "CMPT-1", state.Complaints[0].ComplaintID, "new complaints are listed first")
	assert.Contains(t, activityDetails(state), "Registered complaint CMPT-1 for customer Mona")
}

func TestComplaintService_Register_NormalDoesNotAlert(t *testing.T) {
	fx := createTestComplaintService(t)

	result, err := fx.service.Register(context.Background(), staffMember, workflow.NewComplaint{
		CustomerID:  "CUST-0001",
		Type:        "Late delivery",
		Description: "Two weeks late",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityNormal, result.Value.Priority)
	assert.Equal(t, entity.ChannelPhone, result.Value.Channel)
}

func TestComplaintService_Register_UnknownCustomer(t *testing.T) {
	fx := createTestComplaintService(t)
	before := fx.store.Snapshot()

	_, err := fx.service.Register(context.Background(), staffMember, workflow.NewComplaint{
		CustomerID:  "CUST-9999",
		Type:        "Other",
		Description: "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	assert.Same(t, before, fx.store.Snapshot(), "failed mutations commit nothing")
}

func TestComplaintService_Register_MissingFields(t *testing.T) {
	fx := createTestComplaintService(t)

	_, err := fx.service.Register(context.Background(), staffMember, workflow.NewComplaint{CustomerID: "CUST-0001"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestComplaintService_ApplyAction_ClaimsOpenComplaint(t *testing.T) {
	fx := createTestComplaintService(t)

	result, err := fx.service.ApplyAction(context.Background(), staffMember, "CMPT-OPEN",
		workflow.Command{Target: entity.ComplaintStatusInProgress})
	require.NoError(t, err)

	assert.Equal(t, entity.ComplaintStatusInProgress, result.Value.Status)
	assert.Equal(t, "user-st", result.Value.AssignedTo)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, "Complaint status updated to In progress", result.Notices[0].Message)

	stored, err := fx.service.Get(context.Background(), "CMPT-OPEN")
	require.NoError(t, err)
	assert.Equal(t, result.Value, *stored)
}

func TestComplaintService_ApplyAction_EscalationAlertsManagers(t *testing.T) {
	fx := createTestComplaintService(t)

	fx.alerts.EXPECT().
		Dispatch(mock.Anything, teamLeader, entity.AlertEscalation, "CMPT-WIP").
		Return(nil)

	result, err := fx.service.ApplyAction(context.Background(), teamLeader, "CMPT-WIP",
		workflow.Command{Target: entity.ComplaintStatusEscalated})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusEscalated, result.Value.Status)
}

func TestComplaintService_ApplyAction_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		id      string
		cmd     workflow.Command
		wantErr error
	}{
		{
			name:    "moderator is view only",
			actor:   moderator,
			id:      "CMPT-OPEN",
			cmd:     workflow.Command{Target: entity.ComplaintStatusInProgress},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "assigned to someone else",
			actor:   staffMember,
			id:      "CMPT-WIP",
			cmd:     workflow.Command{Target: entity.ComplaintStatusPendingCustomer, Note: "refund"},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:    "illegal edge",
			actor:   teamLeader,
			id:      "CMPT-WIP",
			cmd:     workflow.Command{Target: entity.ComplaintStatusResolved, Note: "done"},
			wantErr: domainerrors.ErrInvalidTransition,
		},
		{
			name:    "note required",
			actor:   teamLeader,
			id:      "CMPT-WIP",
			cmd:     workflow.Command{Target: entity.ComplaintStatusPendingCustomer},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown complaint",
			actor:   teamLeader,
			id:      "CMPT-404",
			cmd:     workflow.Command{Target: entity.ComplaintStatusInProgress},
			wantErr: domainerrors.ErrComplaintNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestComplaintService(t)
			before := fx.store.Snapshot()

			_, err := fx.service.ApplyAction(context.Background(), tt.actor, tt.id, tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Same(t, before, fx.store.Snapshot())
		})
	}
}

func TestComplaintService_AddLog(t *testing.T) {
	fx := createTestComplaintService(t)

	result, err := fx.service.AddLog(context.Background(), moderator, "CMPT-OPEN", "  customer called again ")
	require.NoError(t, err)

	last := result.Value.Log[len(result.Value.Log)-1]
	assert.Equal(t, "Nour", last.User)
	assert.Equal(t, "customer called again", last.Action)
	assert.Equal(t, entity.ComplaintStatusOpen, result.Value.Status)

	_, err = fx.service.AddLog(context.Background(), moderator, "CMPT-OPEN", " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestComplaintService_List(t *testing.T) {
	fx := createTestComplaintService(t)
	ctx := context.Background()

	all, err := fx.service.List(ctx, usecase.ComplaintFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := fx.service.List(ctx, usecase.ComplaintFilter{AssignedTo: "user-tl"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "CMPT-WIP", mine[0].ComplaintID)

	open, err := fx.service.List(ctx, usecase.ComplaintFilter{Status: entity.ComplaintStatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "CMPT-OPEN", open[0].ComplaintID)
}

func TestComplaintService_AllowedActions(t *testing.T) {
	fx := createTestComplaintService(t)
	ctx := context.Background()

	options, err := fx.service.AllowedActions(ctx, teamLeader, "CMPT-WIP")
	require.NoError(t, err)
	assert.Equal(t, []workflow.Option{
		{Target: entity.ComplaintStatusPendingCustomer, RequiresNote: true},
		{Target: entity.ComplaintStatusEscalated},
	}, options)

	options, err = fx.service.AllowedActions(ctx, staffMember, "CMPT-WIP")
	require.NoError(t, err)
	assert.Empty(t, options, "complaint is owned by another user")

	_, err = fx.service.AllowedActions(ctx, staffMember, "CMPT-404")
	assert.ErrorIs(t, err, domainerrors.ErrComplaintNotFound)
}
