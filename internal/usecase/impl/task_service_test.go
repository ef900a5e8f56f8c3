package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskServiceFixtures struct {
	coreFixtures
	service usecase.TaskUsecase
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	state := entity.DefaultState()
	seedCustomer(state, entity.Customer{
		ID:    "CUST-0001",
		Name:  "Mona",
		Phone: "0100",
		Log: []entity.CustomerLogEntry{
			{InvoiceID: "INV-2", Date: testNow.Add(-24 * time.Hour), Amount: 200, Status: entity.OrderStatusDelivered},
			{InvoiceID: "INV-1", Date: testNow.Add(-10 * 24 * time.Hour), Amount: 100, Status: entity.OrderStatusDelivered},
		},
	})
	state.FollowUpTasks = []entity.FollowUpTask{
		{ID: "follow-1", CustomerID: "CUST-0001", Status: entity.FollowUpPending},
		{ID: "follow-0", CustomerID: "CUST-0001", Status: entity.FollowUpDone},
	}

	core := newCoreFixtures(t, state)

	return taskServiceFixtures{
		coreFixtures: core,
		service:      NewTaskService(newTestConfig(), core.store, core.clock, core.ids, core.texts, core.logger),
	}
}

func TestTaskService_ResolveFollowUp(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	result, err := fx.service.ResolveFollowUp(ctx, staffMember, "follow-1", "customer is happy")
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpDone, result.Value.Status)
	assert.Equal(t, "user-st", result.Value.AssignedTo)

	pending, err := fx.service.ListFollowUps(ctx, entity.FollowUpPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.Contains(t, activityDetails(fx.store.Snapshot()), "Resolved follow-up task follow-1")
}

func TestTaskService_ResolveFollowUp_Rejected(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	_, err := fx.service.ResolveFollowUp(ctx, moderator, "follow-1", "notes")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)

	_, err = fx.service.ResolveFollowUp(ctx, staffMember, "follow-404", "notes")
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)

	_, err = fx.service.ResolveFollowUp(ctx, staffMember, "follow-0", "notes")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestTaskService_GenerateFeedbackTasks(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()

	result, err := fx.service.GenerateFeedbackTasks(ctx, staffMember)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Value, "only invoices inside the window")

	tasks, err := fx.service.ListFeedbackTasks(ctx, entity.DailyFeedbackPending)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "dft-INV-2", tasks[0].ID)

	again, err := fx.service.GenerateFeedbackTasks(ctx, staffMember)
	require.NoError(t, err)
	assert.Zero(t, again.Value)

	completed, err := fx.service.ListFeedbackTasks(ctx, entity.DailyFeedbackCompleted)
	require.NoError(t, err)
	assert.Empty(t, completed)
}
