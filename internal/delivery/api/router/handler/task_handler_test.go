package handler

import (
	"net/http"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type taskHandlerFixtures struct {
	e      *echo.Echo
	taskUC *mockUsecase.MockTaskUsecase
}

func createTestTaskHandler(t *testing.T) taskHandlerFixtures {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	e := newTestEcho(managerClaims)
	e.GET("/follow-ups", h.ListFollowUps)
	e.POST("/follow-ups/:id/resolve", h.ResolveFollowUp)
	e.GET("/feedback-tasks", h.ListFeedbackTasks)
	e.POST("/feedback-tasks/generate", h.GenerateFeedbackTasks)

	return taskHandlerFixtures{e: e, taskUC: taskUC}
}

func TestTaskHandler_FollowUps(t *testing.T) {
	fx := createTestTaskHandler(t)

	fx.taskUC.EXPECT().ListFollowUps(mock.Anything, entity.FollowUpPending).
		Return([]entity.FollowUpTask{{ID: "FU-1"}}, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/follow-ups?status="+string(entity.FollowUpPending), nil)
	mustStatus(t, rec, http.StatusOK)

	fx.taskUC.EXPECT().ResolveFollowUp(mock.Anything, manager, "FU-1", "customer satisfied").
		Return(&usecase.Result[entity.FollowUpTask]{Value: entity.FollowUpTask{ID: "FU-1", Status: entity.FollowUpDone}}, nil)

	rec = serveJSON(t, fx.e, http.MethodPost, "/follow-ups/FU-1/resolve", ResolveFollowUpRequest{Notes: "customer satisfied"})
	mustStatus(t, rec, http.StatusOK)

	var task entity.FollowUpTask
	decodeSuccess(t, rec, &task)
	assert.Equal(t, entity.FollowUpDone, task.Status)

	fx.taskUC.EXPECT().ResolveFollowUp(mock.Anything, manager, "FU-1", "").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("resolution notes are required"))

	rec = serveJSON(t, fx.e, http.MethodPost, "/follow-ups/FU-1/resolve", ResolveFollowUpRequest{})
	mustStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "resolution notes are required", decodeError(t, rec).Details)
}

func TestTaskHandler_FeedbackTasks(t *testing.T) {
	fx := createTestTaskHandler(t)

	fx.taskUC.EXPECT().ListFeedbackTasks(mock.Anything, entity.DailyFeedbackStatus("")).
		Return([]entity.DailyFeedbackTask{{ID: "fb-INV-1"}}, nil)

	rec := serveJSON(t, fx.e, http.MethodGet, "/feedback-tasks", nil)
	mustStatus(t, rec, http.StatusOK)

	fx.taskUC.EXPECT().GenerateFeedbackTasks(mock.Anything, manager).
		Return(&usecase.Result[int]{Value: 3}, nil)

	rec = serveJSON(t, fx.e, http.MethodPost, "/feedback-tasks/generate", nil)
	mustStatus(t, rec, http.StatusOK)

	var created map[string]int
	decodeSuccess(t, rec, &created)
	assert.Equal(t, 3, created["created"])
}
