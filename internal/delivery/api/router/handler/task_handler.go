package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler exposes follow-up and daily feedback tasks
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// ResolveFollowUpRequest represents the resolution of a follow-up task
type ResolveFollowUpRequest struct {
	Notes string `json:"notes"`
}

func (h *TaskHandler) ListFollowUps(c echo.Context) error {
	tasks, err := h.taskUC.ListFollowUps(c.Request().Context(), entity.FollowUpStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tasks)
}

// ResolveFollowUp closes a follow-up task with the resolution notes
func (h *TaskHandler) ResolveFollowUp(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req ResolveFollowUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolution input")
	}

	result, err := h.taskUC.ResolveFollowUp(c.Request().Context(), actor, c.Param("id"), req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}

func (h *TaskHandler) ListFeedbackTasks(c echo.Context) error {
	tasks, err := h.taskUC.ListFeedbackTasks(c.Request().Context(), entity.DailyFeedbackStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tasks)
}

// GenerateFeedbackTasks creates the missing daily feedback calls
func (h *TaskHandler) GenerateFeedbackTasks(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	result, err := h.taskUC.GenerateFeedbackTasks(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, map[string]int{"created": result.Value}, result.Notices)
}
