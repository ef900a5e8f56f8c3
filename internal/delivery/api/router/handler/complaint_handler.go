package handler

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/workflow"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

// ComplaintHandler exposes the complaint lifecycle
type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// RegisterComplaintRequest represents the request body for opening a complaint
type RegisterComplaintRequest struct {
	CustomerID   string                   `json:"customerId" validate:"required"`
	Channel      entity.ComplaintChannel  `json:"channel"`
	Type         string                   `json:"type" validate:"required"`
	Priority     entity.ComplaintPriority `json:"priority"`
	Description  string                   `json:"description" validate:"required"`
	ProductID    string                   `json:"productId"`
	ProductColor string                   `json:"productColor"`
	ProductSize  string                   `json:"productSize"`
	Attachments  []string                 `json:"attachments"`
}

// TransitionRequest asks for a status change. Status accepts the stored value or its ASCII key.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// AddLogRequest represents the request body for a complaint note
type AddLogRequest struct {
	Note string `json:"note"`
}

// ListComplaints lists complaints newest first, filtered by query parameters
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	filter := usecase.ComplaintFilter{
		Priority:   entity.ComplaintPriority(c.QueryParam("priority")),
		AssignedTo: c.QueryParam("assignedTo"),
		CustomerID: c.QueryParam("customerId"),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := entity.ComplaintStatusFromKey(raw)
		if !ok {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown complaint status")
		}
		filter.Status = status
	}

	complaints, err := h.complaintUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaints)
}

// GetComplaint returns one complaint with the actions the caller may take on it
func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	ctx := c.Request().Context()
	complaint, err := h.complaintUC.Get(ctx, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	actions, err := h.complaintUC.AllowedActions(ctx, actor, complaint.ComplaintID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"complaint":      complaint,
		"allowedActions": actions,
	})
}

// RegisterComplaint opens a new complaint
func (h *ComplaintHandler) RegisterComplaint(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req RegisterComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.complaintUC.Register(c.Request().Context(), actor, workflow.NewComplaint{
		CustomerID:   req.CustomerID,
		Channel:      req.Channel,
		Type:         req.Type,
		Priority:     req.Priority,
		Description:  req.Description,
		ProductID:    req.ProductID,
		ProductColor: req.ProductColor,
		ProductSize:  req.ProductSize,
		Attachments:  req.Attachments,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, result.Value, result.Notices)
}

// ApplyTransition moves a complaint to another status
func (h *ComplaintHandler) ApplyTransition(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	target, ok := entity.ComplaintStatusFromKey(req.Status)
	if !ok {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown complaint status")
	}

	result, err := h.complaintUC.ApplyAction(c.Request().Context(), actor, c.Param("id"), workflow.Command{
		Target: target,
		Note:   req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}

// AddLog appends a note to the complaint log
func (h *ComplaintHandler) AddLog(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req AddLogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	result, err := h.complaintUC.AddLog(c.Request().Context(), actor, c.Param("id"), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}
