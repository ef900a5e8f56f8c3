package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	UserUC    usecase.UserUsecase
	Logger    *slog.Logger
}

// CatalogHandler exposes branches, products, daily inquiries and staff accounts
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	userUC    usecase.UserUsecase
	logger    *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		userUC:    params.UserUC,
		logger:    params.Logger,
	}
}

func (h *CatalogHandler) ListBranches(c echo.Context) error {
	branches, err := h.catalogUC.ListBranches(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, branches)
}

// SaveBranch creates a branch, or updates it when the id exists
func (h *CatalogHandler) SaveBranch(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req entity.Branch
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}

	branch, err := h.catalogUC.SaveBranch(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, branch)
}

// ListProducts supports ?lowStock=true to list products under their alert limit
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	lowStock := false
	if raw := c.QueryParam("lowStock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "lowStock must be a boolean")
		}
		lowStock = parsed
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), lowStock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *CatalogHandler) SaveProduct(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req entity.Product
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.catalogUC.SaveProduct(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *CatalogHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.catalogUC.ListInquiries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inquiries)
}

func (h *CatalogHandler) AddInquiry(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req entity.DailyInquiry
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}

	inquiry, err := h.catalogUC.AddInquiry(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, inquiry)
}

func (h *CatalogHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// SaveUser creates a staff account, or updates it when an id is given
func (h *CatalogHandler) SaveUser(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req usecase.UserInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userUC.Save(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
