package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC   usecase.CustomerUsecase
	ImpressionUC usecase.ImpressionUsecase
	ImportUC     usecase.ImportUsecase
	Logger       *slog.Logger
}

// CustomerHandler exposes customer profiles, the loyalty ledger and feedback
type CustomerHandler struct {
	customerUC   usecase.CustomerUsecase
	impressionUC usecase.ImpressionUsecase
	importUC     usecase.ImportUsecase
	logger       *slog.Logger
}

func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC:   params.CustomerUC,
		impressionUC: params.ImpressionUC,
		importUC:     params.ImportUC,
		logger:       params.Logger,
	}
}

// PointsRequest represents a grant or deduction of points
type PointsRequest struct {
	Amount int    `json:"amount" validate:"gt=0,lte=1000000000"`
	Reason string `json:"reason" validate:"required"`
}

// LegacyBalanceRequest converts a paper-era currency balance
type LegacyBalanceRequest struct {
	Amount float64 `json:"amount" validate:"gt=0,lte=1000000000000"`
	Note   string  `json:"note"`
}

// RedeemVoucherRequest represents a voucher redemption
type RedeemVoucherRequest struct {
	Points int `json:"points" validate:"gt=0"`
}

// ImpressionRequest represents a rated customer feedback
type ImpressionRequest struct {
	ProductQualityRating   int                     `json:"productQualityRating" validate:"min=1,max=5"`
	ProductQualityNotes    string                  `json:"productQualityNotes"`
	BranchExperienceRating int                     `json:"branchExperienceRating" validate:"min=1,max=5"`
	BranchExperienceNotes  string                  `json:"branchExperienceNotes"`
	DiscoveryChannel       entity.DiscoveryChannel `json:"discoveryChannel"`
	IsFirstVisit           bool                    `json:"isFirstVisit"`
	RelatedInvoiceIDs      []string                `json:"relatedInvoiceIds"`
	BranchID               string                  `json:"branchId"`
	VisitTime              string                  `json:"visitTime"`
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.List(c.Request().Context(), usecase.CustomerFilter{
		Query:          c.QueryParam("q"),
		Classification: entity.Classification(c.QueryParam("classification")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customer, err := h.customerUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// CreateCustomer registers a customer manually
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req usecase.NewCustomer
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.customerUC.Create(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, result.Value, result.Notices)
}

func (h *CustomerHandler) GrantPoints(c echo.Context) error {
	return h.changePoints(c, h.customerUC.GrantPoints)
}

// DeductPoints fails with INSUFFICIENT_BALANCE when the customer cannot cover the amount
func (h *CustomerHandler) DeductPoints(c echo.Context) error {
	return h.changePoints(c, h.customerUC.DeductPoints)
}

type pointsOperation func(ctx context.Context, actor entity.Actor, id string, amount int, reason string) (*usecase.Result[entity.Customer], error)

func (h *CustomerHandler) changePoints(c echo.Context, op pointsOperation) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req PointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid points input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := op(c.Request().Context(), actor, c.Param("id"), req.Amount, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}

func (h *CustomerHandler) AddLegacyBalance(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req LegacyBalanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid balance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.customerUC.AddLegacyBalance(c.Request().Context(), actor, c.Param("id"), req.Amount, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}

func (h *CustomerHandler) GrantVideoReward(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	result, err := h.customerUC.GrantVideoReward(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}

// RedeemVoucher converts points into a discount voucher
func (h *CustomerHandler) RedeemVoucher(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req RedeemVoucherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.customerUC.RedeemVoucher(c.Request().Context(), actor, c.Param("id"), req.Points)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, result.Value, result.Notices)
}

// VoucherQR renders the voucher code as a PNG
func (h *CustomerHandler) VoucherQR(c echo.Context) error {
	png, err := h.customerUC.VoucherQR(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// RecordImpression stores a customer feedback and completes the related daily tasks
func (h *CustomerHandler) RecordImpression(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	var req ImpressionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid impression input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.impressionUC.Record(c.Request().Context(), actor, c.Param("id"), entity.CustomerImpression{
		ProductQualityRating:   req.ProductQualityRating,
		ProductQualityNotes:    req.ProductQualityNotes,
		BranchExperienceRating: req.BranchExperienceRating,
		BranchExperienceNotes:  req.BranchExperienceNotes,
		DiscoveryChannel:       req.DiscoveryChannel,
		IsFirstVisit:           req.IsFirstVisit,
		RelatedInvoiceIDs:      req.RelatedInvoiceIDs,
		BranchID:               req.BranchID,
		VisitTime:              req.VisitTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, result.Value, result.Notices)
}

// ImportCustomers merges an uploaded CSV. The form carries the file under
// "file" and the column mapping as a JSON object under "mapping".
func (h *CustomerHandler) ImportCustomers(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Session claims missing")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A CSV file is required")
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(c.FormValue("mapping")), &mapping); err != nil {
		return response.BadRequest(c, "INVALID_MAPPING", "mapping must be a JSON object of column to field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "The uploaded file cannot be read")
	}
	defer file.Close()

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Importing customers",
		slog.String("file", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
	)

	result, err := h.importUC.ImportCSV(c.Request().Context(), actor, file, mapping)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, result.Value, result.Notices)
}
