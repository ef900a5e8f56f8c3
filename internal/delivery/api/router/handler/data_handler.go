package handler

import (
	"io"
	"log/slog"
	"net/http"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/snapshot"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DataHandlerParams holds dependencies for DataHandler, injected by Fx.
type DataHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Repo   repository.StateRepository
	Logger *slog.Logger
}

// DataHandler serves the whole-snapshot endpoints used by older clients and peer servers
type DataHandler struct {
	syncUC usecase.SyncUsecase
	repo   repository.StateRepository
	logger *slog.Logger
}

func NewDataHandler(params DataHandlerParams) *DataHandler {
	return &DataHandler{
		syncUC: params.SyncUC,
		repo:   params.Repo,
		logger: params.Logger,
	}
}

// GetData returns the stored snapshot, or {} when nothing has been saved yet
func (h *DataHandler) GetData(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	state, err := h.repo.Load(ctx)
	if errors.Is(err, repository.ErrStateNotFound) {
		return c.JSONBlob(http.StatusOK, []byte("{}"))
	}
	if err != nil {
		logger.Error("Failed to read stored state", slog.Any("error", err))

		return c.String(http.StatusInternalServerError, "Error reading data")
	}

	data, err := snapshot.Encode(state, false)
	if err != nil {
		logger.Error("Failed to encode stored state", slog.Any("error", err))

		return c.String(http.StatusInternalServerError, "Error reading data")
	}

	return c.JSONBlob(http.StatusOK, data)
}

// PostData replaces the whole state, saves it and broadcasts it to live clients
func (h *DataHandler) PostData(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, "No data provided")
	}

	state, err := snapshot.Decode(body)
	if err != nil {
		if !errors.Is(err, snapshot.ErrEmptyDocument) {
			logger.Warn("Rejected malformed snapshot", slog.Any("error", err))
		}

		return c.String(http.StatusBadRequest, "No data provided")
	}

	if err := h.syncUC.ReplaceState(ctx, state); err != nil {
		if errors.Is(err, domainerrors.ErrEmptySnapshot) {
			return c.String(http.StatusBadRequest, "No data provided")
		}
		logger.Error("Failed to save posted state", slog.Any("error", err))

		return c.String(http.StatusInternalServerError, "Error saving data")
	}

	return c.String(http.StatusOK, "Data saved successfully")
}

// SyncStatus reports the persistence and live channel state
func (h *DataHandler) SyncStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.syncUC.Status())
}

// HealthCheck reports liveness together with the save status
func (h *DataHandler) HealthCheck(c echo.Context) error {
	status := h.syncUC.Status()

	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"save":       status.Save,
		"connection": status.Connection,
	})
}
