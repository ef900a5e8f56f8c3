package handler

import (
	"context"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	mockRepo "crm/internal/mocks/repository"
	mockUsecase "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dataHandlerFixtures struct {
	e      *echo.Echo
	syncUC *mockUsecase.MockSyncUsecase
	repo   *mockRepo.MockStateRepository
}

func createTestDataHandler(t *testing.T) dataHandlerFixtures {
	syncUC := mockUsecase.NewMockSyncUsecase(t)
	repo := mockRepo.NewMockStateRepository(t)
	h := NewDataHandler(DataHandlerParams{SyncUC: syncUC, Repo: repo, Logger: newDiscardLogger()})

	e := newTestEcho(managerClaims)
	e.GET("/health", h.HealthCheck)
	e.GET("/api/data", h.GetData)
	e.POST("/api/data", h.PostData)
	e.GET("/api/v1/sync/status", h.SyncStatus)

	return dataHandlerFixtures{e: e, syncUC: syncUC, repo: repo}
}

func postRaw(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/data", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestDataHandler_GetData(t *testing.T) {
	fx := createTestDataHandler(t)

	fx.repo.EXPECT().Load(mock.Anything).Return(nil, repository.ErrStateNotFound).Once()

	rec := serveJSON(t, fx.e, http.MethodGet, "/api/data", nil)
	mustStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{}`, rec.Body.String())

	stored := entity.DefaultState()
	stored.Branches = []entity.Branch{{ID: "branch-1", Name: "Downtown"}}
	fx.repo.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	rec = serveJSON(t, fx.e, http.MethodGet, "/api/data", nil)
	mustStatus(t, rec, http.StatusOK)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, "systemSettings")
	assert.Contains(t, string(doc["branches"]), "Downtown")

	fx.repo.EXPECT().Load(mock.Anything).Return(nil, errors.New("bucket gone")).Once()

	rec = serveJSON(t, fx.e, http.MethodGet, "/api/data", nil)
	mustStatus(t, rec, http.StatusInternalServerError)
	assert.Equal(t, "Error reading data", rec.Body.String())
}

func TestDataHandler_PostData(t *testing.T) {
	fx := createTestDataHandler(t)

	for _, body := range []string{"", "{}", "null", "{not json"} {
		rec := postRaw(fx.e, body)
		mustStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "No data provided", rec.Body.String())
	}

	fx.syncUC.EXPECT().
		ReplaceState(mock.Anything, mock.AnythingOfType("*entity.AppState")).
		Run(func(_ context.Context, state *entity.AppState) {
			require.Len(t, state.Branches, 1)
			assert.Equal(t, "branch-9", state.Branches[0].ID)
		}).
		Return(nil).
		Once()

	rec := postRaw(fx.e, `{"branches":[{"id":"branch-9","name":"Mall"}]}`)
	mustStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Data saved successfully", rec.Body.String())

	fx.syncUC.EXPECT().ReplaceState(mock.Anything, mock.Anything).Return(domainerrors.ErrSyncFailed).Once()

	rec = postRaw(fx.e, `{"branches":[]}`)
	mustStatus(t, rec, http.StatusInternalServerError)
	assert.Equal(t, "Error saving data", rec.Body.String())
}

func TestDataHandler_SyncStatus(t *testing.T) {
	fx := createTestDataHandler(t)

	fx.syncUC.EXPECT().Status().Return(usecase.SyncStatus{
		Save:       usecase.SaveUnsaved,
		Connection: service.ConnectionOpen,
	})

	rec := serveJSON(t, fx.e, http.MethodGet, "/api/v1/sync/status", nil)
	mustStatus(t, rec, http.StatusOK)

	var status usecase.SyncStatus
	decodeSuccess(t, rec, &status)
	assert.Equal(t, usecase.SaveUnsaved, status.Save)
	assert.Equal(t, service.ConnectionOpen, status.Connection)

	rec = serveJSON(t, fx.e, http.MethodGet, "/health", nil)
	mustStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
