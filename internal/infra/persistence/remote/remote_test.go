package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository_RoundTrip(t *testing.T) {
	stored := []byte("{}")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data", r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(stored)
		case http.MethodPost:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			stored = body
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	}))
	defer server.Close()

	repo, err := NewStateRepository(server.URL+"/", time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrStateNotFound)

	state := entity.DefaultState()
	state.Branches = []entity.Branch{{ID: "branch-1", Name: "Downtown"}}
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestStateRepository_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "disk full", http.StatusInternalServerError)
	}))
	defer server.Close()

	repo, err := NewStateRepository(server.URL, time.Second)
	require.NoError(t, err)

	err = repo.Save(context.Background(), entity.DefaultState())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "disk full")

	_, err = repo.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrStateNotFound)
}

func TestNewStateRepository_RequiresBaseURL(t *testing.T) {
	_, err := NewStateRepository("  ", time.Second)
	assert.Error(t, err)
}
