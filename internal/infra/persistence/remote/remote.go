// Package remote persists the state snapshot through another server's /api/data endpoint.
package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/snapshot"
)

const (
	dataPath        = "/api/data"
	maxResponseSize = 64 << 20
)

type stateRepository struct {
	endpoint   string
	httpClient *http.Client
}

// NewStateRepository creates a repository reading and writing baseURL + /api/data.
func NewStateRepository(baseURL string, timeout time.Duration) (repository.StateRepository, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote store base URL is required")
	}

	return &stateRepository{
		endpoint:   baseURL + dataPath,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Load fetches the snapshot. An empty object means nothing has been saved yet.
func (r *stateRepository) Load(ctx context.Context) (*entity.AppState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	body, err := r.do(req)
	if err != nil {
		return nil, err
	}

	state, err := snapshot.Decode(body)
	if err != nil {
		if errors.Is(err, snapshot.ErrEmptyDocument) {
			return nil, repository.ErrStateNotFound
		}

		return nil, err
	}

	return state, nil
}

// Save posts the whole snapshot.
func (r *stateRepository) Save(ctx context.Context, state *entity.AppState) error {
	payload, err := snapshot.Encode(state, false)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = r.do(req)

	return err
}

func (r *stateRepository) do(req *http.Request) ([]byte, error) {
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", req.Method, r.endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("%s %s returned status %d: %s",
			req.Method, r.endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
