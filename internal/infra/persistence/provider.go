// Package persistence selects the state snapshot backend.
package persistence

import (
	"log/slog"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/blobstore"
	"crm/internal/infra/persistence/postgres"
	"crm/internal/infra/persistence/remote"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the StateRepository, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStateRepository creates the StateRepository named by store.provider
func NewStateRepository(params StoreParams) (repository.StateRepository, error) {
	cfg := params.Config.Store
	logger := params.Logger

	provider := constants.StoreProviderBlob
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.StoreProviderBlob:
		bucket, err := blobstore.OpenBucket(blobstore.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		key := ""
		if cfg != nil {
			key = cfg.Blob.Key
		}
		logger.Info("Using blob snapshot store", slog.String("key", key))

		return blobstore.NewStateRepository(bucket, key), nil

	case constants.StoreProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for postgres store")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using postgres snapshot store")

		return postgres.NewTransactionalStateRepository(postgres.NewTransactionManager(db)), nil

	case constants.StoreProviderRemote:
		if cfg == nil {
			return nil, errors.New("remote configuration is required for remote store")
		}
		logger.Info("Using remote snapshot store", slog.String("base_url", cfg.Remote.BaseURL))

		return remote.NewStateRepository(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	default:
		return nil, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStateRepository),
)
