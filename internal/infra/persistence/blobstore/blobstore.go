// Package blobstore persists the state snapshot as one JSON object in a gocloud bucket.
package blobstore

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/snapshot"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "application/json; charset=utf-8"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the configured bucket and closes it when the application stops.
func OpenBucket(params Params) (*blob.Bucket, error) {
	url := constants.DefaultBlobURL
	if params.Config.Store != nil && params.Config.Store.Blob.URL != "" {
		url = params.Config.Store.Blob.URL
	}

	bucket, err := blob.OpenBucket(context.Background(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Snapshot bucket opened", slog.String("url", url))

	return bucket, nil
}

type stateRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewStateRepository stores the snapshot under key in bucket. An empty key uses the default.
func NewStateRepository(bucket *blob.Bucket, key string) repository.StateRepository {
	if key == "" {
		key = constants.DefaultSnapshotKey
	}

	return &stateRepository{bucket: bucket, key: key}
}

// Load reads and decodes the snapshot object.
func (r *stateRepository) Load(ctx context.Context) (*entity.AppState, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", r.key)
	}

	state, err := snapshot.Decode(data)
	if err != nil {
		if errors.Is(err, snapshot.ErrEmptyDocument) {
			return nil, repository.ErrStateNotFound
		}

		return nil, err
	}

	return state, nil
}

// Save writes the whole snapshot as pretty-printed JSON, replacing the previous object.
func (r *stateRepository) Save(ctx context.Context, state *entity.AppState) error {
	data, err := snapshot.Encode(state, true)
	if err != nil {
		return err
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", r.key)
	}

	return nil
}
