package blobstore

import (
	"context"
	"strings"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestStateRepository_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	repo := NewStateRepository(bucket, "")
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrStateNotFound)

	state := entity.DefaultState()
	state.Branches = []entity.Branch{{ID: "branch-1", Name: "Downtown"}}
	state.Customers = []entity.Customer{{ID: "CUST-0001", Name: "Mona", Points: 40, TotalPointsEarned: 40}}
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	raw, err := bucket.ReadAll(ctx, "db.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"users\""), "snapshot is stored pretty-printed")

	attrs, err := bucket.Attributes(ctx, "db.json")
	require.NoError(t, err)
	assert.Equal(t, contentType, attrs.ContentType)
}

func TestStateRepository_SaveReplaces(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	repo := NewStateRepository(bucket, "crm/state.json")
	ctx := context.Background()

	first := entity.DefaultState()
	first.Branches = []entity.Branch{{ID: "branch-1"}}
	require.NoError(t, repo.Save(ctx, first))

	second := entity.DefaultState()
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Branches)
}

func TestStateRepository_CorruptObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, "db.json", []byte("{broken"), nil))

	_, err := NewStateRepository(bucket, "").Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrStateNotFound)

	require.NoError(t, bucket.WriteAll(ctx, "db.json", []byte("   "), nil))
	_, err = NewStateRepository(bucket, "").Load(ctx)
	assert.ErrorIs(t, err, repository.ErrStateNotFound)
}
