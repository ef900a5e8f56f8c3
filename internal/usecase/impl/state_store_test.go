package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_MutateCommitsCopy(t *testing.T) {
	store := NewStateStore(newDiscardLogger())
	before := store.Snapshot()

	var updates []usecase.Update
	unsubscribe := store.Subscribe(func(u usecase.Update) { updates = append(updates, u) })
	defer unsubscribe()

	after, err := store.Mutate(context.Background(), func(state *entity.AppState) error {
		state.PutBranch(entity.Branch{ID: "branch-1", Name: "Downtown"})

		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, before.Branches, "previous snapshots are never modified")
	assert.Same(t, after, store.Snapshot())
	require.Len(t, updates, 1)
	assert.Equal(t, usecase.OriginLocal, updates[0].Origin)
	assert.Same(t, after, updates[0].State)
}

func TestStateStore_MutateErrorCommitsNothing(t *testing.T) {
	store := NewStateStore(newDiscardLogger())
	before := store.Snapshot()

	notified := false
	store.Subscribe(func(usecase.Update) { notified = true })

	_, err := store.Mutate(context.Background(), func(state *entity.AppState) error {
		state.PutBranch(entity.Branch{ID: "branch-1"})

		return errors.New("rejected")
	})
	assert.EqualError(t, err, "rejected")
	assert.Same(t, before, store.Snapshot())
	assert.False(t, notified)
}

func TestStateStore_ReplaceNormalizes(t *testing.T) {
	store := NewStateStore(newDiscardLogger())

	var origin usecase.Origin
	store.Subscribe(func(u usecase.Update) { origin = u.Origin })

	store.Replace(context.Background(), &entity.AppState{}, usecase.OriginRemote)

	state := store.Snapshot()
	assert.NotNil(t, state.Customers)
	assert.NotNil(t, state.ActivityLog)
	assert.Equal(t, usecase.OriginRemote, origin)
}

func TestStateStore_Unsubscribe(t *testing.T) {
	store := NewStateStore(newDiscardLogger())

	var first, second int
	unsubscribeFirst := store.Subscribe(func(usecase.Update) { first++ })
	store.Subscribe(func(usecase.Update) { second++ })

	store.Replace(context.Background(), entity.DefaultState(), usecase.OriginLoad)
	unsubscribeFirst()
	store.Replace(context.Background(), entity.DefaultState(), usecase.OriginLoad)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
