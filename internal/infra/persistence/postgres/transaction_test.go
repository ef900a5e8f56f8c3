package postgres

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	mockRepo "crm/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionalFixtures struct {
	repo      repository.StateRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	inner     *mockRepo.MockStateRepository
}

func createTestTransactionalRepository(t *testing.T) transactionalFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	inner := mockRepo.NewMockStateRepository(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
	factory.EXPECT().NewStateRepository().Return(inner).Maybe()

	return transactionalFixtures{
		repo:      NewTransactionalStateRepository(txManager),
		txManager: txManager,
		factory:   factory,
		inner:     inner,
	}
}

func TestTransactionalStateRepository_Load(t *testing.T) {
	fx := createTestTransactionalRepository(t)
	ctx := context.Background()

	stored := entity.DefaultState()
	fx.inner.EXPECT().Load(ctx).Return(stored, nil).Once()

	state, err := fx.repo.Load(ctx)
	require.NoError(t, err)
	assert.Same(t, stored, state)
}

func TestTransactionalStateRepository_LoadNotFound(t *testing.T) {
	fx := createTestTransactionalRepository(t)
	ctx := context.Background()

	fx.inner.EXPECT().Load(ctx).Return(nil, repository.ErrStateNotFound).Once()

	state, err := fx.repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrStateNotFound)
	assert.Nil(t, state)
}

func TestTransactionalStateRepository_Save(t *testing.T) {
	fx := createTestTransactionalRepository(t)
	ctx := context.Background()
	state := entity.DefaultState()

	fx.inner.EXPECT().Save(ctx, state).Return(nil).Once()
	require.NoError(t, fx.repo.Save(ctx, state))

	fx.inner.EXPECT().Save(ctx, state).Return(errors.New("serialization failure")).Once()
	assert.EqualError(t, fx.repo.Save(ctx, state), "serialization failure")
}

func TestTransactionalStateRepository_BeginFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("failed to begin transaction"))

	repo := NewTransactionalStateRepository(txManager)

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.Save(context.Background(), entity.DefaultState()))
}
