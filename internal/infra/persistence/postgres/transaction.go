// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory holds a specific GORM transaction and creates
// repository instances bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewStateRepository creates a state repository bound to the transaction.
func (f *gormRepositoryFactory) NewStateRepository() repository.StateRepository {
	return NewStateRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back when the callback panics, then re-panic.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// transactionalStateRepository runs every load and save in its own transaction.
type transactionalStateRepository struct {
	txManager repository.TransactionManager
}

// NewTransactionalStateRepository returns the StateRepository used by the postgres store provider.
func NewTransactionalStateRepository(txManager repository.TransactionManager) repository.StateRepository {
	return &transactionalStateRepository{txManager: txManager}
}

func (r *transactionalStateRepository) Load(ctx context.Context) (*entity.AppState, error) {
	var state *entity.AppState
	err := r.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		loaded, err := factory.NewStateRepository().Load(ctx)
		state = loaded

		return err
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (r *transactionalStateRepository) Save(ctx context.Context, state *entity.AppState) error {
	return r.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewStateRepository().Save(ctx, state)
	})
}
