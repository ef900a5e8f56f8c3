package postgres

import (
	"context"

	"crm/internal/domain/constants"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/persistence/snapshot"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// revisionsKept is how many previous documents are retained per snapshot key.
const revisionsKept = 20

type stateRepository struct {
	db  *gorm.DB
	key string
}

// NewStateRepository creates a state repository storing the snapshot under the default key.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return newStateRepository(db, constants.DefaultSnapshotKey)
}

func newStateRepository(db *gorm.DB, key string) *stateRepository {
	return &stateRepository{db: db, key: key}
}

// Load reads the current snapshot document.
func (r *stateRepository) Load(ctx context.Context) (*entity.AppState, error) {
	var row model.StateSnapshotModel
	err := r.db.WithContext(ctx).Where("snapshot_key = ?", r.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load state snapshot")
	}

	state, err := snapshot.Decode(row.Data)
	if err != nil {
		if errors.Is(err, snapshot.ErrEmptyDocument) {
			return nil, repository.ErrStateNotFound
		}

		return nil, err
	}

	return state, nil
}

// Save replaces the current document, archives it as a revision and prunes old revisions.
// Callers run it inside a transaction so the three statements commit together.
func (r *stateRepository) Save(ctx context.Context, state *entity.AppState) error {
	data, err := snapshot.Encode(state, false)
	if err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var current model.StateSnapshotModel
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("snapshot_key = ?", r.key).
		Limit(1).
		Find(&current).Error
	if err != nil {
		return translateError(err, "failed to lock state snapshot")
	}

	row := model.StateSnapshotModel{
		Key:      r.key,
		Data:     datatypes.JSON(data),
		Revision: current.Revision + 1,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "revision", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return translateError(err, "failed to save state snapshot")
	}

	revision := model.StateRevisionModel{
		SnapshotKey: r.key,
		Revision:    row.Revision,
		Data:        row.Data,
	}
	if err := db.Create(&revision).Error; err != nil {
		return translateError(err, "failed to archive state revision")
	}

	err = db.Where("snapshot_key = ? AND revision <= ?", r.key, row.Revision-revisionsKept).
		Delete(&model.StateRevisionModel{}).Error
	if err != nil {
		return translateError(err, "failed to prune state revisions")
	}

	return nil
}
