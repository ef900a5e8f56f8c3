package model

import (
	"time"

	"gorm.io/datatypes"
)

// StateSnapshotModel is the GORM-specific struct for the 'state_snapshots' table.
// Each row holds the latest full state document stored under a key.
type StateSnapshotModel struct {
	Key       string         `gorm:"column:snapshot_key;type:varchar(255);primaryKey"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	Revision  int64          `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StateSnapshotModel) TableName() string {
	return "state_snapshots"
}

// StateRevisionModel keeps previous documents of a snapshot key for recovery.
type StateRevisionModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	SnapshotKey string         `gorm:"type:varchar(255);not null;index:idx_state_revisions_key_revision,priority:1"`
	Revision    int64          `gorm:"not null;index:idx_state_revisions_key_revision,priority:2"`
	Data        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StateRevisionModel) TableName() string {
	return "state_revisions"
}

// Models lists every table owned by the persistence layer, in migration order.
func Models() []any {
	return []any{&StateSnapshotModel{}, &StateRevisionModel{}}
}
