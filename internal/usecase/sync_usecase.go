package usecase

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
)

// SaveStatus is the visible persistence state.
type SaveStatus string

const (
	SaveIdle    SaveStatus = "idle"
	SaveUnsaved SaveStatus = "unsaved"
	SaveSaving  SaveStatus = "saving"
	SaveSaved   SaveStatus = "saved"
	SaveError   SaveStatus = "error"
)

// SyncStatus reports persistence and live channel state.
type SyncStatus struct {
	Save       SaveStatus              `json:"save"`
	LastSaved  *time.Time              `json:"lastSaved,omitempty"`
	LastError  string                  `json:"lastError,omitempty"`
	Connection service.ConnectionState `json:"connection"`
}

// SyncUsecase persists local changes and reconciles remote snapshots
type SyncUsecase interface {
	// Start loads the stored state and starts following the upstream channel
	Start(ctx context.Context) error

	// Stop cancels pending work and flushes unsaved changes
	Stop(ctx context.Context) error

	// Flush saves immediately when there are unsaved changes
	Flush(ctx context.Context) error

	// ReplaceState overwrites the state with a client supplied snapshot, saves and broadcasts it
	ReplaceState(ctx context.Context, state *entity.AppState) error

	// Status reports the current persistence status
	Status() SyncStatus
}
