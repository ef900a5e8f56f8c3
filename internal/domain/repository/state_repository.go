// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrStateNotFound is returned by Load when no snapshot has been saved yet.
var ErrStateNotFound = errors.New("state snapshot not found")

// StateRepository loads and saves the whole application state. There are no
// partial updates: every Save replaces the stored snapshot.
type StateRepository interface {
	Load(ctx context.Context) (*entity.AppState, error)
	Save(ctx context.Context, state *entity.AppState) error
}
