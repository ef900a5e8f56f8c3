// Package usecase defines the application operations exposed to delivery layers.
package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// Origin tags where a state update came from.
type Origin string

const (
	// OriginLocal marks updates produced by an operation on this node.
	OriginLocal Origin = "local"
	// OriginRemote marks canonical snapshots received from an upstream server.
	OriginRemote Origin = "remote-snapshot"
	// OriginLoad marks the snapshot read from storage at startup.
	OriginLoad Origin = "load"
)

// Update is a committed state change.
type Update struct {
	State  *entity.AppState
	Origin Origin
}

// StateStore is the single writer of the application state. Mutations run one
// at a time and publish immutable snapshots.
type StateStore interface {
	// Snapshot returns the current state. Callers must not modify it.
	Snapshot() *entity.AppState

	// Mutate runs fn against a private copy and commits it when fn succeeds.
	Mutate(ctx context.Context, fn func(state *entity.AppState) error) (*entity.AppState, error)

	// Replace overwrites the whole state.
	Replace(ctx context.Context, state *entity.AppState, origin Origin)

	// Subscribe registers fn for every committed update. fn runs under the
	// store lock and must not block or mutate the store.
	Subscribe(fn func(Update)) (unsubscribe func())
}

// Result pairs an operation value with the notices raised for the acting user.
type Result[T any] struct {
	Value   T               `json:"value"`
	Notices []entity.Notice `json:"notices,omitempty"`
}
