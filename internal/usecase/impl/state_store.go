// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/usecase"
)

type subscriber struct {
	id int
	fn func(usecase.Update)
}

// stateStore serialises every mutation of the application state behind one lock.
type stateStore struct {
	logger *slog.Logger

	mu          sync.Mutex
	state       *entity.AppState
	subscribers []subscriber
	nextID      int
}

// NewStateStore creates a store holding the default state until a snapshot is loaded.
func NewStateStore(logger *slog.Logger) usecase.StateStore {
	return &stateStore{
		logger: logger,
		state:  entity.DefaultState(),
	}
}

func (s *stateStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Snapshot returns the current state.
func (s *stateStore) Snapshot() *entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Mutate applies fn to a copy of the state and commits it when fn succeeds.
func (s *stateStore) Mutate(ctx context.Context, fn func(state *entity.AppState) error) (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	s.commit(ctx, next, usecase.OriginLocal)

	return next, nil
}

// Replace overwrites the whole state.
func (s *stateStore) Replace(ctx context.Context, state *entity.AppState, origin usecase.Origin) {
	state.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, state, origin)
}

// Subscribe registers fn for every committed update.
func (s *stateStore) Subscribe(fn func(usecase.Update)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)

				return
			}
		}
	}
}

func (s *stateStore) commit(ctx context.Context, state *entity.AppState, origin usecase.Origin) {
	s.state = state
	s.log(ctx).Debug("State committed",
		slog.String("origin", string(origin)),
		slog.Int("customers", len(state.Customers)),
		slog.Int("complaints", len(state.Complaints)),
	)

	update := usecase.Update{State: state, Origin: origin}
	for _, sub := range s.subscribers {
		sub.fn(update)
	}
}
