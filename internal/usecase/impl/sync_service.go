package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/lifecycle"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSaveDebounce = 1500 * time.Millisecond

// syncService persists local changes after a quiet period and applies
// canonical snapshots pushed from upstream.
type syncService struct {
	store       usecase.StateStore
	repo        repository.StateRepository
	broadcaster service.SnapshotBroadcaster
	source      service.SnapshotSource
	clock       service.Clock
	debounce    time.Duration
	logger      *slog.Logger

	mu         sync.Mutex
	status     usecase.SaveStatus
	lastSaved  *time.Time
	lastError  string
	timer      service.Timer
	generation uint64
	dirty      bool

	// saveMu keeps at most one save in flight.
	saveMu sync.Mutex

	unsubscribe func()
	cancel      context.CancelFunc
	done        chan struct{}
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	Config      *config.Config
	Store       usecase.StateStore
	Repo        repository.StateRepository
	Broadcaster service.SnapshotBroadcaster `optional:"true"`
	Source      service.SnapshotSource      `optional:"true"`
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	debounce := defaultSaveDebounce
	if params.Config != nil && params.Config.Sync != nil && params.Config.Sync.Debounce > 0 {
		debounce = params.Config.Sync.Debounce
	}

	return &syncService{
		store:       params.Store,
		repo:        params.Repo,
		broadcaster: params.Broadcaster,
		source:      params.Source,
		clock:       params.Clock,
		debounce:    debounce,
		logger:      params.Logger,
		status:      usecase.SaveIdle,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start loads the stored snapshot and follows the upstream channel when one is configured
func (srv *syncService) Start(ctx context.Context) error {
	state, err := srv.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrStateNotFound):
		srv.log(ctx).Info("No stored state, starting from defaults")
		state = entity.DefaultState()
	case err != nil:
		return errors.Wrap(err, "failed to load state")
	}

	srv.store.Replace(ctx, state, usecase.OriginLoad)
	srv.unsubscribe = srv.store.Subscribe(srv.onUpdate)
	srv.log(ctx).Info("State loaded",
		slog.Int("customers", len(state.Customers)),
		slog.Int("complaints", len(state.Complaints)),
	)

	if srv.source == nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	srv.cancel = cancel
	srv.done = make(chan struct{})

	go func() {
		defer close(srv.done)

		err := srv.source.Run(runCtx, func(snapshot *entity.AppState) {
			srv.store.Replace(runCtx, snapshot, usecase.OriginRemote)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			srv.logger.Error("Upstream snapshot channel stopped", slog.Any("error", err))
		}
	}()

	return nil
}

// Stop stops following upstream and flushes unsaved changes
func (srv *syncService) Stop(ctx context.Context) error {
	if srv.cancel != nil {
		srv.cancel()
		select {
		case <-srv.done:
		case <-ctx.Done():
			srv.log(ctx).Warn("Upstream channel did not stop in time")
		}
	}
	if srv.unsubscribe != nil {
		srv.unsubscribe()
	}

	return srv.Flush(ctx)
}

// Flush saves immediately when there are unsaved changes
func (srv *syncService) Flush(ctx context.Context) error {
	srv.mu.Lock()
	if !srv.dirty {
		srv.mu.Unlock()

		return nil
	}
	srv.stopTimer()
	gen := srv.generation
	srv.mu.Unlock()

	return srv.save(ctx, gen)
}

// ReplaceState overwrites the state with a client supplied snapshot, saves and broadcasts it
func (srv *syncService) ReplaceState(ctx context.Context, state *entity.AppState) error {
	if state == nil {
		return domainerrors.ErrEmptySnapshot
	}

	srv.store.Replace(ctx, state, usecase.OriginRemote)

	srv.mu.Lock()
	srv.dirty = true
	gen := srv.generation
	srv.mu.Unlock()

	return srv.save(ctx, gen)
}

// Status reports the current persistence status
func (srv *syncService) Status() usecase.SyncStatus {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	status := usecase.SyncStatus{
		Save:       srv.status,
		LastSaved:  srv.lastSaved,
		LastError:  srv.lastError,
		Connection: service.ConnectionDisabled,
	}
	if srv.source != nil {
		status.Connection = srv.source.State()
	}

	return status
}

// onUpdate runs under the store lock for every committed update.
func (srv *syncService) onUpdate(update usecase.Update) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch update.Origin {
	case usecase.OriginLocal:
		srv.generation++
		srv.dirty = true
		srv.status = usecase.SaveUnsaved
		srv.stopTimer()

		gen := srv.generation
		srv.timer = srv.clock.AfterFunc(srv.debounce, func() {
			ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()

			if err := srv.save(ctx, gen); err != nil {
				srv.logger.Error("Debounced save failed", slog.Any("error", err))
			}
		})
	case usecase.OriginRemote:
		// The remote snapshot is canonical and supersedes any pending save.
		srv.generation++
		srv.dirty = false
		srv.stopTimer()
		srv.status = usecase.SaveSaved
		srv.lastError = ""
	case usecase.OriginLoad:
	}
}

// stopTimer cancels the pending debounced save. Callers hold mu.
func (srv *syncService) stopTimer() {
	if srv.timer != nil {
		srv.timer.Stop()
		srv.timer = nil
	}
}

// save persists the current snapshot if generation gen is still the latest.
func (srv *syncService) save(ctx context.Context, gen uint64) error {
	srv.saveMu.Lock()
	defer srv.saveMu.Unlock()

	srv.mu.Lock()
	if gen != srv.generation || !srv.dirty {
		srv.mu.Unlock()

		return nil
	}
	srv.status = usecase.SaveSaving
	srv.mu.Unlock()

	snapshot := srv.store.Snapshot()
	err := srv.repo.Save(ctx, snapshot)

	srv.mu.Lock()
	current := gen == srv.generation
	if err != nil {
		if current {
			srv.status = usecase.SaveError
			srv.lastError = err.Error()
		}
	} else {
		now := srv.clock.Now()
		srv.lastSaved = &now
		if current {
			srv.status = usecase.SaveSaved
			srv.lastError = ""
			srv.dirty = false
		}
	}
	srv.mu.Unlock()

	if err != nil {
		srv.log(ctx).Error("Failed to save state", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSyncFailed.WithDetails(err.Error()), "save state")
	}
	srv.log(ctx).Debug("State saved", slog.Uint64("generation", gen))

	if srv.broadcaster != nil {
		if err := srv.broadcaster.Broadcast(ctx, snapshot); err != nil {
			srv.log(ctx).Warn("Failed to broadcast snapshot", slog.Any("error", err))
		}
	}

	return nil
}
