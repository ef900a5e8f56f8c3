package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/api"
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/infra/auth"
	"crm/internal/infra/clock"
	"crm/internal/infra/email"
	"crm/internal/infra/idgen"
	"crm/internal/infra/livesync"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence"
	"crm/internal/infra/pubsub"
	"crm/internal/infra/qrcode"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectLiveSync(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSync,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.New,
			idgen.New,
			newTexts,
		),
		persistence.Module,
		pubsub.Module,
	)
}

// newTexts selects the message catalog for audit entries and alerts
func newTexts(cfg *config.Config) *i18n.Texts {
	return i18n.New(cfg.Env.Locale)
}

func injectLiveSync() fx.Option {
	return fx.Provide(
		newLiveHub,
		fx.Annotate(
			func(hub *livesync.Hub) http.Handler { return hub },
			fx.ResultTags(`name:"liveSync"`),
		),
		func(hub *livesync.Hub) service.SnapshotBroadcaster { return hub },
		newSnapshotSource,
	)
}

// newLiveHub disconnects websocket clients on shutdown
func newLiveHub(lc fx.Lifecycle, logger *slog.Logger) *livesync.Hub {
	hub := livesync.NewHub(logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return hub.Close()
		},
	})

	return hub
}

// newSnapshotSource follows the upstream server when one is configured
func newSnapshotSource(cfg *config.Config, logger *slog.Logger) service.SnapshotSource {
	if cfg.Sync == nil || cfg.Sync.Upstream == "" {
		return nil // replica mode is optional
	}

	return livesync.NewClient(cfg.Sync.Upstream, cfg.Sync.ReconnectInterval, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			email.NewEmailJSSender,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStateStore,
			impl.NewSyncService,
			impl.NewSessionService,
			impl.NewAlertService,
			impl.NewComplaintService,
			impl.NewCustomerService,
			impl.NewImpressionService,
			impl.NewImportService,
			impl.NewTaskService,
			impl.NewCatalogService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewDataHandler,
			handler.NewComplaintHandler,
			handler.NewCustomerHandler,
			handler.NewTaskHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSync loads the stored state before the servers accept requests and
// flushes unsaved changes on shutdown.
func startSync(lc fx.Lifecycle, syncUC usecase.SyncUsecase) {
	lc.Append(fx.Hook{
		OnStart: syncUC.Start,
		OnStop:  syncUC.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
