package main

import (
	"context"
	"log/slog"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/i18n"
	"crm/internal/domain/lifecycle"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/clock"
	"crm/internal/infra/idgen"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	actorName string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "crmctl",
		Short:         "Maintenance jobs for the CRM state store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.actorName, "actor", entity.SystemActor.UserName, "name recorded in the activity log")

	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newFeedbackTasksCommand(opts))
	cmd.AddCommand(newVerifyCommand())

	return cmd
}

func (o *rootOptions) actor() entity.Actor {
	actor := entity.SystemActor
	if o.actorName != "" {
		actor.UserName = o.actorName
	}

	return actor
}

// cliDeps are the components a command works with.
type cliDeps struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Repo   repository.StateRepository
	Sync   usecase.SyncUsecase
	Import usecase.ImportUsecase
	Tasks  usecase.TaskUsecase
}

func newTexts(cfg *config.Config) *i18n.Texts {
	return i18n.New(cfg.Env.Locale)
}

// runWithDeps builds the store and usecases, runs fn and stops the
// components again, flushing anything fn left unsaved.
func runWithDeps(ctx context.Context, fn func(ctx context.Context, deps cliDeps) error) error {
	var deps cliDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			clock.New,
			idgen.New,
			newTexts,
			impl.NewStateStore,
			impl.NewSyncService,
			impl.NewImportService,
			impl.NewTaskService,
		),
		persistence.Module,
		fx.Invoke(func(d cliDeps) { deps = d }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build components")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start components")
	}

	runErr := fn(ctx, deps)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := deps.Sync.Stop(stopCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if err := app.Stop(stopCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	return runErr
}
