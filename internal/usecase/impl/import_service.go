package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/importer"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type importService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids},
		clock:  clock,
		texts:  texts,
		logger: logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportCSV parses a CSV export and merges it into the customer ledger in one
// mutation. Nothing is committed when the file cannot be read.
func (srv *importService) ImportCSV(ctx context.Context, actor entity.Actor, r io.Reader, raw map[string]string) (*usecase.Result[importer.Summary], error) {
	mapping, err := importer.ParseMapping(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	rows, invalid, err := importer.ReadCSV(r, mapping)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var summary importer.Summary
	_, err = srv.store.Mutate(ctx, func(state *entity.AppState) error {
		merger := importer.NewMerger(state, srv.clock.Now())
		merger.Skip(invalid)
		merger.Merge(rows)

		summary = merger.Summary()
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditImport,
			strconv.Itoa(summary.New),
			strconv.Itoa(summary.Updated),
			strconv.Itoa(summary.Transactions),
			strconv.Itoa(summary.Skipped),
		))

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Import failed", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Import finished",
		slog.Int("new", summary.New),
		slog.Int("updated", summary.Updated),
		slog.Int("transactions", summary.Transactions),
		slog.Int("skipped", summary.Skipped),
	)

	return &usecase.Result[importer.Summary]{Value: summary}, nil
}
