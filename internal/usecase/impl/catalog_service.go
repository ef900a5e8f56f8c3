package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	ids    service.IDGenerator
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids},
		clock:  clock,
		ids:    ids,
		texts:  texts,
		logger: logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBranches returns every branch
func (srv *catalogService) ListBranches(_ context.Context) ([]entity.Branch, error) {
	return srv.store.Snapshot().Branches, nil
}

// SaveBranch creates or updates a branch
func (srv *catalogService) SaveBranch(ctx context.Context, actor entity.Actor, branch entity.Branch) (*entity.Branch, error) {
	if !actor.Role.IsManager() {
		return nil, domainerrors.ErrPermissionDenied
	}
	branch.Name = strings.TrimSpace(branch.Name)
	if branch.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("branch name is required")
	}

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		if branch.ID == "" {
			branch.ID = srv.ids.New("branch-")
		}
		branch.LastModified = srv.clock.Now()
		state.PutBranch(branch)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditBranchSaved, branch.Name))

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Branch saved", slog.String("branch_id", branch.ID))

	return &branch, nil
}

// ListProducts returns products, optionally only those at or below their alert limit
func (srv *catalogService) ListProducts(_ context.Context, lowStockOnly bool) ([]entity.Product, error) {
	all := srv.store.Snapshot().Products
	if !lowStockOnly {
		return all, nil
	}

	out := make([]entity.Product, 0)
	for _, p := range all {
		if p.LowStock() {
			out = append(out, p)
		}
	}

	return out, nil
}

// SaveProduct creates or updates a product
func (srv *catalogService) SaveProduct(ctx context.Context, actor entity.Actor, product entity.Product) (*entity.Product, error) {
	if actor.Role.ViewOnly() {
		return nil, domainerrors.ErrPermissionDenied
	}
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if product.Price < 0 || product.AlertLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price and alert limit must not be negative")
	}

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		if product.ID == "" {
			product.ID = srv.ids.New("prod-")
		}
		product.Variations = slices.Clone(product.Variations)
		for i, v := range product.Variations {
			if v.ID == "" {
				product.Variations[i].ID = srv.ids.New("var-")
			}
		}
		product.LastModified = srv.clock.Now()
		state.PutProduct(product)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditProductSaved, product.Name))

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if product.LowStock() {
		srv.log(ctx).Warn("Product stock at alert limit",
			slog.String("product_id", product.ID),
			slog.Int("stock", product.TotalStock()),
			slog.Int("alert_limit", product.AlertLimit),
		)
	}

	return &product, nil
}

// ListInquiries returns daily inquiries newest first
func (srv *catalogService) ListInquiries(_ context.Context) ([]entity.DailyInquiry, error) {
	return srv.store.Snapshot().DailyInquiries, nil
}

// AddInquiry records a product question received by the actor
func (srv *catalogService) AddInquiry(ctx context.Context, actor entity.Actor, inquiry entity.DailyInquiry) (*entity.DailyInquiry, error) {
	inquiry.ProductInquiry = strings.TrimSpace(inquiry.ProductInquiry)
	if inquiry.ProductInquiry == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productInquiry is required")
	}

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		now := srv.clock.Now()
		inquiry.ID = srv.ids.New("inq-")
		inquiry.UserID = actor.UserID
		inquiry.UserName = actor.UserName
		inquiry.Date = now
		inquiry.LastModified = now
		state.AddInquiry(inquiry)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditInquiryAdded, inquiry.ProductInquiry))

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &inquiry, nil
}
