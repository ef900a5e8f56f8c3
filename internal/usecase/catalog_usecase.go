package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// CatalogUsecase defines branch, product and inquiry management
type CatalogUsecase interface {
	ListBranches(ctx context.Context) ([]entity.Branch, error)
	SaveBranch(ctx context.Context, actor entity.Actor, branch entity.Branch) (*entity.Branch, error)

	ListProducts(ctx context.Context, lowStockOnly bool) ([]entity.Product, error)
	SaveProduct(ctx context.Context, actor entity.Actor, product entity.Product) (*entity.Product, error)

	ListInquiries(ctx context.Context) ([]entity.DailyInquiry, error)
	AddInquiry(ctx context.Context, actor entity.Actor, inquiry entity.DailyInquiry) (*entity.DailyInquiry, error)
}
