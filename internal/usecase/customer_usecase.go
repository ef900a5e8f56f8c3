package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// NewCustomer is the input of a manual customer registration.
type NewCustomer struct {
	ID            string              `json:"id"`
	Name          string              `json:"name" validate:"required"`
	Phone         string              `json:"phone" validate:"required"`
	Email         string              `json:"email" validate:"omitempty,email"`
	Type          entity.CustomerType `json:"type"`
	Governorate   string              `json:"governorate"`
	StreetAddress string              `json:"streetAddress"`
	Source        string              `json:"source"`
}

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Query          string
	Classification entity.Classification
}

// CustomerUsecase defines customer profile and loyalty ledger operations
type CustomerUsecase interface {
	List(ctx context.Context, filter CustomerFilter) ([]entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, actor entity.Actor, in NewCustomer) (*Result[entity.Customer], error)

	// GrantPoints credits points; the reason is written to the activity log
	GrantPoints(ctx context.Context, actor entity.Actor, id string, amount int, reason string) (*Result[entity.Customer], error)

	// DeductPoints debits points, refusing when the balance is insufficient
	DeductPoints(ctx context.Context, actor entity.Actor, id string, amount int, reason string) (*Result[entity.Customer], error)

	// AddLegacyBalance converts a paper-era currency balance into points
	AddLegacyBalance(ctx context.Context, actor entity.Actor, id string, amount float64, note string) (*Result[entity.Customer], error)

	// GrantVideoReward credits the fixed review-video reward
	GrantVideoReward(ctx context.Context, actor entity.Actor, id string) (*Result[entity.Customer], error)

	// RedeemVoucher converts points into a discount voucher
	RedeemVoucher(ctx context.Context, actor entity.Actor, id string, points int) (*Result[entity.Voucher], error)

	// VoucherQR renders the QR code of an issued voucher
	VoucherQR(ctx context.Context, code string) ([]byte, error)
}
