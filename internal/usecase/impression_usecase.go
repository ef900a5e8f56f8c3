package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// ImpressionOutcome describes what recording an impression changed.
type ImpressionOutcome struct {
	Customer            entity.Customer      `json:"customer"`
	FollowUp            *entity.FollowUpTask `json:"followUp,omitempty"`
	CompletedInvoiceIDs []string             `json:"completedInvoiceIds"`
}

// ImpressionUsecase defines the customer feedback operations
type ImpressionUsecase interface {
	Record(ctx context.Context, actor entity.Actor, customerID string, impression entity.CustomerImpression) (*Result[ImpressionOutcome], error)
}
