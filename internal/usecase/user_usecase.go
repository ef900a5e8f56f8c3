package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// UserInput creates or updates a staff account.
type UserInput struct {
	ID       string      `json:"id"`
	Name     string      `json:"name" validate:"required"`
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role" validate:"required"`
	Phone    string      `json:"phone"`
	Email    string      `json:"email" validate:"omitempty,email"`
}

// UserUsecase defines staff account management
type UserUsecase interface {
	// List returns every user without password hashes
	List(ctx context.Context) ([]entity.User, error)

	// Save creates a user when ID is empty, otherwise updates it. An empty
	// password keeps the stored one.
	Save(ctx context.Context, actor entity.Actor, in UserInput) (*entity.User, error)
}
