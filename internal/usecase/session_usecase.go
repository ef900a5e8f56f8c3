package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// ActivityFilter narrows activity log listings.
type ActivityFilter struct {
	Type   entity.ActivityType
	UserID string
	Limit  int
}

// SessionUsecase defines login, logout and the activity trail
type SessionUsecase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *service.Claims) error
	Activity(ctx context.Context, filter ActivityFilter) ([]entity.ActivityLogEntry, error)
}
