package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crm/internal/domain/entity"
)

// Claims defines the custom claims for session tokens. The subject is the user id.
type Claims struct {
	Name    string      `json:"name"`
	Role    entity.Role `json:"role"`
	LoginAt int64       `json:"login_at"`
	jwt.RegisteredClaims
}

// Actor returns the acting identity carried by the token.
func (c *Claims) Actor() entity.Actor {
	return entity.Actor{UserID: c.Subject, UserName: c.Name, Role: c.Role}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a session token for user, logged in at loginAt.
	GenerateToken(user entity.User, loginAt time.Time) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured session token lifetime.
	TokenDuration() time.Duration
}
