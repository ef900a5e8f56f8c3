package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bcryptPrefix = "$2"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store        usecase.StateStore
	clock        service.Clock
	ids          service.IDGenerator
	hasher       service.PasswordHasher
	tokenService service.TokenService
	texts        *i18n.Texts
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store        usecase.StateStore
	Clock        service.Clock
	IDs          service.IDGenerator
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Texts        *i18n.Texts
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:        params.Store,
		clock:        params.Clock,
		ids:          params.IDs,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		texts:        params.Texts,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials, records a LOGIN entry and issues a session token.
// Accounts still holding a plaintext password are upgraded to a bcrypt hash.
func (srv *sessionService) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, ok := srv.store.Snapshot().FindUserByUsername(username)
	if !ok || !srv.checkPassword(password, user.Password) {
		srv.log(ctx).Warn("Login rejected", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	upgraded := ""
	if !isHashed(user.Password) {
		hash, err := srv.hasher.Hash(password)
		if err != nil {
			srv.log(ctx).Error("Failed to upgrade legacy password", slog.Any("error", err), slog.String("user_id", user.ID))
		} else {
			upgraded = hash
		}
	}

	loginAt := srv.clock.Now()
	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		if upgraded != "" {
			if current, ok := state.FindUser(user.ID); ok {
				current.Password = upgraded
				state.PutUser(current)
			}
		}
		state.AddActivity(entity.ActivityLogEntry{
			ID:        srv.ids.New("log-"),
			UserID:    user.ID,
			UserName:  user.Name,
			Timestamp: loginAt,
			Type:      entity.ActivityLogin,
			Details:   srv.texts.T(i18n.SessionLogin),
		})

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record login")
	}

	token, err := srv.tokenService.GenerateToken(user, loginAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}
	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID), slog.String("role", user.Role.Key()))

	return &usecase.LoginResult{Token: token, User: withoutPassword(user)}, nil
}

// Logout records a LOGOUT entry carrying the session length in whole seconds.
func (srv *sessionService) Logout(ctx context.Context, claims *service.Claims) error {
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	now := srv.clock.Now()
	duration := 0
	if claims.LoginAt > 0 {
		elapsed := now.Sub(time.UnixMilli(claims.LoginAt)).Seconds()
		duration = int(math.Max(0, math.Round(elapsed)))
	}

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		state.AddActivity(entity.ActivityLogEntry{
			ID:        srv.ids.New("log-"),
			UserID:    claims.Subject,
			UserName:  claims.Name,
			Timestamp: now,
			Type:      entity.ActivityLogout,
			Details:   srv.texts.T(i18n.SessionLogout),
			Duration:  &duration,
		})

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to record logout")
	}
	srv.log(ctx).Info("User logged out", slog.String("user_id", claims.Subject), slog.Int("duration_seconds", duration))

	return nil
}

// Activity returns audit entries newest first
func (srv *sessionService) Activity(_ context.Context, filter usecase.ActivityFilter) ([]entity.ActivityLogEntry, error) {
	all := srv.store.Snapshot().ActivityLog

	out := make([]entity.ActivityLogEntry, 0, min(len(all), max(filter.Limit, 0)))
	for _, e := range all {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}

	return out, nil
}

func (srv *sessionService) checkPassword(password, stored string) bool {
	if isHashed(stored) {
		return srv.hasher.Check(password, stored)
	}

	return stored != "" && subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func isHashed(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix)
}
