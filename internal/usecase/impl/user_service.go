package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	ids    service.IDGenerator
	hasher service.PasswordHasher
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	hasher service.PasswordHasher,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids},
		clock:  clock,
		ids:    ids,
		hasher: hasher,
		texts:  texts,
		logger: logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every user without password hashes
func (srv *userService) List(_ context.Context) ([]entity.User, error) {
	users := srv.store.Snapshot().Users

	out := make([]entity.User, len(users))
	for i, u := range users {
		out[i] = withoutPassword(u)
	}

	return out, nil
}

// Save creates or updates a staff account
func (srv *userService) Save(ctx context.Context, actor entity.Actor, in usecase.UserInput) (*entity.User, error) {
	if !actor.Role.IsManager() {
		return nil, domainerrors.ErrPermissionDenied
	}
	in.Username = strings.TrimSpace(in.Username)
	if !in.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	if in.ID == "" && in.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is required for new users")
	}

	// Hashing is slow, keep it out of the store lock.
	var hash string
	if in.Password != "" {
		var err error
		if hash, err = srv.hasher.Hash(in.Password); err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed
		}
	}

	var saved entity.User
	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		for _, u := range state.Users {
			if u.ID != in.ID && strings.EqualFold(u.Username, in.Username) {
				return domainerrors.ErrUsernameTaken
			}
		}

		user := entity.User{ID: in.ID}
		if in.ID == "" {
			user.ID = srv.ids.New("user-")
		} else {
			existing, ok := state.FindUser(in.ID)
			if !ok {
				return domainerrors.ErrNotFound.WithDetails("user not found")
			}
			user.Password = existing.Password
		}
		if hash != "" {
			user.Password = hash
		}
		user.Name = strings.TrimSpace(in.Name)
		user.Username = in.Username
		user.Role = in.Role
		user.Phone = in.Phone
		user.Email = in.Email
		user.LastModified = srv.clock.Now()

		state.PutUser(user)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditUserSaved, user.Name))
		saved = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User save rejected", slog.Any("error", err), slog.String("username", in.Username))

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("User saved", slog.String("user_id", saved.ID), slog.String("role", saved.Role.Key()))

	out := withoutPassword(saved)

	return &out, nil
}

func withoutPassword(u entity.User) entity.User {
	u.Password = ""

	return u
}
