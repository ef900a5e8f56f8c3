package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	mockService "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	coreFixtures
	service      usecase.SessionUsecase
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	state := entity.DefaultState()
	state.Users = []entity.User{
		{ID: "user-1", Name: "Hala", Username: "Hala", Password: "$2a$10$hash", Role: entity.RoleGeneralManager},
		{ID: "user-2", Name: "Omar", Username: "omar", Password: "legacy-pass", Role: entity.RoleStaff},
	}

	core := newCoreFixtures(t, state)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		Store:        core.store,
		Clock:        core.clock,
		IDs:          core.ids,
		Hasher:       hasher,
		TokenService: tokenService,
		Texts:        core.texts,
		Logger:       core.logger,
	})

	return sessionServiceFixtures{
		coreFixtures: core,
		service:      svc,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSessionService_Login_Hashed(t *testing.T) {
	fx := createTestSessionService(t)

	fx.hasher.EXPECT().Check("secret", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("entity.User"), testNow).
		Return("signed-token", nil)

	result, err := fx.service.Login(context.Background(), " hala ", "secret")
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Empty(t, result.User.Password)

	entry := fx.store.Snapshot().ActivityLog[0]
	assert.Equal(t, entity.ActivityLogin, entry.Type)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "Logged in", entry.Details)
	assert.Nil(t, entry.Duration)
}

func TestSessionService_Login_UpgradesLegacyPassword(t *testing.T) {
	fx := createTestSessionService(t)

	fx.hasher.EXPECT().Hash("legacy-pass").Return("$2a$10$upgraded", nil)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("entity.User"), testNow).
		Return("signed-token", nil)

	_, err := fx.service.Login(context.Background(), "omar", "legacy-pass")
	require.NoError(t, err)

	stored, ok := fx.store.Snapshot().FindUser("user-2")
	require.True(t, ok)
	assert.Equal(t, "$2a$10$upgraded", stored.Password)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, err := fx.service.Login(ctx, "hala", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, "omar", "not-legacy")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, "nobody", "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, " ", "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	assert.Empty(t, fx.store.Snapshot().ActivityLog)
}

func TestSessionService_Login_TokenFailure(t *testing.T) {
	fx := createTestSessionService(t)

	fx.hasher.EXPECT().Check("secret", "$2a$10$hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("entity.User"), testNow).
		Return("", errors.New("no signing key"))

	_, err := fx.service.Login(context.Background(), "hala", "secret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate token")
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t)

	claims := &service.Claims{
		Name:             "Hala",
		Role:             entity.RoleGeneralManager,
		LoginAt:          testNow.Add(-90*time.Second - 600*time.Millisecond).UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}

	require.NoError(t, fx.service.Logout(context.Background(), claims))

	entry := fx.store.Snapshot().ActivityLog[0]
	assert.Equal(t, entity.ActivityLogout, entry.Type)
	assert.Equal(t, "user-1", entry.UserID)
	require.NotNil(t, entry.Duration)
	assert.Equal(t, 91, *entry.Duration, "duration is rounded to whole seconds")

	assert.ErrorIs(t, fx.service.Logout(context.Background(), nil), domainerrors.ErrUnauthorized)
}

func TestSessionService_Activity(t *testing.T) {
	state := entity.DefaultState()
	state.ActivityLog = []entity.ActivityLogEntry{
		{ID: "log-3", UserID: "user-1", Type: entity.ActivityAction},
		{ID: "log-2", UserID: "user-2", Type: entity.ActivityLogin},
		{ID: "log-1", UserID: "user-1", Type: entity.ActivityLogin},
	}
	core := newCoreFixtures(t, state)
	svc := NewSessionService(SessionServiceParams{Store: core.store, Clock: core.clock, IDs: core.ids, Texts: core.texts, Logger: core.logger})
	ctx := context.Background()

	logins, err := svc.Activity(ctx, usecase.ActivityFilter{Type: entity.ActivityLogin})
	require.NoError(t, err)
	assert.Len(t, logins, 2)

	mine, err := svc.Activity(ctx, usecase.ActivityFilter{UserID: "user-1", Limit: 1})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "log-3", mine[0].ID)
}
