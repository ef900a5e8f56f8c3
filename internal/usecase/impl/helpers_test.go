package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/i18n"
	"crm/internal/testutil"
	"crm/internal/usecase"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

var (
	generalManager = entity.Actor{UserID: "user-gm", UserName: "Hala", Role: entity.RoleGeneralManager}
	teamLeader     = entity.Actor{UserID: "user-tl", UserName: "Sara", Role: entity.RoleTeamLeader}
	staffMember    = entity.Actor{UserID: "user-st", UserName: "Omar", Role: entity.RoleStaff}
	moderator      = entity.Actor{UserID: "user-md", UserName: "Nour", Role: entity.RoleModerator}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Sync:  &config.SyncConfig{Debounce: 1500 * time.Millisecond},
		Tasks: &config.TasksConfig{FeedbackWindow: 7 * 24 * time.Hour},
	}
}

// coreFixtures are the collaborators every state-backed service shares.
type coreFixtures struct {
	store  usecase.StateStore
	clock  *testutil.FakeClock
	ids    *testutil.SequentialIDs
	texts  *i18n.Texts
	logger *slog.Logger
}

func newCoreFixtures(t *testing.T, seed *entity.AppState) coreFixtures {
	t.Helper()

	logger := newDiscardLogger()
	store := NewStateStore(logger)
	if seed != nil {
		store.Replace(context.Background(), seed, usecase.OriginLoad)
	}

	return coreFixtures{
		store:  store,
		clock:  testutil.NewFakeClock(testNow),
		ids:    &testutil.SequentialIDs{},
		texts:  i18n.New("en"),
		logger: logger,
	}
}

func seedCustomer(state *entity.AppState, c entity.Customer) {
	if c.Log == nil {
		c.Log = []entity.CustomerLogEntry{}
	}
	if c.Impressions == nil {
		c.Impressions = []entity.CustomerImpression{}
	}
	state.PutCustomer(c)
}

func seedUsers(state *entity.AppState) {
	state.Users = []entity.User{
		{ID: "user-gm", Name: "Hala", Username: "hala", Role: entity.RoleGeneralManager, Email: "hala@example.com"},
		{ID: "user-am", Name: "Karim", Username: "karim", Role: entity.RoleAccountsManager, Email: "karim@example.com"},
		{ID: "user-tl", Name: "Sara", Username: "sara", Role: entity.RoleTeamLeader, Email: "sara@example.com"},
		{ID: "user-st", Name: "Omar", Username: "omar", Role: entity.RoleStaff, Email: "omar@example.com"},
		{ID: "user-md", Name: "Nour", Username: "nour", Role: entity.RoleModerator},
	}
}

func activityDetails(state *entity.AppState) []string {
	out := make([]string, 0, len(state.ActivityLog))
	for _, e := range state.ActivityLog {
		out = append(out, e.Details)
	}

	return out
}
