package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"crm/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_BundledConfig(t *testing.T) {
	t.Setenv("SYNC_UPSTREAM", "ws://primary:8080/ws")
	t.Setenv("WORKER_PUSHAUDIENCE", "https://worker.example.com/push")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "crm", cfg.Env.ServiceName)
	assert.Equal(t, "ar", cfg.Env.Locale)
	assert.Equal(t, constants.StoreProviderBlob, cfg.Store.Provider)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 168*time.Hour, cfg.Tasks.FeedbackWindow)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)

	assert.Equal(t, "ws://primary:8080/ws", cfg.Sync.Upstream)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, "https://worker.example.com/push", cfg.Worker.PushAudience)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.ErrorContains(t, err, "config file does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.yaml"), []byte("env:\n  env: develop\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("minimal", rel)
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultLocale, cfg.Env.Locale)
	assert.Equal(t, constants.DefaultBlobURL, cfg.Store.Blob.URL)
	assert.Equal(t, constants.DefaultSnapshotKey, cfg.Store.Blob.Key)
	assert.Equal(t, defaultRemoteTimeout, cfg.Store.Remote.Timeout)
	assert.Equal(t, defaultDebounce, cfg.Sync.Debounce)
	assert.Equal(t, defaultReconnectInterval, cfg.Sync.ReconnectInterval)
	assert.Empty(t, cfg.Sync.Upstream)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultEmailEndpoint, cfg.Email.Endpoint)
	assert.Equal(t, defaultEmailTimeout, cfg.Email.Timeout)
	assert.Equal(t, defaultFeedbackWindow, cfg.Tasks.FeedbackWindow)
}
