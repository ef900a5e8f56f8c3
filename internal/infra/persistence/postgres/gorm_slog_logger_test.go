package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"crm/config"
	domainerrors "crm/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &line))

	return line
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO state_snapshots", 0
	}, errors.New("connection reset"))

	line := lastLogLine(t, buf)
	assert.Equal(t, "Snapshot query failed", line["msg"])
	assert.Equal(t, "connection reset", line["error"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM state_snapshots", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowSnapshotQuery(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "UPDATE state_snapshots SET data = $1", 1
	}, nil)

	line := lastLogLine(t, buf)
	assert.Equal(t, "Snapshot query slow", line["msg"])
	assert.Equal(t, "WARN", line["level"])
}

func TestGormSlogLogger_Printf(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.Info(context.Background(), "migrated %d tables", 2)
	assert.Empty(t, buf.String(), "info is below the default level")

	gormLogger.Warn(context.Background(), "column %s dropped", "legacy")
	line := lastLogLine(t, buf)
	assert.Equal(t, "Snapshot store", line["msg"])
	assert.Equal(t, "column legacy dropped", line["message"])
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(true)
	statement := "INSERT INTO state_snapshots VALUES ('" + strings.Repeat("x", 4096) + "')"

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return statement, 1
	}, nil)

	line := lastLogLine(t, buf)
	assert.Equal(t, "Snapshot query", line["msg"])
	sql, ok := line["sql"].(string)
	require.True(t, ok)
	assert.Less(t, len(sql), len(statement))
	assert.True(t, strings.HasSuffix(sql, "bytes)"))
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(true)

	gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestTranslateError(t *testing.T) {
	err := translateError(gorm.ErrDuplicatedKey, "failed to save state snapshot")
	assert.Contains(t, err.Error(), "database execution failed")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "failed to save state snapshot: unique constraint violated", appErr.Details())

	notNull := translateError(errors.New(`null value in column "data" violates not-null constraint (SQLSTATE 23502)`), "failed to save")
	require.True(t, errors.As(notNull, &appErr))
	assert.Equal(t, "failed to save: not null constraint violated", appErr.Details())

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
