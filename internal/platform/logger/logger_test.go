package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoescuela/clientes-api/internal/config"
	"github.com/autoescuela/clientes-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case level", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			// Setup also installs the logger as the process default.
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestSetupLevelThreshold(t *testing.T) {
	log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, log.Enabled(ctx, slog.LevelInfo))
	assert.True(t, log.Enabled(ctx, slog.LevelWarn))
	assert.True(t, log.Enabled(ctx, slog.LevelError))
}

func TestFromContext(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns stored logger", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), base)
		assert.Same(t, base, logger.FromContext(ctx))
	})

	t.Run("falls back to default when absent", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("nil context returns provided default", func(t *testing.T) {
		assert.Same(t, base, logger.FromContextOrDefault(nil, base)) //nolint:staticcheck
	})
}
