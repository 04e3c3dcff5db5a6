package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/config"
)

func TestSetupLoggerCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "app.log")
	cfg := config.Config{
		Logging: config.LoggingConfig{
			Output: path,
			Level:  "debug",
		},
		Tracing: config.TracingConfig{
			ServiceName: "secret-santa-test",
		},
	}

	cleanup := setupLogger(cfg)
	defer cleanup()

	slog.Info("test message")
	cleanup()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), in)
	}
}
