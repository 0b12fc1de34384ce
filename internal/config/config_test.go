package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "lattemeister.db", cfg.DatabaseDSN)
	require.Equal(t, "media", cfg.MediaDir)
	require.Equal(t, 0, cfg.LogLevel)
	require.Equal(t, time.Second, cfg.Latency.Login)
	require.Equal(t, 2*time.Second, cfg.Latency.Upload)
	require.Equal(t, 1500*time.Millisecond, cfg.Latency.Reply)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "test.db")
	t.Setenv("MEDIA_DIR", "/tmp/media")
	t.Setenv("LATENCY_LOGIN", "0s")
	t.Setenv("LATENCY_REPLY", "10ms")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "test.db", cfg.DatabaseDSN)
	require.Equal(t, "/tmp/media", cfg.MediaDir)
	require.Equal(t, time.Duration(0), cfg.Latency.Login)
	require.Equal(t, 10*time.Millisecond, cfg.Latency.Reply)
	require.Equal(t, 2*time.Second, cfg.Latency.Upload)
}

func TestNewConfig_InvalidDuration(t *testing.T) {
	t.Setenv("LATENCY_UPLOAD", "not-a-duration")

	_, err := NewConfig()
	require.Error(t, err)
}
