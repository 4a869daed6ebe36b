package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/platform/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_DRIVER", "SQLITE_PATH", "PORT", "AUTH_REQUIRED", "LOG_FORMAT", "HTTP_READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.NoError(t, cfg.Validate())
	require.Equal(t, storage.DriverSQLite, cfg.StoreDriver)
	require.Equal(t, "data/pawfect.db", cfg.Storage().SQLitePath)
	require.Equal(t, ":8080", cfg.Addr())
	require.False(t, cfg.AuthRequired)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, logger.FormatText, cfg.LogFormat)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	require.Equal(t, storage.DriverSQLite, cfg.StoreDriver)
	require.Equal(t, "/tmp/x.db", cfg.Storage().SQLitePath)
	require.True(t, cfg.AuthRequired)
	require.Equal(t, logger.FormatJSON, cfg.Logger().Format)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, ":9090", cfg.Addr())
}

func TestValidate_Rejects(t *testing.T) {
	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DB_DSN", "")
		require.ErrorContains(t, Load().Validate(), "DB_DSN")
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		require.ErrorContains(t, Load().Validate(), "mongo")
	})
	t.Run("bad values", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("AUTH_REQUIRED", "maybe")
		t.Setenv("DB_MAX_OPEN_CONNS", "ten")
		t.Setenv("HTTP_WRITE_TIMEOUT", "soon")
		err := Load().Validate()
		require.ErrorContains(t, err, "AUTH_REQUIRED")
		require.ErrorContains(t, err, "DB_MAX_OPEN_CONNS")
		require.ErrorContains(t, err, "HTTP_WRITE_TIMEOUT")
	})
}
