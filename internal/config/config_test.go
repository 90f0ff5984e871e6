package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-reservations-go/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TIMEZONE", "DB_DRIVER", "CORS_ALLOWED_ORIGINS", "HTTP_REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "restaurant", cfg.DB.Name)
	assert.Equal(t, "host=localhost user=postgres password=123 dbname=restaurant port=5432 sslmode=disable TimeZone=UTC", cfg.DB.GetDSN())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "5s")
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.DB.MaxOpenConns)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.GetDSN())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_DRIVER", "oracle")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotEnvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("TEST_DOTENV_VALUE=from-file\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("TEST_DOTENV_VALUE")
	})

	require.NoError(t, LoadDotEnv(logger.Nop()))
	assert.Equal(t, "from-file", os.Getenv("TEST_DOTENV_VALUE"))
}
