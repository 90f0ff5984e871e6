package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-reservations-go/internal/config"
	"table-reservations-go/pkg/logger"
)

func TestNewWiresSQLiteApp(t *testing.T) {
	cfg := config.Config{
		HTTPPort:       "0",
		Env:            "test",
		RequestTimeout: 5 * time.Second,
		DB:             config.DBConfig{Driver: "sqlite", SQLitePath: ":memory:"},
	}

	application, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	srv := application.HTTPServer()
	assert.Equal(t, ":0", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(config.Config{DB: config.DBConfig{Driver: "oracle"}}, logger.Nop())
	assert.Error(t, err)
}
