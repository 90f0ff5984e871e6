package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"table-reservations-go/internal/config"
	"table-reservations-go/internal/db"
	reservationsdomain "table-reservations-go/internal/domain/reservations"
	tablesdomain "table-reservations-go/internal/domain/tables"
	reservationsrepo "table-reservations-go/internal/repository/reservations"
	tablesrepo "table-reservations-go/internal/repository/tables"
	"table-reservations-go/internal/transport/httpserver/handler"
	"table-reservations-go/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.Nop()
	conn, err := db.NewSQLite(":memory:", log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn, log))
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tableRepo := tablesrepo.NewPostgres(conn)
	handlers := handler.New(
		tablesdomain.NewService(tableRepo),
		reservationsdomain.NewService(reservationsrepo.NewPostgres(conn), tableRepo),
		sqlDB,
		log,
	)

	cfg := config.Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
	}
	return NewRouter(cfg, handlers, log)
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(rec *httptest.ResponseRecorder) string {
	return gjson.Get(rec.Body.String(), "error.code").String()
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func createTable(t *testing.T, router http.Handler, body string) int64 {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/tables", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return gjson.Get(rec.Body.String(), "content.id").Int()
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"titulo":"API de reserva de mesa"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestTableLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/tables", `{"seats": 4, "active": true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Table created", gjson.Get(rec.Body.String(), "message").String())
	id := gjson.Get(rec.Body.String(), "content.id").String()

	rec = do(t, router, http.MethodGet, "/tables", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":`+id+`,"seats":4,"active":true}]`, rec.Body.String())

	rec = do(t, router, http.MethodPatch, "/tables/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Table updated","content":{"id":`+id+`,"seats":4,"active":false}}`, rec.Body.String())

	rec = do(t, router, http.MethodPatch, "/tables/"+id, "")
	assert.True(t, gjson.Get(rec.Body.String(), "content.active").Bool())

	rec = do(t, router, http.MethodGet, "/tables/"+id, "")
	assert.JSONEq(t, `{"id":`+id+`,"seats":4,"active":true}`, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/tables/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Table deleted","content":{"id":`+id+`,"seats":4,"active":true}}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/tables/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(rec))
}

func TestCreateTableRejections(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name    string
		body    string
		code    string
		message string
	}{
		{"missing seats", `{"active": true}`, "missing_field", `The "seats" field is required.`},
		{"missing active", `{"seats": 2}`, "missing_field", `The "active" field is required.`},
		{"wrong type", `{"seats": "2", "active": true}`, "invalid_type", ""},
		{"zero seats", `{"seats": 0, "active": true}`, "invalid_field", ""},
		{"bad json", `{"seats":`, "invalid_json", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/tables", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.code, errorCode(rec))
			if tc.message != "" {
				assert.Equal(t, tc.message, gjson.Get(rec.Body.String(), "error.message").String())
			}
		})
	}

	rec := do(t, router, http.MethodGet, "/tables", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNonIntegerIDs(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/tables/a", "/tables/3.14", "/reservations/abc"} {
		rec := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "invalid_parameter", errorCode(rec), path)
		assert.Equal(t, `The parameter "id" must be integer`, gjson.Get(rec.Body.String(), "error.message").String())
	}

	rec := do(t, router, http.MethodDelete, "/reservations/1.5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, router, http.MethodPatch, "/tables/x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationBookingRules(t *testing.T) {
	router := newTestRouter(t)

	active := createTable(t, router, `{"seats": 4, "active": true}`)
	inactive := createTable(t, router, `{"seats": 2, "active": false}`)

	body := func(tableID int64, name, at string) string {
		return `{"table_id": ` + itoa(tableID) + `, "costumer_name": "` + name + `", "date_time": "` + at + `"}`
	}

	rec := do(t, router, http.MethodPost, "/reservations", body(active, "Ana", "2026-01-25T19:00:00Z"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Reservation created", gjson.Get(rec.Body.String(), "message").String())
	assert.Equal(t, "2026-01-25T19:00:00.000Z", gjson.Get(rec.Body.String(), "content.date_time").String())
	assert.Equal(t, "Ana", gjson.Get(rec.Body.String(), "content.costumer_name").String())

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"same slot", body(active, "Bia", "2026-01-25T19:00:00.000Z"), http.StatusBadRequest, "slot_conflict"},
		{"missing table", `{"costumer_name": "Ana", "date_time": "2026-01-25T19:00:00Z"}`, http.StatusBadRequest, "missing_field"},
		{"blank name", body(active, "  ", "2026-01-25T21:00:00Z"), http.StatusBadRequest, "missing_field"},
		{"bad instant", body(active, "Ana", "2026-01-25 19:00"), http.StatusBadRequest, "invalid_time_format"},
		{"unknown table", body(9999, "Ana", "2026-01-25T19:00:00Z"), http.StatusNotFound, "table_not_found"},
		{"inactive table", body(inactive, "Ana", "2026-01-25T19:00:00Z"), http.StatusConflict, "table_inactive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/reservations", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.code, errorCode(rec))
		})
	}

	rec = do(t, router, http.MethodGet, "/reservations", "")
	assert.Len(t, gjson.Parse(rec.Body.String()).Array(), 1)
}

func TestReservationReadUpdateDelete(t *testing.T) {
	router := newTestRouter(t)
	tableID := createTable(t, router, `{"seats": 4, "active": true}`)

	rec := do(t, router, http.MethodPost, "/reservations",
		`{"table_id": `+itoa(tableID)+`, "costumer_name": "Ana", "date_time": "2026-01-25T19:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := gjson.Get(rec.Body.String(), "content.id").String()

	rec = do(t, router, http.MethodGet, "/reservations?date=2026-01-25", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, gjson.Parse(rec.Body.String()).Array(), 1)

	rec = do(t, router, http.MethodGet, "/reservations?date=2026-01-26", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/reservations?date=2026-13-40", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/reservations?date=25/01/2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_date_format", errorCode(rec))

	rec = do(t, router, http.MethodPut, "/reservations/"+id, `{"costumer_name": "Ana Maria"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reservation updated", gjson.Get(rec.Body.String(), "message").String())
	assert.Equal(t, "Ana Maria", gjson.Get(rec.Body.String(), "content.costumer_name").String())
	assert.Equal(t, "2026-01-25T19:00:00.000Z", gjson.Get(rec.Body.String(), "content.date_time").String())

	rec = do(t, router, http.MethodGet, "/reservations/"+id, "")
	assert.Equal(t, "Ana Maria", gjson.Get(rec.Body.String(), "costumer_name").String())

	rec = do(t, router, http.MethodDelete, "/tables/"+itoa(tableID), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "table_in_use", errorCode(rec))

	rec = do(t, router, http.MethodDelete, "/reservations/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reservation deleted", gjson.Get(rec.Body.String(), "message").String())
	assert.Equal(t, "Ana Maria", gjson.Get(rec.Body.String(), "content.costumer_name").String())

	rec = do(t, router, http.MethodDelete, "/reservations/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, router, http.MethodPut, "/reservations/"+id, `{"costumer_name": "X"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailableTables(t *testing.T) {
	router := newTestRouter(t)
	booked := createTable(t, router, `{"seats": 4, "active": true}`)
	free := createTable(t, router, `{"seats": 2, "active": true}`)
	createTable(t, router, `{"seats": 6, "active": false}`)

	rec := do(t, router, http.MethodPost, "/reservations",
		`{"table_id": `+itoa(booked)+`, "costumer_name": "Ana", "date_time": "2026-01-25T19:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/tables/available?date=2026-01-25", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":`+itoa(free)+`,"seats":2,"active":true}]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/tables/available", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_date_format", errorCode(rec))
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/tables", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
