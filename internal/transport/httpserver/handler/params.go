package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	tablesdomain "table-reservations-go/internal/domain/tables"
)

func parseIDParam(r *http.Request) (int64, error) {
	return tablesdomain.ParseID(chi.URLParam(r, "id"))
}
