package handler

import (
	"net/http"

	tablesdomain "table-reservations-go/internal/domain/tables"
)

type tableResponse struct {
	ID     int64 `json:"id"`
	Seats  int   `json:"seats"`
	Active bool  `json:"active"`
}

func toTableResponse(table tablesdomain.Table) tableResponse {
	return tableResponse{
		ID:     table.ID,
		Seats:  table.Seats,
		Active: table.Active,
	}
}

func toTableListResponse(items []tablesdomain.Table) []tableResponse {
	response := make([]tableResponse, 0, len(items))
	for _, table := range items {
		response = append(response, toTableResponse(table))
	}
	return response
}

func toTableMessage(result *tablesdomain.Result) messageResponse {
	return messageResponse{Message: result.Message, Content: toTableResponse(*result.Content)}
}

func (h *Handlers) ListTables(w http.ResponseWriter, r *http.Request) {
	items, err := h.Tables.List(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTableListResponse(items))
}

func (h *Handlers) ListAvailableTables(w http.ResponseWriter, r *http.Request) {
	items, err := h.Reservations.ListAvailableTables(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTableListResponse(items))
}

func (h *Handlers) GetTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	table, err := h.Tables.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if table == nil {
		writeNotFound(w, "table not found")
		return
	}

	writeJSON(w, http.StatusOK, toTableResponse(*table))
}

func (h *Handlers) CreateTable(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	input, err := tablesdomain.DecodeCreateTableInput(body)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Tables.Create(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTableMessage(result))
}

func (h *Handlers) ToggleTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Tables.ToggleActive(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if result == nil {
		writeNotFound(w, "table not found")
		return
	}

	writeJSON(w, http.StatusOK, toTableMessage(result))
}

func (h *Handlers) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Tables.Delete(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if result == nil {
		writeNotFound(w, "table not found")
		return
	}

	writeJSON(w, http.StatusOK, toTableMessage(result))
}
