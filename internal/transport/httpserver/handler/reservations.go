package handler

import (
	"net/http"

	reservationsdomain "table-reservations-go/internal/domain/reservations"
)

type reservationResponse struct {
	ID           int64  `json:"id"`
	TableID      int64  `json:"table_id"`
	CostumerName string `json:"costumer_name"`
	DateTime     string `json:"date_time"`
}

func toReservationResponse(reservation reservationsdomain.Reservation) reservationResponse {
	return reservationResponse{
		ID:           reservation.ID,
		TableID:      reservation.TableID,
		CostumerName: reservation.CostumerName,
		DateTime:     reservationsdomain.FormatDateTime(reservation.DateTime),
	}
}

func toReservationMessage(result *reservationsdomain.Result) messageResponse {
	return messageResponse{Message: result.Message, Content: toReservationResponse(*result.Content)}
}

// ListReservations serves every reservation, or only those on one UTC day
// when a date query parameter is given.
func (h *Handlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		items []reservationsdomain.Reservation
		err   error
	)
	if query.Has("date") {
		items, err = h.Reservations.ListByDate(r.Context(), query.Get("date"))
	} else {
		items, err = h.Reservations.List(r.Context())
	}
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	response := make([]reservationResponse, 0, len(items))
	for _, reservation := range items {
		response = append(response, toReservationResponse(reservation))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	reservation, err := h.Reservations.GetByID(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if reservation == nil {
		writeNotFound(w, "reservation not found")
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(*reservation))
}

func (h *Handlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	input, err := reservationsdomain.DecodeCreateReservationInput(body)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Reservations.Create(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReservationMessage(result))
}

func (h *Handlers) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	input, err := reservationsdomain.DecodeUpdateReservationInput(body)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Reservations.Update(r.Context(), id, input)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if result == nil {
		writeNotFound(w, "reservation not found")
		return
	}

	writeJSON(w, http.StatusOK, toReservationMessage(result))
}

func (h *Handlers) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	result, err := h.Reservations.Delete(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if result == nil {
		writeNotFound(w, "reservation not found")
		return
	}

	writeJSON(w, http.StatusOK, toReservationMessage(result))
}
