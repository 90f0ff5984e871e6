package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"table-reservations-go/internal/domain/errs"
)

const maxBodyBytes = 1 << 20

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string      `json:"message"`
	Content interface{} `json:"content"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.InvalidBody(err)
	}
	return body, nil
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindMissingField,
		errs.KindInvalidParameter,
		errs.KindInvalidType,
		errs.KindInvalidField,
		errs.KindInvalidBody,
		errs.KindInvalidDateFormat,
		errs.KindInvalidTimeFormat,
		errs.KindSlotConflict:
		return http.StatusBadRequest
	case errs.KindTableNotFound:
		return http.StatusNotFound
	case errs.KindTableInactive, errs.KindTableInUse:
		return http.StatusConflict
	case errs.KindStorage, errs.KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError maps a classified error to its status and envelope.
// Server faults never leak their cause to the client.
func (h *Handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		h.log.InternalError("http: request failed", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, status, errs.KindStorage.String(), "internal error")
		return
	}

	h.log.BusinessError("http: request rejected", err, "method", r.Method, "path", r.URL.Path, "code", kind.String())
	writeError(w, status, kind.String(), err.Error())
}
