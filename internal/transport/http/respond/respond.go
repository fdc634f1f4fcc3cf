package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

// envelope is the uniform response body: data on success, a
// human-readable message on failure, ok telling the two apart.
type envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	OK      bool   `json:"ok"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	write(w, r, status, envelope{Data: data, OK: true})
}

// Error maps a service error to an HTTP status and the failure envelope.
// Wrapped sentinels decide both the status and the message, so the
// internal call-chain prefixes never reach the client; everything
// unrecognized is a 500 with a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error", logger.ErrorF(err))
	}

	write(w, r, status, envelope{Message: message, OK: false})
}

func classify(err error) (int, string) {
	var insufficient *model.InsufficientStockError
	if errors.As(err, &insufficient) {
		return http.StatusUnprocessableEntity, insufficient.Error()
	}

	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, model.ErrValidation.Error()
	case errors.Is(err, model.ErrUnknownStatus):
		return http.StatusBadRequest, model.ErrUnknownStatus.Error()
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, model.ErrUnauthenticated.Error()
	case errors.Is(err, model.ErrSparePartNotFound):
		return http.StatusNotFound, model.ErrSparePartNotFound.Error()
	case errors.Is(err, model.ErrRepairPartNotFound):
		return http.StatusNotFound, model.ErrRepairPartNotFound.Error()
	case errors.Is(err, model.ErrDuplicateSKU):
		return http.StatusConflict, model.ErrDuplicateSKU.Error()
	case errors.Is(err, model.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, model.ErrInsufficientStock.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func write(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}
