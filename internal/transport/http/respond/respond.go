package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/logger"
)

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.ErrorF(err),
		)
	}
	JSON(w, r, status, ErrorBody{Code: status, Message: err.Error()})
}

// StatusFromError maps domain errors to HTTP statuses. Not-found is checked
// first since remote 404s also carry ErrNetwork.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrNoStoreSelected):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrItemNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrStoreNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden // 403
	case errors.Is(err, model.ErrNetwork):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

// Decode reads a JSON request body into v. Unknown fields are rejected.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", model.ErrValidation, err)
	}
	return nil
}
