package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/galo-project/clube-api/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeError maps usecase sentinels to HTTP statuses. Unmapped errors are
// reported as a generic 500: the cause stays in the server log only.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status, message := mapError(err)
	writeJSON(ctx, w, status, errorBody{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrNoData):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable, "upstream data provider unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
