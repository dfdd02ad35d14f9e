package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorHandler provides centralized error handling for HTTP transport.
// It maps the pipeline taxonomy onto API responses so that a request-level
// failure always renders as an explicit "cannot display" payload and never
// as a misleading empty chart.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError converts any error to a structured API response and renders it
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	render.Render(w, r, h.toAPIError(err))
}

// toAPIError maps errors onto API error responses
func (h *ErrorHandler) toAPIError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return New(http.StatusGatewayTimeout, "TIMEOUT", "The request took too long to process and was cancelled")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrTypeEmptySource:
			return NewWithDetails(http.StatusUnprocessableEntity, "EMPTY_SOURCE", appErr.Message, appErr.Context)
		case ErrTypeSelection:
			return NewWithDetails(http.StatusBadRequest, "SELECTION_FAILED", appErr.Message, appErr.Context)
		case ErrTypeProjection:
			return NewWithDetails(http.StatusUnprocessableEntity, "EMPTY_PROJECTION", appErr.Message, appErr.Context)
		case ErrTypeValidation:
			return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", appErr.Message, appErr.Context)
		case ErrTypeParse:
			return NewWithDetails(http.StatusUnprocessableEntity, "PARSE_FAILED", appErr.Message, appErr.Context)
		case ErrTypeStorage:
			return New(http.StatusInternalServerError, "STORAGE_ERROR", appErr.Message)
		}
	}

	return ErrInternalServer
}
