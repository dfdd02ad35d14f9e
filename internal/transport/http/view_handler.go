package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"gridview/internal/dataview"
	apierrors "gridview/internal/errors"
	"gridview/internal/services"
)

// ViewHandler serves the primary source: table preview, selectable labels,
// view projections, and the sparkline summary.
type ViewHandler struct {
	service      *services.ViewService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewViewHandler creates a new view handler
func NewViewHandler(service *services.ViewService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ViewHandler {
	return &ViewHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "view_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the view routes
func (h *ViewHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/table", h.GetTable)
	r.Get("/labels", h.GetLabels)
	r.Get("/months", h.GetMonths)
	r.Get("/sparkline", h.GetSparkline)
	r.Post("/view", h.PostView)

	return r
}

// GetTable handles GET /api/table — the row-capped preview
func (h *ViewHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	preview, err := h.service.Preview(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, preview)
}

// GetLabels handles GET /api/labels — the downsampled range-slider options
func (h *ViewHandler) GetLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.DisplayLabels(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"labels": labels})
}

// GetMonths handles GET /api/months — the selectable month buckets
func (h *ViewHandler) GetMonths(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"months": dataview.MonthNames()})
}

// GetSparkline handles GET /api/sparkline — first-month column statistics
func (h *ViewHandler) GetSparkline(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Sparkline(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// PostView handles POST /api/view — one fully specified view request
func (h *ViewHandler) PostView(w http.ResponseWriter, r *http.Request) {
	var req dataview.ViewRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation(first.Field(), first.Tag()))
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidationFailed)
		return
	}

	result, err := h.service.ExecuteView(r.Context(), req)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}
