package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"gridview/internal/dataview"
	apierrors "gridview/internal/errors"
	"gridview/internal/services"
)

// ProductionHandler serves aggregations over the secondary production
// record set.
type ProductionHandler struct {
	service      *services.ProductionService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewProductionHandler creates a new production handler
func NewProductionHandler(service *services.ProductionService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ProductionHandler {
	return &ProductionHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "production_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the production routes
func (h *ProductionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/pivot", h.GetPivot)
	r.Get("/totals", h.GetTotals)

	return r
}

// filterFromQuery builds the aggregation filter from query parameters:
// month (required), groups (comma separated, optional), area (optional).
func filterFromQuery(r *http.Request) (dataview.AggregateFilter, error) {
	month := r.URL.Query().Get("month")
	if month == "" {
		return dataview.AggregateFilter{}, apierrors.ErrValidation("month", "month query parameter is required")
	}

	filter := dataview.AggregateFilter{
		Month: month,
		Area:  r.URL.Query().Get("area"),
	}
	if groups := r.URL.Query().Get("groups"); groups != "" {
		for _, g := range strings.Split(groups, ",") {
			if g = strings.TrimSpace(g); g != "" {
				filter.Groups = append(filter.Groups, g)
			}
		}
	}
	return filter, nil
}

// GetPivot handles GET /api/production/pivot — timestamps x groups sums
func (h *ProductionHandler) GetPivot(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	pivot, err := h.service.Pivot(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, pivot)
}

// GetTotals handles GET /api/production/totals — per-group share totals
func (h *ProductionHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	totals, err := h.service.Totals(r.Context(), filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"totals": totals})
}
