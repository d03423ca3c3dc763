package reporting

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Handler handles HTTP requests for reports
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new reporting handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register mounts the reporting routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/restaurants/{id}/revenue", h.RestaurantRevenue)
	r.Get("/menu/top-items", h.TopMenuItems)
	r.Get("/customers/top", h.TopCustomers)
}

// RestaurantRevenue handles GET /restaurants/{id}/revenue requests
func (h *Handler) RestaurantRevenue(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	restaurantID, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	revenue, err := h.service.RestaurantRevenue(ctx, restaurantID)
	if err != nil {
		h.logger.Error("report_failed", "Failed to compute revenue", requestID, err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": restaurantID,
		"total_revenue": revenue,
	})
}

// TopMenuItems handles GET /menu/top-items requests
func (h *Handler) TopMenuItems(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)
	limit := httpx.QueryInt(r, "limit", DefaultTopMenuItemsLimit)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := h.service.TopMenuItems(ctx, limit)
	if err != nil {
		h.logger.Error("report_failed", "Failed to compute top menu items", requestID, err, nil)
		httpx.WriteError(w, requestID, err)
		return
	}

	if items == nil {
		items = []models.MenuItemSales{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// TopCustomers handles GET /customers/top requests
func (h *Handler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)
	limit := httpx.QueryInt(r, "limit", DefaultTopCustomersLimit)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customers, err := h.service.TopCustomers(ctx, limit)
	if err != nil {
		h.logger.Error("report_failed", "Failed to compute top customers", requestID, err, nil)
		httpx.WriteError(w, requestID, err)
		return
	}

	if customers == nil {
		customers = []models.CustomerOrderCount{}
	}
	httpx.WriteJSON(w, http.StatusOK, customers)
}
