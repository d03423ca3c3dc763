package menu

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Handler handles HTTP requests for restaurants and menus
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register mounts the restaurant and menu routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/restaurants", h.CreateRestaurant)
	r.Get("/restaurants/{id}/menu", h.ListAvailableMenu)
	r.Post("/restaurants/{id}/menu", h.AddMenuItem)
	r.Patch("/menu/{id}", h.UpdateMenuItem)
}

// CreateRestaurant handles POST /restaurants requests
func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	var req models.CreateRestaurantRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	restaurant, err := h.service.CreateRestaurant(ctx, &req)
	if err != nil {
		h.logger.Error("restaurant_creation_failed", "Failed to create restaurant", requestID, err, nil)
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, restaurant)
}

// ListAvailableMenu handles GET /restaurants/{id}/menu requests
func (h *Handler) ListAvailableMenu(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	restaurantID, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := h.service.ListAvailableMenu(ctx, restaurantID)
	if err != nil {
		httpx.WriteError(w, requestID, err)
		return
	}

	if items == nil {
		items = []models.MenuItem{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// AddMenuItem handles POST /restaurants/{id}/menu requests
func (h *Handler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	restaurantID, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid restaurant id", requestID)
		return
	}

	var req models.AddMenuItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	item, err := h.service.AddMenuItem(ctx, restaurantID, &req)
	if err != nil {
		h.logger.Error("menu_item_creation_failed", "Failed to add menu item", requestID, err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, item)
}

// UpdateMenuItem handles PATCH /menu/{id} requests
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	id, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid menu item id", requestID)
		return
	}

	var req models.UpdateMenuItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	item, err := h.service.UpdateMenuItem(ctx, id, &req)
	if err != nil {
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, item)
}
