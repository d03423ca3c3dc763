package order

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Handler handles HTTP requests for orders
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register mounts the order routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{id}", h.GetOrder)
	r.Patch("/orders/{id}/status", h.UpdateStatus)
	r.Get("/customers/{id}/orders", h.ListCustomerOrders)
}

// CreateOrder handles POST /orders requests
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	var req models.CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	order, err := h.service.CreateOrder(ctx, &req)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, map[string]interface{}{
			"customer_id":   req.CustomerID,
			"restaurant_id": req.RestaurantID,
		})
		httpx.WriteError(w, requestID, err)
		return
	}

	h.logger.Debug("order_created", "Order created successfully", requestID, map[string]interface{}{
		"order_id":    order.ID,
		"total_price": order.TotalPrice.String(),
	})

	httpx.WriteJSON(w, http.StatusOK, order)
}

// GetOrder handles GET /orders/{id} requests
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	id, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /orders/{id}/status requests
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	id, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		h.logger.Error("status_update_failed", "Failed to update order status", requestID, err, map[string]interface{}{
			"order_id": id,
			"status":   req.Status,
		})
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

// ListCustomerOrders handles GET /customers/{id}/orders requests
func (h *Handler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	customerID, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid customer id", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.service.ListOrdersForCustomer(ctx, customerID)
	if err != nil {
		httpx.WriteError(w, requestID, err)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}
