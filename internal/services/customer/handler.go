package customer

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Handler handles HTTP requests for customers
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new customer handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register mounts the customer routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers/{id}", h.GetCustomer)
}

// CreateCustomer handles POST /customers requests
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	var req models.CreateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := h.service.CreateCustomer(ctx, &req)
	if err != nil {
		h.logger.Error("customer_creation_failed", "Failed to create customer", requestID, err, nil)
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, customer)
}

// GetCustomer handles GET /customers/{id} requests
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r)

	id, err := httpx.URLParamInt64(r, "id")
	if err != nil {
		httpx.WriteErrorMessage(w, http.StatusBadRequest, "Invalid customer id", requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := h.service.GetCustomer(ctx, id)
	if err != nil {
		httpx.WriteError(w, requestID, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, customer)
}
