// Package httpx holds the request-layer plumbing shared by all service
// handlers: router assembly, strict JSON decoding, and the mapping from
// core error kinds to transport status codes.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"quickbite/internal/logger"
	"quickbite/internal/models"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// NewRouter builds the shared chi router with CORS and request logging.
func NewRouter(log *logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Default().Handler)
	r.Use(RequestLogger(log))
	return r
}

// RequestID returns the correlation ID attached to the request context.
func RequestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger logs request start and completion with duration and
// status code, and attaches a request ID to the context.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := logger.GenerateRequestID()
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			log.Debug("request_started",
				fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				requestID,
				map[string]interface{}{
					"method":      r.Method,
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
					"user_agent":  r.Header.Get("User-Agent"),
				})

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			log.Debug("request_completed",
				fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
				requestID,
				map[string]interface{}{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status_code": rw.statusCode,
					"duration_ms": duration.Milliseconds(),
				})
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// DecodeJSON decodes a request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// URLParamInt64 parses a numeric chi URL parameter.
func URLParamInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// QueryInt reads an optional integer query parameter, falling back to def
// when absent or unparsable.
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps a core error to its transport status code and writes the
// error envelope. The mapping:
//
//	ValidationError        -> 400
//	NotFoundError          -> 404
//	CrossRestaurantError   -> 409
//	InvalidTransitionError -> 409
//	TimeoutError           -> 504
//	PersistenceError/other -> 500
func WriteError(w http.ResponseWriter, requestID string, err error) {
	statusCode := http.StatusInternalServerError
	message := err.Error()

	var (
		validationErr models.ValidationError
		notFoundErr   models.NotFoundError
		crossErr      models.CrossRestaurantError
		transitionErr models.InvalidTransitionError
		timeoutErr    models.TimeoutError
		persistErr    models.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		statusCode = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		statusCode = http.StatusNotFound
	case errors.As(err, &crossErr):
		statusCode = http.StatusConflict
	case errors.As(err, &transitionErr):
		statusCode = http.StatusConflict
	case errors.As(err, &timeoutErr):
		statusCode = http.StatusGatewayTimeout
	case errors.As(err, &persistErr):
		statusCode = http.StatusInternalServerError
		message = "internal server error"
	default:
		message = "internal server error"
	}

	WriteErrorMessage(w, statusCode, message, requestID)
}

// WriteErrorMessage writes an error envelope with an explicit status code.
func WriteErrorMessage(w http.ResponseWriter, statusCode int, message, requestID string) {
	WriteJSON(w, statusCode, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}
