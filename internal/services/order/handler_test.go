package order

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/models"
)

func newTestRouter(repo *fakeRepo) http.Handler {
	log := logger.New("order-handler-test")
	svc := NewService(repo, nil, log)
	router := httpx.NewRouter(log)
	NewHandler(svc, log).Register(router)
	return router
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodPost, "/orders",
		`{"customer_id":1,"restaurant_id":10,"items":[{"menu_item_id":1,"quantity":2},{"menu_item_id":2,"quantity":1}]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PENDING", body["status"])
	assert.Equal(t, 25.50, body["total_price"])
	assert.Len(t, body["order_items"], 2)
}

func TestCreateOrderEndpoint_InvalidJSON(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodPost, "/orders", `{"customer_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderEndpoint_UnknownFieldRejected(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	// Client-supplied prices are not part of the request shape.
	rec := doRequest(t, router, http.MethodPost, "/orders",
		`{"customer_id":1,"restaurant_id":10,"items":[{"menu_item_id":1,"quantity":1,"price":"0.01"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderEndpoint_UnknownCustomer(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodPost, "/orders",
		`{"customer_id":42,"restaurant_id":10,"items":[{"menu_item_id":1,"quantity":1}]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderEndpoint_CrossRestaurantConflict(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodPost, "/orders",
		`{"customer_id":1,"restaurant_id":10,"items":[{"menu_item_id":5,"quantity":1}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodGet, "/orders/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "request_id")
}

func TestGetOrderEndpoint_BadID(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodGet, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[100] = &models.Order{ID: 100, CustomerID: 1, RestaurantID: 10, Status: models.StatusPending}
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodPatch, "/orders/100/status", `{"status":"CONFIRMED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONFIRMED", body["status"])
}

func TestUpdateStatusEndpoint_IllegalTransition(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[100] = &models.Order{ID: 100, Status: models.StatusDelivered}
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodPatch, "/orders/100/status", `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateStatusEndpoint_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[100] = &models.Order{ID: 100, Status: models.StatusPending}
	router := newTestRouter(repo)

	rec := doRequest(t, router, http.MethodPatch, "/orders/100/status", `{"status":"SHIPPED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCustomerOrdersEndpoint_EmptyIsArray(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doRequest(t, router, http.MethodGet, "/customers/1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
