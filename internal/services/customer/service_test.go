package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/logger"
	"quickbite/internal/models"
)

type fakeRepo struct {
	customers map[int64]*models.Customer
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{customers: map[int64]*models.Customer{}, nextID: 1}
}

func (r *fakeRepo) Insert(_ context.Context, customer *models.Customer) error {
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, models.NotFoundError{Entity: "customer", ID: id}
	}
	return customer, nil
}

func TestCreateCustomer(t *testing.T) {
	svc := NewService(newFakeRepo(), logger.New("customer-test"))

	created, err := svc.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:        "Dana Wu",
		Email:       "dana@example.com",
		PhoneNumber: "+15550100",
		Address:     "4 Elm St",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetCustomer(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", got.Email)
}

func TestCreateCustomer_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), logger.New("customer-test"))

	tests := []struct {
		name      string
		req       models.CreateCustomerRequest
		wantField string
	}{
		{
			name:      "missing name",
			req:       models.CreateCustomerRequest{Email: "a@b.com"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       models.CreateCustomerRequest{Name: "Dana Wu"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			req:       models.CreateCustomerRequest{Name: "Dana Wu", Email: "not-an-email"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomer(context.Background(), &tt.req)
			var valErr models.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), logger.New("customer-test"))

	_, err := svc.GetCustomer(context.Background(), 404)
	assert.Equal(t, models.NotFoundError{Entity: "customer", ID: 404}, err)
}
