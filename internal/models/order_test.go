package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/money"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseOrderStatus("FROZEN")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "confirmed to preparing", from: StatusConfirmed, to: StatusPreparing, want: true},
		{name: "preparing to out for delivery", from: StatusPreparing, to: StatusOutForDelivery, want: true},
		{name: "out for delivery to delivered", from: StatusOutForDelivery, to: StatusDelivered, want: true},
		{name: "pending skips to preparing", from: StatusPending, to: StatusPreparing, want: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "pending can cancel", from: StatusPending, to: StatusCancelled, want: true},
		{name: "out for delivery can cancel", from: StatusOutForDelivery, to: StatusCancelled, want: true},
		{name: "no backwards moves", from: StatusPreparing, to: StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	valid := CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 2,
		Items:        []OrderItemRequest{{MenuItemID: 3, Quantity: 1}},
	}
	assert.NoError(t, valid.Validate())

	empty := valid
	empty.Items = nil
	assert.Error(t, empty.Validate())

	zeroQty := valid
	zeroQty.Items = []OrderItemRequest{{MenuItemID: 3, Quantity: 0}}
	assert.Error(t, zeroQty.Validate())

	atCap := valid
	atCap.Items = []OrderItemRequest{{MenuItemID: 3, Quantity: MaxItemQuantity}}
	assert.NoError(t, atCap.Validate())

	overCap := valid
	overCap.Items = []OrderItemRequest{{MenuItemID: 3, Quantity: MaxItemQuantity + 1}}
	assert.Error(t, overCap.Validate(), "an oversized quantity is a client error, not a storage error")

	noCustomer := valid
	noCustomer.CustomerID = 0
	assert.Error(t, noCustomer.Validate())
}

func TestCreateCustomerRequestValidate(t *testing.T) {
	valid := CreateCustomerRequest{Name: "Ada", Email: "ada@example.com"}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())
}

func TestUpdateMenuItemRequestValidate(t *testing.T) {
	var req UpdateMenuItemRequest
	assert.Error(t, req.Validate(), "empty update must be rejected")

	avail := true
	req.IsAvailable = &avail
	assert.NoError(t, req.Validate())

	negative := money.Cents(-1)
	req.Price = &negative
	assert.Error(t, req.Validate())
}
