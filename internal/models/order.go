package models

import (
	"fmt"
	"time"

	"quickbite/internal/money"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// validNext is the closed transition table. DELIVERED and CANCELLED are
// terminal; CANCELLED is reachable from every non-terminal state.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:        {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:      {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:      {StatusOutForDelivery: true, StatusCancelled: true},
	StatusOutForDelivery: {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// ParseOrderStatus validates a caller-supplied status value against the
// closed enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validNext[status]; !ok {
		return "", ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", s)}
	}
	return status, nil
}

// OrderItem represents a line item within an order. The unit price is a
// snapshot taken when the order was priced; later menu changes do not
// affect it.
type OrderItem struct {
	ID         int64       `json:"id,omitempty" db:"id"`
	OrderID    int64       `json:"order_id,omitempty" db:"order_id"`
	MenuItemID int64       `json:"menu_item_id" db:"menu_item_id"`
	Quantity   int         `json:"quantity" db:"quantity"`
	UnitPrice  money.Cents `json:"unit_price" db:"unit_price_cents"`
}

// Order represents a customer order. TotalPrice is computed once at
// creation and frozen.
type Order struct {
	ID           int64       `json:"id" db:"id"`
	CustomerID   int64       `json:"customer_id" db:"customer_id"`
	RestaurantID int64       `json:"restaurant_id" db:"restaurant_id"`
	TotalPrice   money.Cents `json:"total_price" db:"total_price_cents"`
	Status       OrderStatus `json:"status" db:"status"`
	Items        []OrderItem `json:"order_items"`
	CreatedAt    time.Time   `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty" db:"updated_at"`
}

// OrderItemRequest is a requested (menu item, quantity) pair. No price:
// unit prices are always resolved server-side.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// MaxItemQuantity bounds a single line item. It keeps totals well inside
// int64 even at the largest accepted unit price.
const MaxItemQuantity = 1000

// CreateOrderRequest represents the request to place an order
type CreateOrderRequest struct {
	CustomerID   int64              `json:"customer_id"`
	RestaurantID int64              `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

// Validate checks the structural constraints of an order request.
func (req *CreateOrderRequest) Validate() error {
	if req.CustomerID <= 0 {
		return ValidationError{Field: "customer_id", Message: "customer_id is required"}
	}
	if req.RestaurantID <= 0 {
		return ValidationError{Field: "restaurant_id", Message: "restaurant_id is required"}
	}
	if len(req.Items) == 0 {
		return ValidationError{Field: "items", Message: "items cannot be empty"}
	}
	if len(req.Items) > 50 {
		return ValidationError{Field: "items", Message: "a maximum of 50 items is allowed"}
	}
	for i, item := range req.Items {
		if item.MenuItemID <= 0 {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].menu_item_id", i),
				Message: "menu_item_id is required",
			}
		}
		if item.Quantity < 1 {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			}
		}
		if item.Quantity > MaxItemQuantity {
			return ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: fmt.Sprintf("quantity must be at most %d", MaxItemQuantity),
			}
		}
	}
	return nil
}

// UpdateOrderStatusRequest represents the request to change an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
