package models

import (
	"fmt"
	"time"

	"quickbite/internal/money"
)

// OrderCreatedMessage announces a newly placed order.
type OrderCreatedMessage struct {
	OrderID      int64       `json:"order_id"`
	CustomerID   int64       `json:"customer_id"`
	RestaurantID int64       `json:"restaurant_id"`
	TotalPrice   money.Cents `json:"total_price"`
	ItemCount    int         `json:"item_count"`
	Timestamp    time.Time   `json:"timestamp"`
}

// StatusUpdateMessage announces an order status change.
type StatusUpdateMessage struct {
	OrderID   int64     `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCreatedMessage builds the event for a freshly persisted order.
func NewOrderCreatedMessage(order *Order) *OrderCreatedMessage {
	return &OrderCreatedMessage{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		TotalPrice:   order.TotalPrice,
		ItemCount:    len(order.Items),
		Timestamp:    time.Now().UTC(),
	}
}

// NewStatusUpdateMessage builds the event for an order status change.
func NewStatusUpdateMessage(orderID int64, oldStatus, newStatus OrderStatus) *StatusUpdateMessage {
	return &StatusUpdateMessage{
		OrderID:   orderID,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		Timestamp: time.Now().UTC(),
	}
}

// OrderCreatedRoutingKey is the topic routing key for new-order events.
const OrderCreatedRoutingKey = "order.created"

// StatusRoutingKey generates the topic routing key for a status change.
func StatusRoutingKey(newStatus OrderStatus) string {
	return fmt.Sprintf("order.status.%s", newStatus)
}
