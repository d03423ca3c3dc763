package order

import (
	"context"

	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Repository is the persistence surface the order service needs.
type Repository interface {
	CustomerExists(ctx context.Context, id int64) (bool, error)
	RestaurantExists(ctx context.Context, id int64) (bool, error)
	MenuItemsByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error)
	InsertOrderWithItems(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to models.OrderStatus) error
}

// Publisher emits order lifecycle events.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, msg interface{}, routingKey string) error
	PublishNotification(ctx context.Context, msg interface{}) error
}

// Service orchestrates order creation and status transitions
type Service struct {
	repo      Repository
	publisher Publisher
	logger    *logger.Logger
}

// NewService creates a new order service
func NewService(repo Repository, publisher Publisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// CreateOrder validates, prices and persists an order together with its
// line items as one transaction. A failure at any step leaves no order
// and no line items behind.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFoundError{Entity: "customer", ID: req.CustomerID}
	}

	exists, err = s.repo.RestaurantExists(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFoundError{Entity: "restaurant", ID: req.RestaurantID}
	}

	menu, err := s.repo.MenuItemsByIDs(ctx, menuItemIDs(req.Items))
	if err != nil {
		return nil, err
	}

	total, lineItems, err := PriceOrder(req.RestaurantID, req.Items, menu)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		TotalPrice:   total,
		Status:       models.StatusPending,
		Items:        lineItems,
	}

	if err := s.repo.InsertOrderWithItems(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order_created", "Order created", "", map[string]interface{}{
		"order_id":    order.ID,
		"total_price": order.TotalPrice.String(),
		"item_count":  len(order.Items),
	})

	// The order already stands; a publish failure is logged, not bubbled.
	if s.publisher != nil {
		msg := models.NewOrderCreatedMessage(order)
		if err := s.publisher.PublishOrderEvent(ctx, msg, models.OrderCreatedRoutingKey); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish order.created", "", err, map[string]interface{}{
				"order_id": order.ID,
			})
		}
	}

	return order, nil
}

// GetOrder returns an order with its line items eagerly included.
func (s *Service) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// ListOrdersForCustomer returns the customer's orders in creation order.
func (s *Service) ListOrdersForCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// UpdateStatus moves an order through the lifecycle state machine. The
// repository applies a current-status guard, so a concurrent transition
// surfaces as InvalidTransitionError instead of a lost update.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, newStatusRaw string) (*models.Order, error) {
	newStatus, err := models.ParseOrderStatus(newStatusRaw)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if !models.CanTransition(oldStatus, newStatus) {
		return nil, models.InvalidTransitionError{From: oldStatus, To: newStatus}
	}

	if err := s.repo.UpdateStatus(ctx, orderID, oldStatus, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	s.logger.Info("status_updated", "Order status updated", "", map[string]interface{}{
		"order_id":   orderID,
		"old_status": string(oldStatus),
		"new_status": string(newStatus),
	})

	if s.publisher != nil {
		msg := models.NewStatusUpdateMessage(orderID, oldStatus, newStatus)
		if err := s.publisher.PublishOrderEvent(ctx, msg, models.StatusRoutingKey(newStatus)); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish status event", "", err, map[string]interface{}{
				"order_id": orderID,
			})
		}
		if err := s.publisher.PublishNotification(ctx, msg); err != nil {
			s.logger.Error("event_publish_failed", "Failed to publish notification", "", err, map[string]interface{}{
				"order_id": orderID,
			})
		}
	}

	return order, nil
}

func menuItemIDs(items []models.OrderItemRequest) []int64 {
	seen := make(map[int64]bool, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			ids = append(ids, item.MenuItemID)
		}
	}
	return ids
}
