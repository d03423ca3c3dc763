package reporting

import (
	"context"

	"quickbite/internal/logger"
	"quickbite/internal/models"
	"quickbite/internal/money"
)

// Default top-N limits when the caller does not supply one.
const (
	DefaultTopMenuItemsLimit = 1
	DefaultTopCustomersLimit = 5
)

// Repository is the aggregate-query surface the reporting service needs.
// Each method maps to a single aggregate statement in the store; nothing
// is loaded row-by-row and re-aggregated in memory.
type Repository interface {
	SumRevenue(ctx context.Context, restaurantID int64) (money.Cents, error)
	TopMenuItems(ctx context.Context, limit int) ([]models.MenuItemSales, error)
	TopCustomers(ctx context.Context, limit int) ([]models.CustomerOrderCount, error)
}

// Service computes business reports over persisted orders. Read-only:
// no method mutates anything.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new reporting service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// RestaurantRevenue sums totalPrice over all the restaurant's orders,
// cancelled ones included. A restaurant with no orders yields 0.
func (s *Service) RestaurantRevenue(ctx context.Context, restaurantID int64) (money.Cents, error) {
	return s.repo.SumRevenue(ctx, restaurantID)
}

// TopMenuItems returns the best-selling menu items by summed quantity,
// ties broken by menu item ID ascending.
func (s *Service) TopMenuItems(ctx context.Context, limit int) ([]models.MenuItemSales, error) {
	if limit <= 0 {
		limit = DefaultTopMenuItemsLimit
	}
	return s.repo.TopMenuItems(ctx, limit)
}

// TopCustomers returns the customers with the most orders, ties broken by
// customer ID ascending.
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]models.CustomerOrderCount, error) {
	if limit <= 0 {
		limit = DefaultTopCustomersLimit
	}
	return s.repo.TopCustomers(ctx, limit)
}
