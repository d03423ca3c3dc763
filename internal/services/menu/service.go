package menu

import (
	"context"

	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Repository is the persistence surface the menu service needs.
type Repository interface {
	InsertRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	RestaurantExists(ctx context.Context, id int64) (bool, error)
	InsertMenuItem(ctx context.Context, item *models.MenuItem) error
	ListAvailable(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItem, error)
}

// Service provides restaurant registration and menu management. It is the
// availability gate: only items with is_available set are exposed for
// browsing and ordering.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new menu service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// CreateRestaurant registers a new restaurant.
func (s *Service) CreateRestaurant(ctx context.Context, req *models.CreateRestaurantRequest) (*models.Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.repo.InsertRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}

	s.logger.Info("restaurant_created", "Restaurant registered", "", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return restaurant, nil
}

// AddMenuItem adds an item to a restaurant's menu. New items start
// available.
func (s *Service) AddMenuItem(ctx context.Context, restaurantID int64, req *models.AddMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFoundError{Entity: "restaurant", ID: restaurantID}
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Price:        req.Price,
		IsAvailable:  true,
	}

	if err := s.repo.InsertMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListAvailableMenu returns the restaurant's currently orderable items.
func (s *Service) ListAvailableMenu(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	exists, err := s.repo.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFoundError{Entity: "restaurant", ID: restaurantID}
	}

	return s.repo.ListAvailable(ctx, restaurantID)
}

// UpdateMenuItem applies a partial update to price and/or availability.
// Fields not present in the request are left untouched.
func (s *Service) UpdateMenuItem(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateMenuItem(ctx, id, req)
}
