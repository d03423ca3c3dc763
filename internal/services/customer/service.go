package customer

import (
	"context"

	"quickbite/internal/logger"
	"quickbite/internal/models"
)

// Repository is the persistence surface the customer service needs.
type Repository interface {
	Insert(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id int64) (*models.Customer, error)
}

// Service provides customer registration and lookup
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new customer service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// CreateCustomer registers a new customer.
func (s *Service) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}

	if err := s.repo.Insert(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer_created", "Customer registered", "", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return customer, nil
}

// GetCustomer returns a customer by ID.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.Get(ctx, id)
}
