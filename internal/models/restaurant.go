package models

import (
	"time"

	"quickbite/internal/money"
)

// Restaurant represents a registered restaurant
type Restaurant struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// MenuItem represents an item on a restaurant's menu
type MenuItem struct {
	ID           int64       `json:"id" db:"id"`
	RestaurantID int64       `json:"restaurant_id" db:"restaurant_id"`
	Name         string      `json:"name" db:"name"`
	Price        money.Cents `json:"price" db:"price_cents"`
	IsAvailable  bool        `json:"is_available" db:"is_available"`
}

// CreateRestaurantRequest represents the request to register a restaurant
type CreateRestaurantRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Validate checks the structural constraints of a restaurant registration.
func (req *CreateRestaurantRequest) Validate() error {
	if req.Name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(req.Name) > 100 {
		return ValidationError{Field: "name", Message: "name must be less than 100 characters"}
	}
	return nil
}

// AddMenuItemRequest represents the request to add an item to a menu
type AddMenuItemRequest struct {
	Name  string      `json:"name"`
	Price money.Cents `json:"price"`
}

// Validate checks the structural constraints of a menu submission.
func (req *AddMenuItemRequest) Validate() error {
	if req.Name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(req.Name) > 100 {
		return ValidationError{Field: "name", Message: "name must be less than 100 characters"}
	}
	if req.Price < 0 {
		return ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}

// UpdateMenuItemRequest represents a partial menu item update. Nil fields
// are left unchanged.
type UpdateMenuItemRequest struct {
	Price       *money.Cents `json:"price,omitempty"`
	IsAvailable *bool        `json:"is_available,omitempty"`
}

// Validate checks the structural constraints of a menu item update.
func (req *UpdateMenuItemRequest) Validate() error {
	if req.Price == nil && req.IsAvailable == nil {
		return ValidationError{Field: "body", Message: "at least one of price or is_available is required"}
	}
	if req.Price != nil && *req.Price < 0 {
		return ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}
