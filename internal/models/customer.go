package models

import (
	"regexp"
	"time"
)

// Customer represents a registered customer
type Customer struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"created_at,omitempty" db:"created_at"`
}

// CreateCustomerRequest represents the request to register a customer
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the structural constraints of a customer registration.
func (req *CreateCustomerRequest) Validate() error {
	if req.Name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(req.Name) > 100 {
		return ValidationError{Field: "name", Message: "name must be less than 100 characters"}
	}
	if req.Email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(req.Email) {
		return ValidationError{Field: "email", Message: "email is not well-formed"}
	}
	return nil
}
