package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"quickbite/internal/database"
	"quickbite/internal/models"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new customer repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, customer *models.Customer) error {
	err := r.db.QueryRow(ctx, database.InsertCustomerSQL,
		customer.Name, customer.Email, customer.PhoneNumber, customer.Address).
		Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return database.TranslateError("insert customer", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.QueryRow(ctx, database.GetCustomerSQL, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.Address,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError{Entity: "customer", ID: id}
		}
		return nil, database.TranslateError("get customer", err)
	}
	return &customer, nil
}
