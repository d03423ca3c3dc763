package menu

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

// NewPostgresRepository creates a new menu repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	err := r.db.QueryRow(ctx, database.InsertRestaurantSQL,
		restaurant.Name, restaurant.Location).
		Scan(&restaurant.ID, &restaurant.CreatedAt)
	if err != nil {
		return database.TranslateError("insert restaurant", err)
	}
	return nil
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, database.RestaurantExistsSQL, id).Scan(&exists)
	if err != nil {
		return false, database.TranslateError("check restaurant", err)
	}
	return exists, nil
}

func (r *PostgresRepository) InsertMenuItem(ctx context.Context, item *models.MenuItem) error {
	err := r.db.QueryRow(ctx, database.InsertMenuItemSQL,
		item.RestaurantID, item.Name, item.Price).
		Scan(&item.ID)
	if err != nil {
		return database.TranslateError("insert menu item", err)
	}
	return nil
}

func (r *PostgresRepository) ListAvailable(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListAvailableMenuSQL, restaurantID)
	if err != nil {
		return nil, database.TranslateError("list menu", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.IsAvailable); err != nil {
			return nil, database.TranslateError("scan menu item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError("list menu", err)
	}
	return items, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.QueryRow(ctx, database.UpdateMenuItemSQL, id, req.Price, req.IsAvailable).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError{Entity: "menu item", ID: id}
		}
		return nil, database.TranslateError("update menu item", err)
	}
	return &item, nil
}
