package reporting

import (
	"context"

	"quickbite/internal/database"
	"quickbite/internal/models"
	"quickbite/internal/money"
)

// PostgresRepository implements Repository with aggregate SQL so the
// grouping and ordering stay in the database as data grows.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new reporting repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SumRevenue(ctx context.Context, restaurantID int64) (money.Cents, error) {
	var total int64
	err := r.db.QueryRow(ctx, database.RestaurantRevenueSQL, restaurantID).Scan(&total)
	if err != nil {
		return 0, database.TranslateError("sum revenue", err)
	}
	return money.Cents(total), nil
}

func (r *PostgresRepository) TopMenuItems(ctx context.Context, limit int) ([]models.MenuItemSales, error) {
	rows, err := r.db.Query(ctx, database.TopMenuItemsSQL, limit)
	if err != nil {
		return nil, database.TranslateError("top menu items", err)
	}
	defer rows.Close()

	var results []models.MenuItemSales
	for rows.Next() {
		var row models.MenuItemSales
		if err := rows.Scan(&row.MenuItemID, &row.TotalQuantity); err != nil {
			return nil, database.TranslateError("scan top menu item", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError("top menu items", err)
	}
	return results, nil
}

func (r *PostgresRepository) TopCustomers(ctx context.Context, limit int) ([]models.CustomerOrderCount, error) {
	rows, err := r.db.Query(ctx, database.TopCustomersSQL, limit)
	if err != nil {
		return nil, database.TranslateError("top customers", err)
	}
	defer rows.Close()

	var results []models.CustomerOrderCount
	for rows.Next() {
		var row models.CustomerOrderCount
		if err := rows.Scan(&row.CustomerID, &row.OrderCount); err != nil {
			return nil, database.TranslateError("scan top customer", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError("top customers", err)
	}
	return results, nil
}
