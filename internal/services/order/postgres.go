package order

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

// NewPostgresRepository creates a new order repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CustomerExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, database.CustomerExistsSQL, id).Scan(&exists)
	if err != nil {
		return false, database.TranslateError("check customer", err)
	}
	return exists, nil
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, database.RestaurantExistsSQL, id).Scan(&exists)
	if err != nil {
		return false, database.TranslateError("check restaurant", err)
	}
	return exists, nil
}

func (r *PostgresRepository) MenuItemsByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.GetMenuItemsByIDsSQL, ids)
	if err != nil {
		return nil, database.TranslateError("resolve menu items", err)
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
		return nil, database.TranslateError("resolve menu items", err)
	}
	return items, nil
}

// InsertOrderWithItems persists the order and its line items in a single
// transaction. A failed insert rolls everything back so readers never see
// an order without its items.
func (r *PostgresRepository) InsertOrderWithItems(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return database.TranslateError("begin order transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		order.CustomerID, order.RestaurantID, order.TotalPrice, string(order.Status)).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return database.TranslateError("insert order", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, database.InsertOrderItemSQL,
			item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice).
			Scan(&item.ID)
		if err != nil {
			return database.TranslateError("insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return database.TranslateError("commit order transaction", err)
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.QueryRow(ctx, database.GetOrderSQL, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.RestaurantID,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NotFoundError{Entity: "order", ID: id}
		}
		return nil, database.TranslateError("get order", err)
	}

	items, err := r.orderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, database.ListOrdersByCustomerSQL, customerID)
	if err != nil {
		return nil, database.TranslateError("list orders", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.RestaurantID,
			&order.TotalPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, database.TranslateError("scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError("list orders", err)
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateStatus applies the transition with a current-status guard. Zero
// rows affected means the order changed underneath us (or vanished), so
// the transition no longer holds.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, from, to models.OrderStatus) error {
	tag, err := r.db.Pool.Exec(ctx, database.UpdateOrderStatusSQL, id, string(from), string(to))
	if err != nil {
		return database.TranslateError("update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return models.InvalidTransitionError{From: from, To: to}
	}
	return nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, database.GetOrderItemsSQL, orderID)
	if err != nil {
		return nil, database.TranslateError("list order items", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, database.TranslateError("scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError("list order items", err)
	}
	return items, nil
}
