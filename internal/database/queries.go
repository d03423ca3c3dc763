package database

// Customer queries
const (
	InsertCustomerSQL = `
		INSERT INTO customers (name, email, phone_number, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	GetCustomerSQL = `
		SELECT id, name, email, phone_number, address, created_at
		FROM customers WHERE id = $1`

	CustomerExistsSQL = `
		SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`
)

// Restaurant and menu queries
const (
	InsertRestaurantSQL = `
		INSERT INTO restaurants (name, location)
		VALUES ($1, $2)
		RETURNING id, created_at`

	RestaurantExistsSQL = `
		SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`

	InsertMenuItemSQL = `
		INSERT INTO menu_items (restaurant_id, name, price_cents, is_available)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id`

	ListAvailableMenuSQL = `
		SELECT id, restaurant_id, name, price_cents, is_available
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
		ORDER BY id ASC`

	GetMenuItemsByIDsSQL = `
		SELECT id, restaurant_id, name, price_cents, is_available
		FROM menu_items
		WHERE id = ANY($1)`

	UpdateMenuItemSQL = `
		UPDATE menu_items
		SET price_cents = COALESCE($2, price_cents),
		    is_available = COALESCE($3, is_available)
		WHERE id = $1
		RETURNING id, restaurant_id, name, price_cents, is_available`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (customer_id, restaurant_id, total_price_cents, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	GetOrderSQL = `
		SELECT id, customer_id, restaurant_id, total_price_cents, status, created_at, updated_at
		FROM orders WHERE id = $1`

	GetOrderItemsSQL = `
		SELECT id, order_id, menu_item_id, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`

	ListOrdersByCustomerSQL = `
		SELECT id, customer_id, restaurant_id, total_price_cents, status, created_at, updated_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY id ASC`

	// The status guard makes the update optimistic: a concurrent change to
	// the same order leaves zero rows affected instead of silently losing
	// the earlier write.
	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2`
)

// Reporting queries. Each report is a single aggregate statement so the
// grouping happens in the database, not in process memory.
const (
	RestaurantRevenueSQL = `
		SELECT COALESCE(SUM(total_price_cents), 0)
		FROM orders
		WHERE restaurant_id = $1`

	TopMenuItemsSQL = `
		SELECT menu_item_id, SUM(quantity) AS total_quantity
		FROM order_items
		GROUP BY menu_item_id
		ORDER BY total_quantity DESC, menu_item_id ASC
		LIMIT $1`

	TopCustomersSQL = `
		SELECT customer_id, COUNT(*) AS order_count
		FROM orders
		GROUP BY customer_id
		ORDER BY order_count DESC, customer_id ASC
		LIMIT $1`
)
