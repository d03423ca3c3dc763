package models

// MenuItemSales is one row of the top-selling menu items report.
type MenuItemSales struct {
	MenuItemID    int64 `json:"menu_item_id"`
	TotalQuantity int64 `json:"total_quantity"`
}

// CustomerOrderCount is one row of the top customers report.
type CustomerOrderCount struct {
	CustomerID int64 `json:"customer_id"`
	OrderCount int64 `json:"order_count"`
}
