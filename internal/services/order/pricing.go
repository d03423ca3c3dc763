package order

import (
	"quickbite/internal/models"
	"quickbite/internal/money"
)

// PriceOrder turns the requested line items into a validated, priced line
// item set. Unit prices come from the supplied menu rows only; the caller
// never dictates a price. It is purely computational and performs no I/O.
//
// The menu slice is the set of rows resolved for the request's item IDs.
// Items missing from it are unknown; items present but unavailable or
// owned by a different restaurant are rejected with their own error kinds.
func PriceOrder(restaurantID int64, requested []models.OrderItemRequest, menu []models.MenuItem) (money.Cents, []models.OrderItem, error) {
	if len(requested) == 0 {
		return 0, nil, models.ValidationError{Field: "items", Message: "items cannot be empty"}
	}

	byID := make(map[int64]models.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	var total money.Cents
	lineItems := make([]models.OrderItem, 0, len(requested))

	for _, req := range requested {
		if req.Quantity < 1 {
			return 0, nil, models.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
		}

		item, ok := byID[req.MenuItemID]
		if !ok {
			return 0, nil, models.NotFoundError{Entity: "menu item", ID: req.MenuItemID}
		}
		if item.RestaurantID != restaurantID {
			return 0, nil, models.CrossRestaurantError{
				MenuItemID:        item.ID,
				OrderRestaurantID: restaurantID,
				ItemRestaurantID:  item.RestaurantID,
			}
		}
		if !item.IsAvailable {
			return 0, nil, models.NotFoundError{Entity: "menu item", ID: item.ID, Reason: "unavailable"}
		}

		total += item.Price.Mul(req.Quantity)
		lineItems = append(lineItems, models.OrderItem{
			MenuItemID: item.ID,
			Quantity:   req.Quantity,
			UnitPrice:  item.Price,
		})
	}

	return total, lineItems, nil
}
