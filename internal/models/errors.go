package models

import "fmt"

// ValidationError reports malformed or out-of-range input. It is never
// worth retrying.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a referenced entity that does not exist, or a menu
// item that is not currently orderable.
type NotFoundError struct {
	Entity string
	ID     int64
	Reason string
}

func (e NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %d %s", e.Entity, e.ID, e.Reason)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// CrossRestaurantError reports a menu item that belongs to a different
// restaurant than the one the order was placed against.
type CrossRestaurantError struct {
	MenuItemID        int64
	OrderRestaurantID int64
	ItemRestaurantID  int64
}

func (e CrossRestaurantError) Error() string {
	return fmt.Sprintf("menu item %d belongs to restaurant %d, not restaurant %d",
		e.MenuItemID, e.ItemRestaurantID, e.OrderRestaurantID)
}

// InvalidTransitionError reports an order status change that the state
// machine does not allow.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// PersistenceError wraps a storage-level failure. The caller may retry,
// keeping in mind that order creation is not idempotent.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// TimeoutError reports a storage call that exceeded its deadline. Surfaced
// separately from PersistenceError so callers can decide whether to retry.
type TimeoutError struct {
	Op string
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out", e.Op)
}
