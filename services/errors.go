package services

import (
	"errors"
	"fmt"
)

// Domain error kinds. All are recoverable by the caller; any of them
// raised inside a placement transaction rolls the whole unit of work
// back.
var (
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrMenuItemUnavailable     = errors.New("menu item is not available")
	ErrNoInventoryRecord       = errors.New("no inventory record found")
	ErrTableUnavailable        = errors.New("table is not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyOrder              = errors.New("at least one item is required")
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
)

// InsufficientStockError carries the remaining stock count so the
// caller can correct the request.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s. Available: %d", e.ItemName, e.Available)
}
