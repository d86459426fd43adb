// Package booking implements the booking engine: the operation that
// validates availability and funds, reserves inventory and records a sale
// as a single atomic unit.
package booking

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is returned when the requested ticket count is not
// at least 1. Handlers should translate this into HTTP 400.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// ErrInsufficientFunds is returned when the wallet balance does not cover
// the total price. Handlers should translate this into HTTP 402.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// ErrPersistence is returned when the atomic effect could not be
// committed after the bounded retry budget. No partial mutation survives;
// the caller may retry the whole operation.
var ErrPersistence = errors.New("booking could not be committed")

// InventoryError is returned when the requested quantity exceeds the
// tickets left in the seating area. Left carries the actual remaining
// count so the caller can show an actionable message.
type InventoryError struct {
	Left int
}

func (e *InventoryError) Error() string {
	if e.Left <= 0 {
		return "seating area is sold out"
	}
	return fmt.Sprintf("only %d tickets left", e.Left)
}
