package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is an immutable record of a completed purchase. Tickets are
// created exactly once by the booking engine and are never amended or
// cancelled. Event name, area name and race date are denormalized onto
// the ticket so listings need no catalog join.
type Ticket struct {
	ID        string          // tickets.id (e.g. "F1TKT-<uuid>")
	AccountID uint64          // tickets.account_id
	AreaID    uint64          // tickets.area_id
	EventName string          // tickets.event_name
	AreaName  string          // tickets.area_name
	RaceDate  string          // tickets.race_date
	Quantity  int             // tickets.quantity (>= 1)
	TotalUSD  decimal.Decimal // tickets.total_usd, price paid after conversion
	BookedAt  time.Time       // tickets.booked_at
}
