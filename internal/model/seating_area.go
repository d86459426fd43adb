package model

import "github.com/shopspring/decimal"

// SeatingArea is a priced, capacity-limited inventory pool belonging to
// exactly one event. The (event, name) pair is unique and forms the
// addressable identity of an area. Sold is mutated only by the booking
// engine inside its transaction.
//
// Fields:
//  ID       – primary key identifier.
//  EventID  – owning event.
//  EventName – denormalized event name, carried onto tickets.
//  Name     – area name, unique within the event.
//  PriceINR – unit price in the reference currency (INR).
//  Capacity – total number of seats.
//  Sold     – number of seats sold so far; never exceeds Capacity.
type SeatingArea struct {
	ID        uint64          // seating_areas.id
	EventID   uint64          // seating_areas.event_id
	EventName string          // joined from events.name
	RaceDate  string          // joined from events.race_date
	Name      string          // seating_areas.name
	PriceINR  decimal.Decimal // seating_areas.price_inr
	Capacity  int             // seating_areas.capacity
	Sold      int             // seating_areas.sold
}

// TicketsLeft returns the remaining unsold seats.
func (a SeatingArea) TicketsLeft() int { return a.Capacity - a.Sold }

// SoldOut reports whether no seats remain.
func (a SeatingArea) SoldOut() bool { return a.TicketsLeft() <= 0 }
