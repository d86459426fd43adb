// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
)

// TicketIssuedQueue is the durable queue carrying issued-ticket events.
const TicketIssuedQueue = "ticket.issued"

// TicketIssuedEvent is published after a booking commits. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type TicketIssuedEvent struct {
	TicketID  string `json:"ticket_id"`
	AccountID uint64 `json:"account_id"`
	EventName string `json:"event_name"`
	AreaName  string `json:"area_name"`
	RaceDate  string `json:"race_date"`
	Quantity  int    `json:"quantity"`
	TotalUSD  string `json:"total_usd"`
	IssuedAt  string `json:"issued_at"`
}

// NewTicketIssuedEvent builds the event payload for a committed ticket.
func NewTicketIssuedEvent(t model.Ticket) TicketIssuedEvent {
	return TicketIssuedEvent{
		TicketID:  t.ID,
		AccountID: t.AccountID,
		EventName: t.EventName,
		AreaName:  t.AreaName,
		RaceDate:  t.RaceDate,
		Quantity:  t.Quantity,
		TotalUSD:  t.TotalUSD.StringFixed(2),
		IssuedAt:  t.BookedAt.Format(time.RFC3339),
	}
}
