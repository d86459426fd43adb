package repository

import (
	"context"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
)

// TicketsByAccount returns an account's tickets in booking order. Tickets
// are append-only, so booked_at with id as a tiebreaker gives a stable
// ordering.
func (s *Store) TicketsByAccount(ctx context.Context, accountID uint64) ([]model.Ticket, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, area_id, event_name, area_name, race_date, quantity, total_usd, booked_at
		 FROM tickets WHERE account_id = ? ORDER BY booked_at, id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.AccountID, &t.AreaID, &t.EventName, &t.AreaName,
			&t.RaceDate, &t.Quantity, &t.TotalUSD, &t.BookedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
