package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

const areaColumns = `a.id, a.event_id, e.name, e.race_date, a.name, a.price_inr, a.capacity, a.sold`

// Events lists the catalog in seed order.
func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id,name,country,race_date,image_path FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Country, &e.RaceDate, &e.ImagePath); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// AreasByEvent lists an event's seating areas in seed order. It returns
// store.ErrNotFound when the event does not exist.
func (s *Store) AreasByEvent(ctx context.Context, eventID uint64) ([]model.SeatingArea, error) {
	var exists uint64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM events WHERE id=? LIMIT 1", eventID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+areaColumns+`
		 FROM seating_areas a JOIN events e ON e.id = a.event_id
		 WHERE a.event_id = ? ORDER BY a.id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SeatingArea, 0)
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AreaByID fetches a single seating area with its event details.
func (s *Store) AreaByID(ctx context.Context, id uint64) (model.SeatingArea, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+areaColumns+`
		 FROM seating_areas a JOIN events e ON e.id = a.event_id
		 WHERE a.id = ? LIMIT 1`, id)
	a, err := scanArea(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SeatingArea{}, store.ErrNotFound
	}
	return a, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArea(row scanner) (model.SeatingArea, error) {
	var a model.SeatingArea
	err := row.Scan(&a.ID, &a.EventID, &a.EventName, &a.RaceDate, &a.Name, &a.PriceINR, &a.Capacity, &a.Sold)
	return a, err
}
