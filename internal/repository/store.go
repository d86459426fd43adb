// Package repository is the durable MySQL backend of the store contract.
// It keeps to plain database/sql: parameterized queries, context on every
// call, and explicit transactions for the booking effect.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// Store implements store.Store on top of a MySQL database.
type Store struct {
	db *sql.DB
}

// New returns a Store bound to the given database.
func New(db *sql.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for schema initialization.
func (s *Store) DB() *sql.DB { return s.db }

// InBookingTx runs fn inside a single transaction. Any error from fn
// rolls the transaction back and is returned unchanged; commit errors are
// returned as-is so the engine can classify them.
func (s *Store) InBookingTx(ctx context.Context, fn func(tx store.BookingTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&bookingTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Retryable reports whether err is a MySQL deadlock (1213) or lock wait
// timeout (1205), the transient conflicts worth one more attempt.
func (s *Store) Retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1213") || strings.Contains(msg, "1205")
}

// isDuplicateKey matches MySQL error 1062 (duplicate entry).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
