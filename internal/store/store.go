// Package store defines the storage contract shared by the durable MySQL
// backend and the in-memory backend. The original application shipped in
// two variants — one persisting inventory to disk and one resetting it on
// every run — so both backends implement this single interface and the
// booking engine, handlers and tests stay backend-agnostic.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
)

// ErrEmailExists is returned when registering an email that is already
// taken (case-insensitive). Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a referenced account, event, seating area
// or token does not exist. Handlers translate this into HTTP 404 (or 401
// for credentials and tokens).
var ErrNotFound = errors.New("not found")

// AccountStore persists accounts. Emails are normalized to lower case by
// implementations; wallet balances are mutated only through BookingTx.
type AccountStore interface {
	CreateAccount(ctx context.Context, name, email, passwordHash string, openingUSD decimal.Decimal) (model.Account, error)
	AccountByEmail(ctx context.Context, email string) (model.Account, error)
	AccountByID(ctx context.Context, id uint64) (model.Account, error)
}

// Catalog reads the fixed event and seating-area reference data. Both
// listings return rows in seed order.
type Catalog interface {
	Events(ctx context.Context) ([]model.Event, error)
	AreasByEvent(ctx context.Context, eventID uint64) ([]model.SeatingArea, error)
	AreaByID(ctx context.Context, id uint64) (model.SeatingArea, error)
}

// TicketLedger reads issued tickets. Appending happens only inside a
// booking transaction via BookingTx.InsertTicket.
type TicketLedger interface {
	TicketsByAccount(ctx context.Context, accountID uint64) ([]model.Ticket, error)
}

// TokenStore persists refresh-token hashes for session management.
type TokenStore interface {
	StoreRefresh(ctx context.Context, accountID uint64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForAccount(ctx context.Context, accountID uint64) error
}

// BookingTx is the mutation scope handed to the booking engine inside
// InBookingTx. The *ForUpdate reads lock their rows for the duration of
// the transaction so that two concurrent bookings against the same area
// serialize instead of overselling.
type BookingTx interface {
	AreaForUpdate(ctx context.Context, areaID uint64) (model.SeatingArea, error)
	AccountForUpdate(ctx context.Context, accountID uint64) (model.Account, error)
	DebitWallet(ctx context.Context, accountID uint64, amountUSD decimal.Decimal) error
	AddSold(ctx context.Context, areaID uint64, quantity int) error
	InsertTicket(ctx context.Context, t model.Ticket) error
}

// Store is the full storage contract. InBookingTx runs fn inside a
// transaction: if fn returns an error every mutation is rolled back and
// the error is returned unchanged; otherwise the transaction commits.
// Retryable reports whether an error from InBookingTx is a transient
// commit conflict (e.g. a deadlock) worth retrying.
type Store interface {
	AccountStore
	Catalog
	TicketLedger
	TokenStore

	InBookingTx(ctx context.Context, fn func(tx BookingTx) error) error
	Retryable(err error) bool
}
