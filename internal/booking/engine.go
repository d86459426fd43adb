package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// ticketIDPrefix is kept from the original ticket format; the suffix is a
// UUID rather than a wall-clock timestamp so IDs cannot collide under
// concurrent load.
const ticketIDPrefix = "F1TKT-"

// Engine performs bookings against a store. The INR→USD conversion rate
// is configuration injected at construction, not logic. maxRetries bounds
// how often a transient commit conflict is retried before the booking is
// surfaced as ErrPersistence.
type Engine struct {
	store      store.Store
	rateINRUSD decimal.Decimal
	maxRetries int
}

// NewEngine constructs an Engine. A maxRetries below 1 is treated as 1.
func NewEngine(s store.Store, rateINRUSD decimal.Decimal, maxRetries int) *Engine {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Engine{store: s, rateINRUSD: rateINRUSD, maxRetries: maxRetries}
}

// TotalUSD converts quantity × unit price to the settlement currency,
// rounded to cents.
func (e *Engine) TotalUSD(priceINR decimal.Decimal, quantity int) decimal.Decimal {
	return priceINR.Mul(decimal.NewFromInt(int64(quantity))).Mul(e.rateINRUSD).Round(2)
}

// Book validates and executes a purchase. Preconditions are checked in
// order — quantity, then inventory, then funds — and the first failing
// one wins. On success the wallet debit, sold-count increment and ticket
// append commit as one transaction; on any failure no mutation survives.
func (e *Engine) Book(ctx context.Context, accountID, areaID uint64, quantity int) (model.Ticket, error) {
	if quantity < 1 {
		return model.Ticket{}, ErrInvalidQuantity
	}

	var lastErr error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		ticket, err := e.bookOnce(ctx, accountID, areaID, quantity)
		if err == nil {
			return ticket, nil
		}
		if isBusinessError(err) {
			return model.Ticket{}, err
		}
		lastErr = err
		if !e.store.Retryable(err) {
			break
		}
	}
	return model.Ticket{}, fmt.Errorf("%w: %v", ErrPersistence, lastErr)
}

// bookOnce runs one attempt of the atomic effect. Business errors are
// returned unchanged so Book can surface them without retrying.
func (e *Engine) bookOnce(ctx context.Context, accountID, areaID uint64, quantity int) (model.Ticket, error) {
	var ticket model.Ticket
	err := e.store.InBookingTx(ctx, func(tx store.BookingTx) error {
		area, err := tx.AreaForUpdate(ctx, areaID)
		if err != nil {
			return err
		}
		if left := area.TicketsLeft(); quantity > left {
			return &InventoryError{Left: left}
		}

		acct, err := tx.AccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		total := e.TotalUSD(area.PriceINR, quantity)
		if acct.WalletUSD.LessThan(total) {
			return ErrInsufficientFunds
		}

		if err := tx.DebitWallet(ctx, accountID, total); err != nil {
			return err
		}
		if err := tx.AddSold(ctx, areaID, quantity); err != nil {
			return err
		}
		ticket = model.Ticket{
			ID:        ticketIDPrefix + uuid.NewString(),
			AccountID: accountID,
			AreaID:    area.ID,
			EventName: area.EventName,
			AreaName:  area.Name,
			RaceDate:  area.RaceDate,
			Quantity:  quantity,
			TotalUSD:  total,
			BookedAt:  time.Now().UTC(),
		}
		return tx.InsertTicket(ctx, ticket)
	})
	if err != nil {
		return model.Ticket{}, err
	}
	return ticket, nil
}

// isBusinessError reports whether err is one of the precondition failures
// (or a missing account/area) that must reach the caller as-is instead of
// being retried or wrapped as a persistence failure.
func isBusinessError(err error) bool {
	var inv *InventoryError
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.As(err, &inv)
}
