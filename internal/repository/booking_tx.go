package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// bookingTx implements store.BookingTx over a single *sql.Tx. The
// FOR UPDATE reads take row locks so concurrent bookings against the same
// seating area serialize on the database.
type bookingTx struct {
	tx *sql.Tx
}

// errGuardedUpdate is returned when a guarded UPDATE affects zero rows.
// With the FOR UPDATE locks in place this indicates state changed outside
// the transaction's view; the engine reports it as a persistence failure.
var errGuardedUpdate = errors.New("guarded update affected no rows")

func (b *bookingTx) AreaForUpdate(ctx context.Context, areaID uint64) (model.SeatingArea, error) {
	row := b.tx.QueryRowContext(ctx,
		`SELECT `+areaColumns+`
		 FROM seating_areas a JOIN events e ON e.id = a.event_id
		 WHERE a.id = ? FOR UPDATE`, areaID)
	a, err := scanArea(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SeatingArea{}, store.ErrNotFound
	}
	return a, err
}

func (b *bookingTx) AccountForUpdate(ctx context.Context, accountID uint64) (model.Account, error) {
	var a model.Account
	err := b.tx.QueryRowContext(ctx,
		`SELECT id,name,email,password_hash,wallet_usd,created_at,updated_at
		 FROM accounts WHERE id=? FOR UPDATE`, accountID).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.WalletUSD, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, store.ErrNotFound
	}
	return a, err
}

func (b *bookingTx) DebitWallet(ctx context.Context, accountID uint64, amountUSD decimal.Decimal) error {
	// The wallet_usd >= amount guard backs up the engine's funds check;
	// zero affected rows here means the balance moved under us.
	res, err := b.tx.ExecContext(ctx,
		"UPDATE accounts SET wallet_usd = wallet_usd - ? WHERE id = ? AND wallet_usd >= ?",
		amountUSD, accountID, amountUSD)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errGuardedUpdate
	}
	return nil
}

func (b *bookingTx) AddSold(ctx context.Context, areaID uint64, quantity int) error {
	// sold + quantity <= capacity backs up the engine's inventory check.
	res, err := b.tx.ExecContext(ctx,
		"UPDATE seating_areas SET sold = sold + ? WHERE id = ? AND sold + ? <= capacity",
		quantity, areaID, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errGuardedUpdate
	}
	return nil
}

func (b *bookingTx) InsertTicket(ctx context.Context, t model.Ticket) error {
	_, err := b.tx.ExecContext(ctx,
		`INSERT INTO tickets (id, account_id, area_id, event_name, area_name, race_date, quantity, total_usd, booked_at)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		t.ID, t.AccountID, t.AreaID, t.EventName, t.AreaName, t.RaceDate, t.Quantity, t.TotalUSD, t.BookedAt)
	return err
}
