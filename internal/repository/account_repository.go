package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/f1-ticket-booking/internal/model"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

// CreateAccount inserts a new account with the opening wallet balance and
// returns the stored row. Emails are normalized to lower case so the
// uniqueness check is case-insensitive.
func (s *Store) CreateAccount(ctx context.Context, name, email, passwordHash string, openingUSD decimal.Decimal) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (name, email, password_hash, wallet_usd) VALUES (?,?,?,?)",
		name, email, passwordHash, openingUSD)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Account{}, store.ErrEmailExists
		}
		return model.Account{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Account{}, err
	}
	return s.AccountByID(ctx, uint64(id))
}

// AccountByEmail fetches an account by normalized email.
func (s *Store) AccountByEmail(ctx context.Context, email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.scanAccount(s.db.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,wallet_usd,created_at,updated_at FROM accounts WHERE email=? LIMIT 1",
		email))
}

// AccountByID fetches an account by id.
func (s *Store) AccountByID(ctx context.Context, id uint64) (model.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,wallet_usd,created_at,updated_at FROM accounts WHERE id=? LIMIT 1",
		id))
}

func (s *Store) scanAccount(row *sql.Row) (model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.WalletUSD, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, store.ErrNotFound
	}
	return a, err
}
