package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a registered user and their prepaid wallet as stored
// in the `accounts` table. The wallet is held in USD and is only ever
// debited by a successful booking; it must never go negative.
//
// Fields:
//  ID           – primary key identifier of the account.
//  Name         – display name shown by the presentation layer.
//  Email        – unique email address (lower-cased, identity key).
//  PasswordHash – bcrypt hashed password.
//  WalletUSD    – prepaid balance in USD, two decimal places.
//  CreatedAt    – timestamp of registration.
//  UpdatedAt    – timestamp of last update.
type Account struct {
	ID           uint64          // accounts.id
	Name         string          // accounts.name
	Email        string          // accounts.email
	PasswordHash string          // accounts.password_hash
	WalletUSD    decimal.Decimal // accounts.wallet_usd
	CreatedAt    time.Time       // accounts.created_at
	UpdatedAt    time.Time       // accounts.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to an account and carries expiry and revocation
// metadata. The plain token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	AccountID uint64     // refresh_tokens.account_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
