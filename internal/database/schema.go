package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/iliyamo/f1-ticket-booking/internal/catalog"
)

// schema holds the idempotent DDL for the four relations: accounts keyed
// by email, the event catalog, seating areas keyed by (event, name), and
// the append-only ticket ledger plus refresh tokens for sessions.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		wallet_usd    DECIMAL(14,2) NOT NULL,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_accounts_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		country    VARCHAR(128) NOT NULL,
		race_date  VARCHAR(64)  NOT NULL,
		image_path VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_events_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS seating_areas (
		id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		event_id  BIGINT UNSIGNED NOT NULL,
		name      VARCHAR(255) NOT NULL,
		price_inr DECIMAL(12,2) NOT NULL,
		capacity  INT NOT NULL,
		sold      INT NOT NULL DEFAULT 0,
		UNIQUE KEY uq_areas_event_name (event_id, name),
		CONSTRAINT fk_areas_event FOREIGN KEY (event_id) REFERENCES events (id)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id         VARCHAR(64) NOT NULL PRIMARY KEY,
		account_id BIGINT UNSIGNED NOT NULL,
		area_id    BIGINT UNSIGNED NOT NULL,
		event_name VARCHAR(255) NOT NULL,
		area_name  VARCHAR(255) NOT NULL,
		race_date  VARCHAR(64)  NOT NULL,
		quantity   INT NOT NULL,
		total_usd  DECIMAL(14,2) NOT NULL,
		booked_at  DATETIME(6) NOT NULL,
		KEY ix_tickets_account (account_id, booked_at),
		CONSTRAINT fk_tickets_account FOREIGN KEY (account_id) REFERENCES accounts (id),
		CONSTRAINT fk_tickets_area FOREIGN KEY (area_id) REFERENCES seating_areas (id)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		account_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_tokens_hash (token_hash),
		KEY ix_tokens_account (account_id)
	)`,
}

// EnsureSchema creates the tables if missing and seeds the catalog on an
// empty database. Seeding runs in one transaction so a crashed start
// never leaves a half-populated catalog.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM seating_areas").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("database empty, seeding catalog")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, ev := range catalog.Events() {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO events (name, country, race_date, image_path) VALUES (?,?,?,?)",
			ev.Name, ev.Country, ev.RaceDate, ev.ImagePath)
		if err != nil {
			return err
		}
		eventID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, a := range ev.Areas {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO seating_areas (event_id, name, price_inr, capacity, sold) VALUES (?,?,?,?,0)",
				eventID, a.Name, a.PriceINR, a.Capacity); err != nil {
				return err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
