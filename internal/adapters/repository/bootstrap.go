package repository

import (
	"context"
	"database/sql"
)

// schema is applied at startup; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
        room_id          SERIAL PRIMARY KEY,
        floor_number     INTEGER NOT NULL,
        room_number      TEXT NOT NULL UNIQUE,
        room_type        TEXT NOT NULL,
        capacity         INTEGER NOT NULL,
        current_capacity INTEGER NOT NULL DEFAULT 0,
        is_ac_available  BOOLEAN NOT NULL DEFAULT FALSE,
        price            DOUBLE PRECISION NOT NULL,
        per_day_price    DOUBLE PRECISION NOT NULL DEFAULT 0,
        CONSTRAINT rooms_capacity_check CHECK (current_capacity >= 0 AND current_capacity <= capacity)
    )`,
	`CREATE TABLE IF NOT EXISTS roommates (
        roommate_id        SERIAL PRIMARY KEY,
        unique_id          TEXT NOT NULL,
        username           TEXT NOT NULL UNIQUE,
        password           TEXT NOT NULL,
        email              TEXT NOT NULL UNIQUE,
        gender             TEXT NOT NULL DEFAULT '',
        rent_amount        DOUBLE PRECISION NOT NULL DEFAULT 0,
        rent_status        TEXT NOT NULL DEFAULT 'PAYMENT_PENDING',
        with_food          BOOLEAN NOT NULL DEFAULT TRUE,
        check_in_date      DATE NOT NULL,
        check_out_date     DATE,
        last_modified_date DATE NOT NULL,
        referral_id        TEXT NOT NULL DEFAULT '',
        referral_count     INTEGER NOT NULL DEFAULT 0,
        room_number        TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS referral_details (
        referral_detail_id SERIAL PRIMARY KEY,
        referrer_id        INTEGER NOT NULL REFERENCES roommates(roommate_id) ON DELETE CASCADE,
        username           TEXT NOT NULL,
        referral_date      DATE NOT NULL,
        roommate_unique_id TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS payments (
        payment_id     BIGSERIAL PRIMARY KEY,
        amount         DOUBLE PRECISION NOT NULL,
        payment_status TEXT NOT NULL,
        payment_date   DATE NOT NULL,
        transaction_id TEXT NOT NULL,
        payment_method TEXT NOT NULL DEFAULT '',
        username       TEXT NOT NULL,
        room_number    TEXT NOT NULL DEFAULT '',
        roommate_id    INTEGER REFERENCES roommates(roommate_id) ON DELETE SET NULL
    )`,
	`CREATE TABLE IF NOT EXISTS vacate_requests (
        vacate_request_id SERIAL PRIMARY KEY,
        roommate_id       INTEGER NOT NULL UNIQUE REFERENCES roommates(roommate_id) ON DELETE CASCADE,
        vacate_reason     TEXT NOT NULL,
        check_out_date    DATE NOT NULL,
        is_read           BOOLEAN NOT NULL DEFAULT FALSE,
        created_at        DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS grievances (
        grievance_id      SERIAL PRIMARY KEY,
        roommate_id       INTEGER NOT NULL REFERENCES roommates(roommate_id) ON DELETE CASCADE,
        grievance_content TEXT NOT NULL,
        created_at        DATE NOT NULL,
        is_read           BOOLEAN NOT NULL DEFAULT FALSE
    )`,
	`CREATE TABLE IF NOT EXISTS owners (
        owner_id   SERIAL PRIMARY KEY,
        owner_name TEXT NOT NULL UNIQUE,
        password   TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
        id           TEXT PRIMARY KEY,
        event_type   TEXT NOT NULL,
        payload      JSONB NOT NULL,
        created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        processed_at TIMESTAMPTZ
    )`,
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
