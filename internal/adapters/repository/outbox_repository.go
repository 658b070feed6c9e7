package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type OutboxSQLRepository struct {
	db *sql.DB
}

var _ ports.OutboxRepository = (*OutboxSQLRepository)(nil)

func NewOutboxSQLRepository(db *sql.DB) *OutboxSQLRepository {
	return &OutboxSQLRepository{db: db}
}

// Enqueue inserts the events and notifies the relay about each one in the
// same transaction, so a reminder is either durably queued and announced or
// not queued at all.
func (r *OutboxSQLRepository) Enqueue(ctx context.Context, eventType string, payloads [][]byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, payload := range payloads {
		id := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO outbox_events (id, event_type, payload, created_at)
             VALUES ($1, $2, $3, NOW())`,
			id, eventType, payload); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"SELECT pg_notify('outbox_channel', $1)", id); err != nil {
			return err
		}
	}

	return tx.Commit()
}
