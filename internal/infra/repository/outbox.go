package repository

import (
	"context"
	"time"

	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Outbox event statuses. Events are appended in the same transaction as
// the occupancy change and drained by the relay after commit.
const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
	outboxStatusFailed  = "failed"
)

const outboxMaxAttempts = 5

type OutboxEvent struct {
	ID      uuid.UUID
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Append(ctx context.Context, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO outbox_events (id, topic, payload, status, run_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(uuid.New()),
		topic,
		payload,
		outboxStatusPending,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return wrapWriteErr("failed to append outbox event", err)
	}
	return nil
}

// ClaimPending locks up to limit due events for one relay pass. SKIP
// LOCKED keeps concurrent relays from publishing the same event twice.
func (r *OutboxRepository) ClaimPending(ctx context.Context, now time.Time, limit int) ([]OutboxEvent, error) {
	const query = `
		SELECT id, topic, payload, run_at
		FROM outbox_events
		WHERE status = $1 AND run_at <= $2
		ORDER BY run_at
		LIMIT $3
		FOR UPDATE SKIP LOCKED`

	rows, err := r.db.Query(ctx, query, outboxStatusPending, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, wrapWriteErr("failed to claim outbox events", err)
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var (
			id    pgtype.UUID
			ev    OutboxEvent
			runAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &ev.Topic, &ev.Payload, &runAt); err != nil {
			return nil, wrapWriteErr("failed to scan outbox event", err)
		}
		ev.ID = uuid.UUID(id.Bytes)
		ev.RunAt = runAt.Time
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapWriteErr("failed to iterate outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE outbox_events
		SET status = $2, updated_at = now()
		WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), outboxStatusSent); err != nil {
		return wrapWriteErr("failed to mark outbox event sent", err)
	}
	return nil
}

// MarkFailed records a publish failure and reschedules with a linear
// backoff; after outboxMaxAttempts the event is parked as failed.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause string, now time.Time) error {
	const query = `
		UPDATE outbox_events
		SET attempts = attempts + 1,
			last_error = $2,
			status = CASE WHEN attempts + 1 >= $3 THEN $4 ELSE $5 END,
			run_at = $6,
			updated_at = now()
		WHERE id = $1`

	retryAt := now.Add(30 * time.Second)
	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(id),
		cause,
		outboxMaxAttempts,
		outboxStatusFailed,
		outboxStatusPending,
		pgconv.TimeToPgtype(retryAt),
	)
	if err != nil {
		return wrapWriteErr("failed to mark outbox event failed", err)
	}
	return nil
}
