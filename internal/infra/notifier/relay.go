package notifier

import (
	"context"
	"log/slog"
	"time"

	"innkeeper/internal/infra/repository"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const relayBatchSize = 50

// OutboxRelay drains committed occupancy events to the broker. The
// state change and the event append share one transaction, so delivery
// here is at-least-once and never invents an event that did not commit.
type OutboxRelay struct {
	pool      *pgxpool.Pool
	publisher Publisher
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger

	done chan struct{}
}

func NewOutboxRelay(pool *pgxpool.Pool, publisher Publisher, clk clock.Clock, cfg config.AMQPConfig, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		pool:      pool,
		publisher: publisher,
		clock:     clk,
		interval:  cfg.RelayInterval,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start runs the relay loop until ctx is cancelled or Stop is called.
func (r *OutboxRelay) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.done:
				return
			case <-ticker.C:
				if err := r.drainOnce(ctx); err != nil {
					r.logger.Warn("outbox relay pass failed", "error", err.Error())
				}
			}
		}
	}()
}

func (r *OutboxRelay) Stop() {
	close(r.done)
}

// drainOnce claims one batch under row locks, publishes each event, and
// records the outcome before committing. A failed publish reschedules
// the event; it never blocks the rest of the batch.
func (r *OutboxRelay) drainOnce(ctx context.Context) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outbox := repository.NewOutboxRepository(tx)
	now := r.clock.Now()

	events, err := outbox.ClaimPending(ctx, now, relayBatchSize)
	if err != nil {
		return err
	}

	for _, ev := range events {
		if pubErr := r.publisher.Publish(ctx, ev.Topic, ev.Payload); pubErr != nil {
			r.logger.Warn("occupancy event publish failed",
				"event_id", ev.ID.String(),
				"topic", ev.Topic,
				"error", pubErr.Error())
			if err := outbox.MarkFailed(ctx, ev.ID, pubErr.Error(), now); err != nil {
				return err
			}
			continue
		}
		if err := outbox.MarkSent(ctx, ev.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
