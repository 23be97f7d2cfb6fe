package bootstrap

import (
	"context"
	"log/slog"

	"innkeeper/internal/infra/notifier"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewOutboxRelay,
	),
	fx.Invoke(StartRelay),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (notifier.Publisher, error) {
	pub, err := notifier.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}

func NewOutboxRelay(pool *pgxpool.Pool, pub notifier.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *notifier.OutboxRelay {
	return notifier.NewOutboxRelay(pool, pub, clk, cfg.AMQP, logger)
}

func StartRelay(lc fx.Lifecycle, relay *notifier.OutboxRelay) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			relay.Stop()
			return nil
		},
	})
}
