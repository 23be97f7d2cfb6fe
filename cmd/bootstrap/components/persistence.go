package components

import (
	"innkeeper/internal/infra/db"
	"innkeeper/internal/infra/imagestore"
	"innkeeper/internal/infra/readstore"
	"innkeeper/internal/infra/uow"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewImageStore,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewImageStore(cfg config.Config, clk clock.Clock) commands.ImageStore {
	return imagestore.NewClient(cfg.ImageStore, clk)
}
