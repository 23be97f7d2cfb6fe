package components

import (
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewStayCommands,
		commands.NewReservationCommands,
		commands.NewDiscountCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewDiscountQueries,
	),
)
