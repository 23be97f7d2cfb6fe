package components

import (
	"innkeeper/internal/handler"
	"innkeeper/internal/handler/api"
	"innkeeper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewStayHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	room *api.RoomHandler,
	stay *api.StayHandler,
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	discount *api.DiscountHandler,
) handler.Handlers {
	return handler.Handlers{
		Room:         room,
		Stay:         stay,
		Reservation:  reservation,
		Availability: availability,
		Discount:     discount,
	}
}
