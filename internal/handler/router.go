package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/handler/api"
	"innkeeper/internal/handler/middleware"
	"innkeeper/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Room         *api.RoomHandler
	Stay         *api.StayHandler
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Discount     *api.DiscountHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom},
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom},
				{Method: http.MethodPost, Path: "/:id/maintenance", Handler: h.Room.SetMaintenance},
				{Method: http.MethodDelete, Path: "/:id/maintenance", Handler: h.Room.ClearMaintenance},
				{Method: http.MethodGet, Path: "/:id/timeline", Handler: h.Availability.RoomTimeline},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.FindAvailable},
			})
		}

		stays := apiGroup.Group("/stays")
		stays.Use(authMiddleware.RequireAuth())
		{
			addRoutes(stays, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Stay.CheckIn},
				{Method: http.MethodGet, Path: "", Handler: h.Stay.ListStays},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Stay.GetStay},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Stay.CheckOut},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Stay.DeleteStay},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Reserve},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "/:id/checkin", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		discounts := apiGroup.Group("/discounts")
		discounts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(discounts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Discount.CreateDiscount},
				{Method: http.MethodGet, Path: "", Handler: h.Discount.ListDiscounts},
				{Method: http.MethodGet, Path: "/current", Handler: h.Discount.CurrentDiscount},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Discount.DeleteDiscount},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
