package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/innkeeper-api/internal/config"
	domainRepo "github.com/sangkips/innkeeper-api/internal/domain/repository"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/handler"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/middleware"
	"github.com/sangkips/innkeeper-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Settings *handler.SettingsHandler
	Room     *handler.RoomHandler
	Booking  *handler.BookingHandler
	Food     *handler.FoodHandler
	Revenue  *handler.RevenueHandler
	Receipt  *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.PropertyRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	admin := middleware.RequireRole(session.RoleAdmin)

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/users", admin, h.Auth.CreateUser)

	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", admin, h.Settings.UpdateSettings)

	rooms := protected.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.POST("", admin, h.Room.Create)
		rooms.GET("/:id", h.Room.Get)
		rooms.PUT("/:id", admin, h.Room.Update)
		rooms.DELETE("/:id", admin, h.Room.Delete)
		rooms.GET("/:id/quote", h.Room.Quote)
	}

	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		bookings.POST("", h.Booking.Create)
		bookings.GET("/number/:booking_no", h.Booking.GetByNumber)
		bookings.GET("/:id", h.Booking.Get)
		bookings.POST("/:id/charges", h.Booking.AddCharge)
		bookings.GET("/:id/settlement", h.Booking.Settlement)
		bookings.POST("/:id/payments",
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Booking.Pay,
		)
		bookings.POST("/:id/cancel", h.Booking.Cancel)
		bookings.POST("/:id/checkout", h.Booking.Checkout)
		bookings.GET("/:id/food-orders", h.Food.ListBookingOrders)
		bookings.GET("/:id/receipt", h.Receipt.GetReceipt)
		bookings.GET("/:id/receipt.xlsx", h.Receipt.ExportReceipt)
		bookings.POST("/:id/receipt/print", h.Receipt.PrintReceipt)
	}

	food := protected.Group("/food-items")
	{
		food.GET("", h.Food.ListItems)
		food.POST("", admin, h.Food.CreateItem)
		food.GET("/:id", h.Food.GetItem)
		food.PUT("/:id", admin, h.Food.UpdateItem)
		food.DELETE("/:id", admin, h.Food.DeleteItem)
	}
	protected.POST("/food-orders", h.Food.CreateOrder)
	protected.GET("/food-orders/:id", h.Food.GetOrder)

	protected.GET("/revenue", h.Revenue.List)
	protected.GET("/revenue/summary", h.Revenue.Summary)

	protected.GET("/printer/status", h.Receipt.PrinterStatus)
}
