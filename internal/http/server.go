// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"github.com/gin-gonic/gin"

	"railway/internal/ai"
	"railway/internal/http/handlers"
	"railway/internal/http/middleware"
	"railway/internal/modules/booking"
	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/modules/profile"
)

type ServerDeps struct {
	Catalog   *catalog.Service
	Pricing   *pricing.Service
	Quotes    *pricing.QuoteCache
	Booking   *booking.Service
	Profile   *profile.Service
	Assistant ai.LLMProvider
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	trainHandler := handlers.NewTrainHandler(deps.Catalog)
	r.GET("/api/trains", trainHandler.List)
	r.GET("/api/trains/:id", trainHandler.Get)

	quoteHandler := handlers.NewQuoteHandler(deps.Catalog, deps.Pricing, deps.Quotes)
	r.POST("/api/quotes", quoteHandler.Quote)

	bookingHandler := handlers.NewBookingHandler(deps.Catalog, deps.Pricing, deps.Booking)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings", bookingHandler.List)
	r.GET("/api/bookings/:id", bookingHandler.Get)
	r.POST("/api/bookings/:id/confirm", bookingHandler.Confirm)
	r.POST("/api/bookings/:id/cancel", bookingHandler.Cancel)
	r.PUT("/api/bookings/:id", bookingHandler.Modify)

	profileHandler := handlers.NewProfileHandler(deps.Profile)
	r.POST("/api/profiles", profileHandler.Create)
	r.GET("/api/profiles", profileHandler.List)
	r.GET("/api/profiles/:username", profileHandler.Get)
	r.PUT("/api/profiles/:id/address", profileHandler.UpdateAddress)

	assistantHandler := handlers.NewAssistantHandler(deps.Assistant, deps.Catalog)
	r.POST("/api/assistant", assistantHandler.Chat)

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	return r
}
