package api

import (
	stdhttp "net/http"

	intconfig "tripbooking/internal/config"
	h "tripbooking/internal/http/handlers"
	"tripbooking/internal/http/middleware"
	"tripbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, booking h.BookingHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins()))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	submitLimiter := middleware.NewIPRateLimiter(env.SubmitRatePerMin, 2)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		bookingGroup := api.Group("/booking")
		bookingGroup.GET("/trips/:id", booking.GetTrip)
		bookingGroup.GET("/boats", booking.ListBoats)
		bookingGroup.GET("/hotels", booking.ListHotels)
		bookingGroup.POST("/quote", booking.Quote)

		drafts := bookingGroup.Group("/drafts")
		drafts.POST("", booking.CreateDraft)
		drafts.GET("/:id", booking.GetDraft)
		drafts.PATCH("/:id", booking.UpdateDraft)
		drafts.POST("/:id/cabins/:cabinId/increment", booking.IncrementCabin)
		drafts.POST("/:id/cabins/:cabinId/decrement", booking.DecrementCabin)
		drafts.POST("/:id/hotels/:hotelId/increment", booking.IncrementHotel)
		drafts.POST("/:id/hotels/:hotelId/decrement", booking.DecrementHotel)
		drafts.POST("/:id/fees/:feeId/toggle", booking.ToggleFee)
		drafts.POST("/:id/submit", submitLimiter.Middleware(), booking.SubmitDraft)
		drafts.GET("/:id/quote.pdf", booking.QuotePDF)

		payments := api.Group("/payments")
		payments.GET("/verify", booking.VerifyPayment)
	}

	h.SetRouter(r)
	return r
}
