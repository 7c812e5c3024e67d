package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/techentia-work/vtcc-australia/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/check-availability", h.CheckAvailability)
		booking.POST("/available-slots", h.AvailableSlots)
		booking.POST("/create-with-advance", h.CreateWithAdvance)
		booking.POST("/:id/retry-order", h.RetryOrder)
		booking.GET("/stats", h.Stats)
		booking.GET("/:id", h.GetBooking)
	}

	payment := r.Group("/api/payment")
	{
		payment.POST("/verify", h.VerifyPayment)
	}
}
