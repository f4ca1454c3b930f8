package routes

import (
	"nepwork/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking board and its actions.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.Use(hb.SessionMiddleware)
		booking.GET("", hb.ListBookingsHandler)
		booking.POST("", hb.RequestBookingHandler)
		booking.POST("/:id/accept", hb.AcceptBookingHandler)
		booking.POST("/:id/decline", hb.DeclineBookingHandler)
		booking.POST("/:id/complete", hb.CompleteBookingHandler)
		booking.POST("/:id/cancel", hb.CancelBookingHandler)
		booking.POST("/:id/rate", hb.RateBookingHandler)
	}
}
