package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Shared middleware
	SessionMiddleware gin.HandlerFunc

	// Health
	HealthHandler gin.HandlerFunc

	// Dashboard endpoints
	GetDashboardHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler    gin.HandlerFunc
	RequestBookingHandler  gin.HandlerFunc
	AcceptBookingHandler   gin.HandlerFunc
	DeclineBookingHandler  gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	RateBookingHandler     gin.HandlerFunc

	// Catalog endpoints
	ListServicesHandler   gin.HandlerFunc
	GetServiceHandler     gin.HandlerFunc
	CreateServiceHandler  gin.HandlerFunc
	ListCategoriesHandler gin.HandlerFunc

	// Role endpoints
	GetRoleHandler    gin.HandlerFunc
	SwitchRoleHandler gin.HandlerFunc

	// KYC endpoints
	GetKYCStatusHandler gin.HandlerFunc
	SubmitKYCHandler    gin.HandlerFunc

	// Activity endpoints
	RecentActivityHandler gin.HandlerFunc
	DeleteActivityHandler gin.HandlerFunc
}
