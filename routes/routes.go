package routes

import (
	"time"

	"nepwork/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the role-scoped dashboard and activity endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("/dashboard", hb.GetDashboardHandler)
		api.GET("/activity", hb.RecentActivityHandler)
		api.DELETE("/activity/:id", hb.DeleteActivityHandler)
	}
}

// RegisterRoleRoutes registers role resolution and switching.
func RegisterRoleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/role")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.GetRoleHandler)
		api.PUT("", hb.SwitchRoleHandler)
	}
}

// RegisterCatalogRoutes registers service listings, publishing and categories.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("/services", hb.ListServicesHandler)
		api.POST("/services", hb.CreateServiceHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/categories", hb.ListCategoriesHandler)
	}
}

// RegisterKYCRoutes registers provider identity verification.
func RegisterKYCRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/kyc")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.GetKYCStatusHandler)
		api.POST("", hb.SubmitKYCHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-Email", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterRoleRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterKYCRoutes(r, hb)
}
