package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nepwork/config"
	"nepwork/database"
	preferenceRepo "nepwork/database/repository/preference"
	recordsRepo "nepwork/database/repository/records"
	"nepwork/handlers"
	"nepwork/middleware"
	"nepwork/routes"
	"nepwork/services/backend"
	"nepwork/services/booking"
	"nepwork/services/catalog"
	"nepwork/services/dashboard"
	"nepwork/services/kyc"
	"nepwork/services/session"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Refusing to start with insecure configuration", zap.Error(err))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// stores.
	var (
		prefs       preferenceRepo.PreferenceStore
		redisClient *redis.Client
		mongoClient *mongo.Client
		activity    recordsRepo.ActivityRepository
	)
	switch cfg.PreferenceStore {
	case "memory":
		prefs = preferenceRepo.NewMemoryStore()
	default:
		redisClient = utils.GetPreferenceClient()
		prefs = preferenceRepo.NewRedisStore(redisClient, cfg.PreferenceTTL)
	}
	switch cfg.ActivityStore {
	case "memory":
		activity = recordsRepo.NewMemoryActivityRepo()
	default:
		database.InitDB()
		mongoClient = database.MongoClient
		activity = recordsRepo.NewMongoActivityRepo()
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, redisClient, mongoClient, 30*time.Second)

	// services.
	api := backend.NewClient(backend.Options{
		BaseURL:      cfg.APIBaseURL,
		Timeout:      cfg.APITimeout,
		DevEmailAuth: cfg.DevEmailAuth,
		Tokens:       prefs,
		Logger:       logger.Named("backend"),
	})
	resolver := session.NewResolver(prefs, logger.Named("session"))
	kycService := kyc.NewKYCService(api)
	catalogService := catalog.New(api, kycService)
	assembler := dashboard.NewAssembler(dashboard.Deps{
		Resolver: resolver,
		Bookings: api,
		Services: catalogService,
		KYC:      kycService,
		Activity: activity,
		Logger:   logger.Named("dashboard"),
	})

	bookingHandler := handlers.NewBookingHandler(api, resolver, activity)
	roleHandler := handlers.NewRoleHandler(resolver, api)
	catalogHandler := handlers.NewCatalogHandler(catalogService, resolver)
	kycHandler := handlers.NewKYCHandler(kycService)
	activityHandler := handlers.NewActivityHandler(activity)
	dashboardHandler := handlers.NewDashboardHandler(assembler)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SessionMiddleware: middleware.SessionMiddleware(middleware.SessionOptions{
			JWTSecret:       cfg.JWTSecret,
			AllowUnverified: cfg.InsecureSkipJWTVerify,
			DevEmailAuth:    cfg.DevEmailAuth,
			Tokens:          resolver,
		}),

		HealthHandler:       handlers.HealthHandler,
		GetDashboardHandler: dashboardHandler.GetDashboardHandler,

		// Booking endpoints.
		ListBookingsHandler:    bookingHandler.ListBookingsHandler,
		RequestBookingHandler:  bookingHandler.RequestBookingHandler,
		AcceptBookingHandler:   bookingHandler.ActionHandler(booking.ActionAccept),
		DeclineBookingHandler:  bookingHandler.ActionHandler(booking.ActionDecline),
		CompleteBookingHandler: bookingHandler.ActionHandler(booking.ActionComplete),
		CancelBookingHandler:   bookingHandler.ActionHandler(booking.ActionCancel),
		RateBookingHandler:     bookingHandler.RateBookingHandler,

		// Catalog endpoints.
		ListServicesHandler:   catalogHandler.ListServicesHandler,
		GetServiceHandler:     catalogHandler.GetServiceHandler,
		CreateServiceHandler:  catalogHandler.CreateServiceHandler,
		ListCategoriesHandler: catalogHandler.ListCategoriesHandler,

		// Role endpoints.
		GetRoleHandler:    roleHandler.GetRoleHandler,
		SwitchRoleHandler: roleHandler.SwitchRoleHandler,

		// KYC endpoints.
		GetKYCStatusHandler: kycHandler.GetKYCStatusHandler,
		SubmitKYCHandler:    kycHandler.SubmitKYCHandler,

		RecentActivityHandler: activityHandler.RecentActivityHandler,
		DeleteActivityHandler: activityHandler.DeleteActivityHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, config.Origins())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("backend", cfg.APIBaseURL))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
