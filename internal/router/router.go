package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/handlers"
	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/middleware"
	"github.com/atharvabaodhankar/socio3-ledger/internal/mirror"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/atharvabaodhankar/socio3-ledger/internal/repositories"
	"github.com/atharvabaodhankar/socio3-ledger/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Post{},
		&models.Report{},
		&models.Follow{},
		&models.Like{},
		&models.Tip{},
		&models.PostTips{},
		&models.Account{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	reportRepo := repositories.NewPostgresReportRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	tipRepo := repositories.NewPostgresTipRepository(pgdb)
	accountRepo := repositories.NewPostgresAccountRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Event bus and projections ---
	bus := events.NewBus()

	postMirror := mirror.NewMongoMirror(mgClient.Database(cfg.MongoDatabase))
	bus.Subscribe(postMirror.HandleEvent)

	notifier := mirror.NewNotifier(notificationRepo, postRepo)
	bus.Subscribe(notifier.HandleEvent)
	log.Println("Mirror and notifier projections subscribed.")

	// --- Ledger services ---
	registry := ledger.NewPostRegistry(postRepo, reportRepo, bus)
	graph := ledger.NewSocialGraph(followRepo, likeRepo, tipRepo, bus)

	// --- Unprotected routes for session creation ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler()
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require wallet authentication) ---
	api := e.Group("/api/v1")
	if cfg.AuthMode == "firebase" && firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
		log.Println("Firebase authentication middleware applied to /api/v1 group.")
	} else {
		api.Use(middleware.WalletAuthMiddleware())
		log.Println("Wallet JWT authentication middleware applied to /api/v1 group.")
	}

	// Post routes
	postHandler := handlers.NewPostHandler(registry, graph)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Report routes
	reportHandler := handlers.NewReportHandler(registry)
	reportHandler.RegisterReportRoutes(api)
	log.Println("Report routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(graph)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(graph)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Tip routes
	tipHandler := handlers.NewTipHandler(graph)
	tipHandler.RegisterTipRoutes(api)
	log.Println("Tip routes configured.")

	// Account routes
	accountHandler := handlers.NewAccountHandler(accountRepo, cfg.FaucetAmount)
	accountHandler.RegisterAccountRoutes(api)
	log.Println("Account routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(registry, graph)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Search routes (mirror-backed)
	searchHandler := handlers.NewSearchHandler(postMirror)
	searchHandler.RegisterSearchRoutes(api)
	log.Println("Search routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
