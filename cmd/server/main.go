package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/config"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/api"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/api/handlers"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/ads"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/announcements"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/news"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/notifications"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/providers"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/reports"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/stats"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/symbols"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/metadata"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	if cfg.JWT.Secret == "" {
		log.Fatalf("JWT_SECRET environment variable is required")
	}

	accountsDB, err := postgres.NewClient(&cfg.Accounts)
	if err != nil {
		log.Fatalf("Failed to connect to accounts database: %v", err)
	}
	defer accountsDB.Close()

	contentDB, err := postgres.NewClient(&cfg.Content)
	if err != nil {
		log.Fatalf("Failed to connect to content database: %v", err)
	}
	defer contentDB.Close()

	log.Println("Connected to databases")

	// Cache invalidation fan-out. The log subscriber doubles as an audit
	// trail of which listing routes went stale.
	notifier := revalidate.NewNotifier()
	notifier.Subscribe(func(route string) {
		log.Printf("revalidate: %s", route)
	})

	// Repositories
	authRepo := auth.NewRepository(accountsDB)
	userRepo := community.NewUserRepository(accountsDB)
	contentRepo := community.NewContentRepository(contentDB)
	newsRepo := news.NewRepository(contentDB)
	symbolRepo := symbols.NewRepository(contentDB)
	notificationRepo := notifications.NewRepository(contentDB)
	adRepo := ads.NewRepository(contentDB)
	announcementRepo := announcements.NewRepository(contentDB)
	providerRepo := providers.NewRepository(contentDB)
	reportRepo := reports.NewRepository(contentDB)

	// Services
	authService := auth.NewService(authRepo, &cfg.JWT)
	communityService := community.NewService(userRepo, contentRepo, notifier)
	newsService := news.NewService(newsRepo, notifier)
	symbolService := symbols.NewService(symbolRepo, notifier)
	notificationService := notifications.NewService(notificationRepo, userRepo, notifier)
	adService := ads.NewService(adRepo, notifier)
	announcementService := announcements.NewService(announcementRepo, notifier)
	providerService := providers.NewService(providerRepo, notifier)
	reportService := reports.NewService(reportRepo, userRepo, notifier)
	statsService := stats.NewService(accountsDB, contentDB)
	metadataProvider := metadata.NewProvider(contentDB.DB)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	communityHandler := handlers.NewCommunityHandler(communityService, authService)
	newsHandler := handlers.NewNewsHandler(newsService, authService)
	symbolHandler := handlers.NewSymbolHandler(symbolService, authService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, authService)
	adHandler := handlers.NewAdHandler(adService, authService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, authService)
	providerHandler := handlers.NewProviderHandler(providerService, authService)
	reportHandler := handlers.NewReportHandler(reportService, authService)
	statsHandler := handlers.NewStatsHandler(statsService)
	metadataHandler := handlers.NewMetadataHandler(metadataProvider)

	router := api.NewRouter(
		authService,
		authHandler,
		communityHandler,
		newsHandler,
		symbolHandler,
		notificationHandler,
		adHandler,
		announcementHandler,
		providerHandler,
		reportHandler,
		statsHandler,
		metadataHandler,
	)

	engine := router.Setup(cfg.Server.Mode)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		accountsDB.Close()
		contentDB.Close()
		os.Exit(0)
	}()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
