package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/api/handlers"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/api/middleware"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
)

type Router struct {
	engine              *gin.Engine
	authMiddleware      *middleware.AuthMiddleware
	authHandler         *handlers.AuthHandler
	communityHandler    *handlers.CommunityHandler
	newsHandler         *handlers.NewsHandler
	symbolHandler       *handlers.SymbolHandler
	notificationHandler *handlers.NotificationHandler
	adHandler           *handlers.AdHandler
	announcementHandler *handlers.AnnouncementHandler
	providerHandler     *handlers.ProviderHandler
	reportHandler       *handlers.ReportHandler
	statsHandler        *handlers.StatsHandler
	metadataHandler     *handlers.MetadataHandler
}

func NewRouter(
	authService *auth.Service,
	authHandler *handlers.AuthHandler,
	communityHandler *handlers.CommunityHandler,
	newsHandler *handlers.NewsHandler,
	symbolHandler *handlers.SymbolHandler,
	notificationHandler *handlers.NotificationHandler,
	adHandler *handlers.AdHandler,
	announcementHandler *handlers.AnnouncementHandler,
	providerHandler *handlers.ProviderHandler,
	reportHandler *handlers.ReportHandler,
	statsHandler *handlers.StatsHandler,
	metadataHandler *handlers.MetadataHandler,
) *Router {
	return &Router{
		authMiddleware:      middleware.NewAuthMiddleware(authService),
		authHandler:         authHandler,
		communityHandler:    communityHandler,
		newsHandler:         newsHandler,
		symbolHandler:       symbolHandler,
		notificationHandler: notificationHandler,
		adHandler:           adHandler,
		announcementHandler: announcementHandler,
		providerHandler:     providerHandler,
		reportHandler:       reportHandler,
		statsHandler:        statsHandler,
		metadataHandler:     metadataHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(gin.Logger())
	r.engine.Use(middleware.AuditMiddleware())

	r.setupRoutes()
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	api.POST("/auth/login", r.authHandler.Login)

	// Everything else requires a logged-in admin.
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		protected.GET("/auth/me", r.authHandler.Me)

		admin := protected.Group("/admin")
		{
			// Community
			community := admin.Group("/community")
			{
				community.GET("/users", r.authMiddleware.RequirePermission(auth.PermCommunityRead), r.communityHandler.ListUsers)
				community.GET("/users/:id", r.authMiddleware.RequirePermission(auth.PermCommunityRead), r.communityHandler.GetUser)
				community.PUT("/users/:id", r.authMiddleware.RequirePermission(auth.PermCommunityWrite), r.communityHandler.UpdateUser)
				community.POST("/users/:id/toggle-suspend", r.authMiddleware.RequirePermission(auth.PermCommunityWrite), r.communityHandler.ToggleSuspendUser)
				community.DELETE("/users/:id", r.authMiddleware.RequirePermission(auth.PermCommunityWrite), r.communityHandler.DeleteUser)

				community.GET("/posts", r.authMiddleware.RequirePermission(auth.PermCommunityRead), r.communityHandler.ListPosts)
				community.DELETE("/posts/:id", r.authMiddleware.RequirePermission(auth.PermCommunityWrite), r.communityHandler.DeletePost)

				community.GET("/comments", r.authMiddleware.RequirePermission(auth.PermCommunityRead), r.communityHandler.ListComments)
				community.DELETE("/comments/:id", r.authMiddleware.RequirePermission(auth.PermCommunityWrite), r.communityHandler.DeleteComment)
			}

			// News
			news := admin.Group("/news")
			{
				news.GET("", r.authMiddleware.RequirePermission(auth.PermNewsRead), r.newsHandler.List)
				news.GET("/:id", r.authMiddleware.RequirePermission(auth.PermNewsRead), r.newsHandler.Get)
				news.POST("", r.authMiddleware.RequirePermission(auth.PermNewsWrite), r.newsHandler.Create)
				news.PUT("/:id", r.authMiddleware.RequirePermission(auth.PermNewsWrite), r.newsHandler.Update)
				news.POST("/:id/toggle-active", r.authMiddleware.RequirePermission(auth.PermNewsWrite), r.newsHandler.ToggleActive)
				news.DELETE("/:id", r.authMiddleware.RequirePermission(auth.PermNewsWrite), r.newsHandler.Delete)
			}

			// Symbols
			symbols := admin.Group("/symbols")
			{
				symbols.GET("", r.authMiddleware.RequirePermission(auth.PermSymbolsRead), r.symbolHandler.List)
				symbols.GET("/:id", r.authMiddleware.RequirePermission(auth.PermSymbolsRead), r.symbolHandler.Get)
				symbols.POST("", r.authMiddleware.RequirePermission(auth.PermSymbolsWrite), r.symbolHandler.Create)
				symbols.PUT("/:id", r.authMiddleware.RequirePermission(auth.PermSymbolsWrite), r.symbolHandler.Update)
				symbols.POST("/:id/toggle-active", r.authMiddleware.RequirePermission(auth.PermSymbolsWrite), r.symbolHandler.ToggleActive)
				symbols.DELETE("/:id", r.authMiddleware.RequirePermission(auth.PermSymbolsWrite), r.symbolHandler.Delete)
			}

			// Notifications
			notifications := admin.Group("/notifications")
			{
				notifications.GET("", r.authMiddleware.RequirePermission(auth.PermNotificationsRead), r.notificationHandler.List)
				notifications.POST("/:id/toggle-read", r.authMiddleware.RequirePermission(auth.PermNotificationsWrite), r.notificationHandler.ToggleRead)
				notifications.DELETE("/:id", r.authMiddleware.RequirePermission(auth.PermNotificationsWrite), r.notificationHandler.Delete)
			}

			// Ads
			ads := admin.Group("/ads")
			{
				ads.GET("", r.authMiddleware.RequirePermission(auth.PermAdsRead), r.adHandler.List)
				ads.GET("/:id", r.authMiddleware.RequirePermission(auth.PermAdsRead), r.adHandler.Get)
				ads.POST("", r.authMiddleware.RequirePermission(auth.PermAdsWrite), r.adHandler.Create)
				ads.PUT("/:id", r.authMiddleware.RequirePermission(auth.PermAdsWrite), r.adHandler.Update)
				ads.POST("/:id/toggle-active", r.authMiddleware.RequirePermission(auth.PermAdsWrite), r.adHandler.ToggleActive)
				ads.DELETE("/:id", r.authMiddleware.RequirePermission(auth.PermAdsWrite), r.adHandler.Delete)
			}

			// Announcements
			announcements := admin.Group("/announcements")
			{
				announcements.GET("", r.authMiddleware.RequirePermission(auth.PermAnnouncementsRead), r.announcementHandler.List)
				announcements.GET("/:id", r.authMiddleware.RequirePermission(auth.PermAnnouncementsRead), r.announcementHandler.Get)
				announcements.POST("", r.authMiddleware.RequirePermission(auth.PermAnnouncementsWrite), r.announcementHandler.Create)
				announcements.PUT("/:id", r.authMiddleware.RequirePermission(auth.PermAnnouncementsWrite), r.announcementHandler.Update)
				announcements.POST("/:id/toggle-active", r.authMiddleware.RequirePermission(auth.PermAnnouncementsWrite), r.announcementHandler.ToggleActive)
				announcements.DELETE("/:id", r.authMiddleware.RequirePermission(auth.PermAnnouncementsWrite), r.announcementHandler.Delete)
			}

			// Provider keys
			providers := admin.Group("/providers")
			{
				providers.GET("/keys", r.authMiddleware.RequirePermission(auth.PermProvidersRead), r.providerHandler.ListKeys)
				providers.POST("/keys", r.authMiddleware.RequirePermission(auth.PermProvidersWrite), r.providerHandler.CreateKey)
				providers.DELETE("/keys/:id", r.authMiddleware.RequirePermission(auth.PermProvidersWrite), r.providerHandler.RevokeKey)
			}

			// Reports
			reports := admin.Group("/reports")
			{
				reports.GET("/bugs", r.authMiddleware.RequirePermission(auth.PermReportsRead), r.reportHandler.ListBugReports)
				reports.PUT("/bugs/:id/status", r.authMiddleware.RequirePermission(auth.PermReportsWrite), r.reportHandler.UpdateBugReportStatus)
				reports.DELETE("/bugs/:id", r.authMiddleware.RequirePermission(auth.PermReportsWrite), r.reportHandler.DeleteBugReport)
				reports.GET("/posts", r.authMiddleware.RequirePermission(auth.PermReportsRead), r.reportHandler.ListPostReports)
				reports.PUT("/posts/:id/status", r.authMiddleware.RequirePermission(auth.PermReportsWrite), r.reportHandler.UpdatePostReportStatus)
				reports.DELETE("/posts/:id", r.authMiddleware.RequirePermission(auth.PermReportsWrite), r.reportHandler.DeletePostReport)
			}

			// Overview + metadata
			admin.GET("/stats/overview", r.authMiddleware.RequirePermission(auth.PermStatsRead), r.statsHandler.Overview)
			admin.GET("/metadata/:table/:column/values", r.metadataHandler.EnumValues)

			// Audit logs
			admin.GET("/audit-logs", r.authMiddleware.RequirePermission(auth.PermAuditRead), r.authHandler.ListAuditLogs)
		}
	}
}
