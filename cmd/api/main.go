package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/contratus-api/docs" // Swagger docs
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/database"
	"github.com/sjperalta/contratus-api/internal/handlers"
	"github.com/sjperalta/contratus-api/internal/jobs"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/sjperalta/contratus-api/internal/storage"
	"github.com/sjperalta/contratus-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Contratus API
// @version 1.0
// @description REST API for the Contratus real-estate brokerage back office: catalog, clients, proposals, contracts and commissions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@contratus.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry (GlitchTip) when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.EnableEmailNotifications && (cfg.ResendAPIKey == "" || cfg.FromEmail == "") {
		logger.Warn("Resend email disabled: RESEND_API_KEY or FROM_EMAIL not set")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Error("Migration failed", "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage", "path", cfg.StoragePath)

	repos := repository.NewRepositories(db)
	metrics := observability.NewMetrics()

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, worker, store, cfg, metrics)

	scheduleJobs(worker, svcs)

	h := handlers.NewHandlers(svcs, store, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
	router := setupRouter(h, repos, metrics, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // PDF rendering
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, repos *repository.Repositories, metrics *observability.Metrics, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(metrics))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".pdf", ".png", ".jpg", ".jpeg"})))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Development and unit-type images, agency logo
	router.Static("/uploads", filepath.Join(cfg.StoragePath, "uploads"))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Authenticated routes; the policy is resolved from the stored user
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret), middleware.LoadPolicy(repos.User))
		{
			protected.GET("/me", h.User.Me)
			protected.PATCH("/users/:user_id/change_password", h.User.ChangePassword)

			protected.GET("/dashboard", h.Dashboard.Show)
			protected.GET("/dashboard/periods", h.Dashboard.Periods)

			// Catalog reads
			protected.GET("/construction_companies", h.ConstructionCompany.Index)
			protected.GET("/construction_companies/:company_id", h.ConstructionCompany.Show)
			protected.GET("/developments", h.Development.Index)
			protected.GET("/developments/:development_id", h.Development.Show)
			protected.GET("/developments/:development_id/info", h.Development.Info)
			protected.GET("/developments/:development_id/unit_types", h.Development.UnitTypes)
			protected.GET("/developments/:development_id/units", h.Development.Units)
			protected.GET("/units/:unit_id", h.Unit.Show)

			clients := protected.Group("/clients")
			{
				clients.GET("", h.Client.Index)
				clients.POST("", h.Client.Create)
				clients.GET("/:client_id", h.Client.Show)
				clients.GET("/:client_id/info", h.Client.Info)
				clients.PUT("/:client_id", h.Client.Update)
				clients.DELETE("/:client_id", h.Client.Delete)
			}

			// Static routes are registered before their :id siblings
			proposals := protected.Group("/proposals")
			{
				proposals.POST("/pricing", h.Proposal.Pricing)
				proposals.GET("/export", h.Proposal.Export)
				proposals.GET("", h.Proposal.Index)
				proposals.POST("", h.Proposal.Create)
				proposals.GET("/:proposal_id", h.Proposal.Show)
				proposals.PUT("/:proposal_id", h.Proposal.Update)
				proposals.POST("/:proposal_id/send", h.Proposal.Send)
				proposals.POST("/:proposal_id/approve", h.Proposal.Approve)
				proposals.POST("/:proposal_id/reject", h.Proposal.Reject)
				proposals.POST("/:proposal_id/cancel", h.Proposal.Cancel)
				proposals.GET("/:proposal_id/document", h.Proposal.Document)
				proposals.POST("/:proposal_id/contract", h.Contract.Create)
			}

			contracts := protected.Group("/contracts")
			{
				contracts.GET("/export", h.Contract.Export)
				contracts.GET("", h.Contract.Index)
				contracts.GET("/:contract_id", h.Contract.Show)
				contracts.PUT("/:contract_id", h.Contract.Update)
				contracts.PATCH("/:contract_id/status", h.Contract.ChangeStatus)
				contracts.GET("/:contract_id/history", h.Contract.History)
				contracts.GET("/:contract_id/document", h.Contract.Document)
				contracts.POST("/:contract_id/signed", h.Contract.UploadSigned)
				contracts.GET("/:contract_id/signed", h.Contract.DownloadSigned)
			}

			protected.GET("/commissions/export", h.Commission.Export)
			protected.GET("/commissions", h.Commission.Index)
			protected.GET("/commissions/:commission_id", h.Commission.Show)

			protected.GET("/settings", h.Settings.Show)

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", h.Notification.Index)
				notifications.POST("/mark_all_as_read", h.Notification.MarkAllAsRead)
				notifications.PATCH("/:notification_id/read", h.Notification.MarkAsRead)
				notifications.DELETE("/:notification_id", h.Notification.Delete)
			}

			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", h.User.Index)
				admin.POST("/users", h.User.Create)
				admin.GET("/users/:user_id", h.User.Show)
				admin.PUT("/users/:user_id", h.User.Update)
				admin.PUT("/users/:user_id/toggle_status", h.User.ToggleStatus)
				admin.POST("/users/:user_id/resend_confirmation", h.User.ResendConfirmation)

				admin.GET("/teams", h.Team.Index)
				admin.POST("/teams", h.Team.Create)
				admin.GET("/teams/:team_id", h.Team.Show)
				admin.PUT("/teams/:team_id", h.Team.Update)
				admin.DELETE("/teams/:team_id", h.Team.Delete)

				admin.POST("/construction_companies", h.ConstructionCompany.Create)
				admin.PUT("/construction_companies/:company_id", h.ConstructionCompany.Update)
				admin.DELETE("/construction_companies/:company_id", h.ConstructionCompany.Delete)

				admin.POST("/developments", h.Development.Create)
				admin.PUT("/developments/:development_id", h.Development.Update)
				admin.DELETE("/developments/:development_id", h.Development.Delete)
				admin.POST("/developments/:development_id/image", h.Development.UploadImage)
				admin.POST("/developments/:development_id/unit_types", h.UnitType.Create)
				admin.POST("/developments/:development_id/units", h.Unit.Create)
				admin.POST("/developments/:development_id/units/batch", h.Unit.CreateBatch)

				admin.PUT("/unit_types/:unit_type_id", h.UnitType.Update)
				admin.DELETE("/unit_types/:unit_type_id", h.UnitType.Delete)
				admin.POST("/unit_types/:unit_type_id/image", h.UnitType.UploadImage)

				admin.PUT("/units/:unit_id", h.Unit.Update)
				admin.DELETE("/units/:unit_id", h.Unit.Delete)
				admin.POST("/units/:unit_id/block", h.Unit.Block)
				admin.POST("/units/:unit_id/unblock", h.Unit.Unblock)

				admin.PUT("/commissions/:commission_id", h.Commission.Update)
				admin.POST("/commissions/:commission_id/approve", h.Commission.Approve)
				admin.POST("/commissions/:commission_id/pay", h.Commission.Pay)
				admin.POST("/commissions/:commission_id/cancel", h.Commission.Cancel)

				admin.PUT("/settings", h.Settings.Update)
				admin.POST("/settings/logo", h.Settings.UploadLogo)

				admin.GET("/audits", h.Audit.Index)
				admin.GET("/jobs/status", h.Job.Status)
				admin.POST("/jobs/expire-proposals", h.Job.ExpireProposals)
			}
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Expire sent proposals past their validity and release their units
	worker.ScheduleEveryImmediate(services.JobExpireProposals, time.Hour, svcs.Proposal.ExpireJob)

	logger.Info("Scheduled recurring jobs")
}
