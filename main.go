package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/dosewise/internal/adherence"
	"github.com/vcscsvcscs/dosewise/internal/audit"
	"github.com/vcscsvcscs/dosewise/internal/azure"
	"github.com/vcscsvcscs/dosewise/internal/config"
	"github.com/vcscsvcscs/dosewise/internal/database"
	"github.com/vcscsvcscs/dosewise/internal/handler"
	"github.com/vcscsvcscs/dosewise/internal/jobs"
	"github.com/vcscsvcscs/dosewise/internal/middleware"
	"github.com/vcscsvcscs/dosewise/internal/notify"
	"github.com/vcscsvcscs/dosewise/internal/pdf"
	"github.com/vcscsvcscs/dosewise/internal/reminder"
	"github.com/vcscsvcscs/dosewise/internal/repository"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	pool   *pgxpool.Pool
	cfg    *config.Config
)

func main() {
	// Load configuration
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger, err = newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(ctx, cfg.Database.URL, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Initialize database connection pool with pgx
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Invalid database URL", zap.Error(err))
	}
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Test database connection
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Successfully connected to database")

	// Initialize repositories
	scheduleRepo := repository.NewScheduleRepository(pool, logger)
	doseLogRepo := repository.NewDoseLogRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)
	auditLogger := audit.NewLogger(pool, logger)

	// Initialize external clients
	var chatCompleter service.ChatCompleter
	if cfg.OpenAI.Enabled() {
		openAIClient, err := azure.NewOpenAIClient(
			cfg.OpenAI.Endpoint,
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Deployment,
			logger,
		)
		if err != nil {
			logger.Fatal("Failed to initialize Azure OpenAI client", zap.Error(err))
		}
		chatCompleter = openAIClient
	} else {
		logger.Warn("Azure OpenAI is not configured, chatbot is disabled")
	}

	var reportStorage azure.BlobStorage
	if cfg.Storage.Enabled() {
		blobClient, err := azure.NewBlobStorageClient(
			cfg.Storage.AccountName,
			cfg.Storage.AccountKey,
			cfg.Storage.ReportContainer,
			logger,
		)
		if err != nil {
			logger.Fatal("Failed to initialize Azure Blob Storage client", zap.Error(err))
		}
		reportStorage = blobClient
	} else {
		logger.Warn("Azure Blob Storage is not configured, reports are kept in memory")
		reportStorage = azure.NewMemoryBlobStorage()
	}

	// Notification channels
	hub := notify.NewHub(logger)
	defer hub.Close()

	notifiers := notify.Multi{hub, notify.NewLogNotifier(logger)}
	if cfg.Firebase.Enabled() {
		messagingClient, err := notify.NewFirebaseMessaging(ctx, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Fatal("Failed to initialize Firebase messaging", zap.Error(err))
		}
		notifiers = append(notifiers, notify.NewFirebasePusher(messagingClient, userRepo, logger))
	}

	positions := notify.NewPositionStore(cfg.Reminders.LocationMaxAge)
	scheduler := reminder.NewScheduler(notifiers, reminder.Options{
		Positions:       positions,
		GeofenceTimeout: cfg.Reminders.GeofenceTimeout,
		DefaultRadius:   cfg.Reminders.DefaultRadius,
	}, logger)
	defer scheduler.Close()

	aggregator := adherence.NewAggregator(adherence.Config{
		StreakCap:           cfg.Aggregation.StreakCap,
		AdherenceWindow:     time.Duration(cfg.Aggregation.AdherenceWindowDays) * 24 * time.Hour,
		RecentActivityLimit: cfg.Aggregation.RecentActivityLimit,
	}, logger)

	// Initialize services
	reminderService := service.NewReminderService(scheduler, scheduleRepo, userRepo, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, userRepo, auditLogger, logger)
	scheduleService.SetObserver(reminderService)
	doseLogService := service.NewDoseLogService(doseLogRepo, scheduleRepo, auditLogger, logger)
	dashboardService := service.NewDashboardService(scheduleRepo, doseLogRepo, userRepo, aggregator, notifiers, logger)
	predictionService := service.NewPredictionService(scheduleRepo, doseLogRepo, logger)
	chatService := service.NewChatService(scheduleRepo, doseLogRepo, chatCompleter, logger)
	preferenceService := service.NewPreferenceService(userRepo, positions, reminderService, auditLogger, logger)
	reportService := service.NewReportService(
		reportRepo,
		scheduleRepo,
		doseLogRepo,
		userRepo,
		aggregator,
		reportStorage,
		pdf.NewPDFGenerator(logger),
		auditLogger,
		logger,
	)

	// Background jobs
	var digest *jobs.Digest
	if cfg.SMTP.Enabled() {
		mailer, err := notify.NewMailer(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			logger.Fatal("Failed to initialize mailer", zap.Error(err))
		}
		digest = jobs.NewDigest(userRepo, dashboardService, mailer, logger)
	}

	var rearmer jobs.Rearmer
	if cfg.Reminders.Enabled {
		rearmer = reminderService
	}
	runner := jobs.NewRunner(jobs.Config{
		SweepSpec:    cfg.Reminders.SweepCron,
		RearmSpec:    cfg.Reminders.RearmCron,
		MidnightSpec: cfg.Reminders.MidnightCron,
		DigestSpec:   cfg.Reminders.DigestCron,
		MissedGrace:  cfg.Reminders.MissedGrace,
		JobTimeout:   cfg.Reminders.JobTimeout,
	}, doseLogService, rearmer, digest, logger)
	if err := runner.Register(); err != nil {
		logger.Fatal("Failed to register background jobs", zap.Error(err))
	}
	runner.Start()
	if rearmer != nil {
		go runner.Rearm(ctx)
	}

	// Initialize handlers
	apiHandler := &APIHandler{
		dashboard:   handler.NewDashboardHandler(dashboardService, logger),
		ai:          handler.NewAIHandler(predictionService, logger),
		schedule:    handler.NewScheduleHandler(scheduleService, logger),
		doseLog:     handler.NewDoseLogHandler(doseLogService, logger),
		chat:        handler.NewChatHandler(chatService, logger),
		preferences: handler.NewPreferenceHandler(preferenceService, logger),
		reminders:   handler.NewReminderHandler(reminderService, hub, logger),
		report:      handler.NewReportHandler(reportService, logger),
		pool:        pool,
		logger:      logger,
	}

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := newRouter(apiHandler, cfg.Server.AllowedOrigins, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	runner.Stop(shutdownCtx)

	logger.Info("Server exited")
}

// newRouter wires the middleware chain and the generated routes
func newRouter(apiHandler api.ServerInterface, allowedOrigins []string, logger *zap.Logger) (*gin.Engine, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	validator, err := middleware.OpenAPIValidator(swagger, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggingMiddleware(logger))
	r.Use(middleware.ErrorLoggingMiddleware(logger))
	r.Use(validator)

	// Register generated API handlers
	api.RegisterHandlersWithOptions(r, apiHandler, api.GinServerOptions{
		ErrorHandler: func(c *gin.Context, err error, statusCode int) {
			details := err.Error()
			c.JSON(statusCode, api.ErrorResponse{
				Code:    api.VALIDATIONERROR,
				Message: "Invalid request parameters",
				Details: &details,
			})
		},
	})

	return r, nil
}

// newLogger builds the zap logger from the logging section
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Server.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Logging.Format != "" {
		zapCfg.Encoding = cfg.Logging.Format
	}
	return zapCfg.Build()
}

// APIHandler implements the generated ServerInterface by delegating to individual handlers
type APIHandler struct {
	dashboard   *handler.DashboardHandler
	ai          *handler.AIHandler
	schedule    *handler.ScheduleHandler
	doseLog     *handler.DoseLogHandler
	chat        *handler.ChatHandler
	preferences *handler.PreferenceHandler
	reminders   *handler.ReminderHandler
	report      *handler.ReportHandler
	pool        *pgxpool.Pool
	logger      *zap.Logger
}

// Dashboard endpoints
func (h *APIHandler) GetApiV1DashboardSummary(c *gin.Context, params api.GetApiV1DashboardSummaryParams) {
	h.dashboard.GetApiV1DashboardSummary(c, params)
}

// AI endpoints
func (h *APIHandler) GetApiV1AiPredict(c *gin.Context, params api.GetApiV1AiPredictParams) {
	h.ai.GetApiV1AiPredict(c, params)
}

func (h *APIHandler) GetApiV1AiTodaysSchedule(c *gin.Context, params api.GetApiV1AiTodaysScheduleParams) {
	h.ai.GetApiV1AiTodaysSchedule(c, params)
}

// Schedule endpoints
func (h *APIHandler) GetApiV1Schedules(c *gin.Context, params api.GetApiV1SchedulesParams) {
	h.schedule.GetApiV1Schedules(c, params)
}

func (h *APIHandler) PostApiV1Schedules(c *gin.Context, params api.PostApiV1SchedulesParams) {
	h.schedule.PostApiV1Schedules(c, params)
}

func (h *APIHandler) GetApiV1SchedulesId(c *gin.Context, id openapi_types.UUID, params api.GetApiV1SchedulesIdParams) {
	h.schedule.GetApiV1SchedulesId(c, id, params)
}

func (h *APIHandler) PutApiV1SchedulesId(c *gin.Context, id openapi_types.UUID, params api.PutApiV1SchedulesIdParams) {
	h.schedule.PutApiV1SchedulesId(c, id, params)
}

func (h *APIHandler) DeleteApiV1SchedulesId(c *gin.Context, id openapi_types.UUID, params api.DeleteApiV1SchedulesIdParams) {
	h.schedule.DeleteApiV1SchedulesId(c, id, params)
}

func (h *APIHandler) PostApiV1SchedulesIdDeactivate(c *gin.Context, id openapi_types.UUID, params api.PostApiV1SchedulesIdDeactivateParams) {
	h.schedule.PostApiV1SchedulesIdDeactivate(c, id, params)
}

// Dose log endpoints
func (h *APIHandler) GetApiV1Doselogs(c *gin.Context, params api.GetApiV1DoselogsParams) {
	h.doseLog.GetApiV1Doselogs(c, params)
}

func (h *APIHandler) PostApiV1Doselogs(c *gin.Context, params api.PostApiV1DoselogsParams) {
	h.doseLog.PostApiV1Doselogs(c, params)
}

// Chatbot endpoints
func (h *APIHandler) GetApiV1ChatbotContext(c *gin.Context, params api.GetApiV1ChatbotContextParams) {
	h.chat.GetApiV1ChatbotContext(c, params)
}

func (h *APIHandler) PostApiV1ChatbotMessage(c *gin.Context, params api.PostApiV1ChatbotMessageParams) {
	h.chat.PostApiV1ChatbotMessage(c, params)
}

// Preference and device endpoints
func (h *APIHandler) GetApiV1Preferences(c *gin.Context, params api.GetApiV1PreferencesParams) {
	h.preferences.GetApiV1Preferences(c, params)
}

func (h *APIHandler) PutApiV1Preferences(c *gin.Context, params api.PutApiV1PreferencesParams) {
	h.preferences.PutApiV1Preferences(c, params)
}

func (h *APIHandler) PutApiV1DevicesToken(c *gin.Context, params api.PutApiV1DevicesTokenParams) {
	h.preferences.PutApiV1DevicesToken(c, params)
}

func (h *APIHandler) PostApiV1DevicesLocation(c *gin.Context, params api.PostApiV1DevicesLocationParams) {
	h.preferences.PostApiV1DevicesLocation(c, params)
}

// Reminder endpoints
func (h *APIHandler) GetApiV1Reminders(c *gin.Context, params api.GetApiV1RemindersParams) {
	h.reminders.GetApiV1Reminders(c, params)
}

func (h *APIHandler) PostApiV1RemindersArm(c *gin.Context, params api.PostApiV1RemindersArmParams) {
	h.reminders.PostApiV1RemindersArm(c, params)
}

func (h *APIHandler) DeleteApiV1RemindersKey(c *gin.Context, key string, params api.DeleteApiV1RemindersKeyParams) {
	h.reminders.DeleteApiV1RemindersKey(c, key, params)
}

func (h *APIHandler) GetApiV1Ws(c *gin.Context, params api.GetApiV1WsParams) {
	h.reminders.GetApiV1Ws(c, params)
}

// Report endpoints
func (h *APIHandler) PostApiV1ReportsGenerate(c *gin.Context, params api.PostApiV1ReportsGenerateParams) {
	h.report.PostApiV1ReportsGenerate(c, params)
}

func (h *APIHandler) GetApiV1ReportsId(c *gin.Context, id openapi_types.UUID, params api.GetApiV1ReportsIdParams) {
	h.report.GetApiV1ReportsId(c, id, params)
}

// GetHealth implements the health check endpoint
func (h *APIHandler) GetHealth(c *gin.Context) {
	ctx := c.Request.Context()

	// Check database connectivity
	if err := h.pool.Ping(ctx); err != nil {
		h.logger.Error("health check failed: database unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
		"service":  "dosewise-backend",
		"version":  "1.0.0",
	})
}
