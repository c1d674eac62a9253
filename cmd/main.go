package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/deepgram"
	"github.com/shenikar/responder_ai/internal/export"
	v1 "github.com/shenikar/responder_ai/internal/handler/http/v1"
	"github.com/shenikar/responder_ai/internal/metrics"
	"github.com/shenikar/responder_ai/internal/repository"
	"github.com/shenikar/responder_ai/internal/service"
	"github.com/shenikar/responder_ai/internal/transcript"
	"github.com/shenikar/responder_ai/internal/webhook"
	"github.com/shenikar/responder_ai/pkg/logger"
	"github.com/shenikar/responder_ai/pkg/postgres"
	redisclient "github.com/shenikar/responder_ai/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/responder_ai/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ResponderAI API
// @version 1.0
// @description Emergency call intake, incident tracking and dispatch API for the ResponderAI dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	appMetrics := metrics.New()

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, appMetrics)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	resourceRepo := repository.NewResourceRepository(dbpool)
	agentRepo := repository.NewAgentRepository(dbpool)
	logRepo := repository.NewLogRepository(dbpool)
	responseRepo := repository.NewAgentResponseRepository(dbpool)

	// Распознавание речи включается только при наличии ключа
	var transcriber service.Transcriber
	if cfg.VoiceEnabled() {
		transcriber = service.NewDeepgramTranscriber(deepgram.NewClient(cfg, log))
	} else {
		log.Warn("DEEPGRAM_API_KEY is not set, voice transcription is disabled")
	}

	var archiver service.LogArchiver
	if cfg.LogExportBucket != "" {
		s3Archiver, err := export.NewS3Archiver(ctx, cfg.AWSRegion, cfg.LogExportBucket)
		if err != nil {
			log.Fatalf("Failed to configure log archive: %v", err)
		}
		archiver = s3Archiver
	}

	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is not set, mutating routes are not protected")
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, resourceRepo, log, cfg, webhookPublisher, appMetrics)
	agentService := service.NewAgentService(agentRepo, logRepo, log)
	logService := service.NewLogService(logRepo, archiver, log)
	analysisService := service.NewAnalysisService(responseRepo, logRepo, log, cfg, webhookPublisher, appMetrics)
	voiceService := service.NewVoiceService(transcriber, transcript.NewRedisBroker(redisClient, log), log, appMetrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, agentService, logService, analysisService, voiceService, log, cfg)
	go handler.RunCleanup(ctx)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestID(), v1.AccessLog(log), appMetrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(appMetrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// SSE ответы не завершаются сами, их закрываем при остановке
	srv.RegisterOnShutdown(handler.CloseStreams)

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Сначала дожидаемся текущих запросов, затем останавливаем фоновые задачи
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	cancel()

	if err := voiceService.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to close some voice sessions")
	}

	log.Info("Server gracefully stopped")
}
