package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pivotchat-backend/internal/config"
	"pivotchat-backend/internal/corrector"
	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/engine"
	translateHandler "pivotchat-backend/internal/handler/http/translate"
	wsHandler "pivotchat-backend/internal/handler/ws"
	"pivotchat-backend/internal/middleware"
	"pivotchat-backend/internal/normalizer"
	"pivotchat-backend/internal/pipeline"
	"pivotchat-backend/internal/registry"
	redisrepo "pivotchat-backend/internal/repository/redis"
	"pivotchat-backend/pkg/cache"
	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/metrics"
)

func main() {
	// 1. Load configuration and initialize logging
	cfg := config.Load()

	if err := logger.Init(&logger.Config{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Connect to Redis (optional: rate limiting + shared cache)
	var redisClient *goredis.Client
	if cfg.RedisEnabled() {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, continuing without it", zap.Error(err))
			redisClient = nil
		} else {
			logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr()))
			defer redisClient.Close()
		}
		cancel()
	}

	// 3. Initialize metrics
	appMetrics := metrics.NewMetrics("translation-service")
	prometheusMiddleware := middleware.NewPrometheusMiddleware(appMetrics)

	// 4. Build the pipeline components
	reg := registry.NewDefaultRegistry()
	logger.Info("Language registry loaded", zap.Int("languages", reg.Size()))

	var norm *normalizer.Normalizer
	if cfg.Pipeline.LanguageDetection {
		norm = normalizer.NewNormalizerWithDetection(reg)
	} else {
		norm = normalizer.NewNormalizer(reg)
	}

	corr := corrector.NewCorrector(cfg.Cache.CorrectionEntries, appMetrics)

	backend := engine.NewHTTPBackend(cfg.Backend.URL, cfg.Backend.Timeout, appMetrics)
	translationCache := cache.NewTranslationCache(cfg.Cache.TranslationEntries)
	remoteCache := redisrepo.NewTranslationCacheRepository(redisClient, cfg.Redis.CacheTTL)

	eng := engine.NewEngine(reg, backend, translationCache, remoteCache, appMetrics, domain.BackendMode(cfg.Backend.Mode))
	pipe := pipeline.NewPipeline(norm, corr, eng, reg)

	// 5. Initialize handlers
	translateHdlr := translateHandler.NewHandler(pipe, eng, reg)
	previewHub := wsHandler.NewPreviewHandler(pipe, appMetrics)

	// 6. Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.SetTrustedProxies(nil)

	router.Use(middleware.Recovery())
	// Liveness probes answer before logging, metrics, and rate limiting.
	router.Use(middleware.HealthCheck("translation-service"))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware())
	router.Use(prometheusMiddleware.Handler())
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	// Metrics endpoint (for Prometheus scraping)
	router.GET("/metrics", middleware.MetricsHandler())

	// API routes
	v1 := router.Group("/v1")
	if redisClient != nil {
		rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		v1.Use(rateLimiter.Middleware())
	}
	{
		v1.POST("/process", translateHdlr.ProcessMessage)
		v1.POST("/preview", translateHdlr.PreviewMessage)
		v1.POST("/translate", translateHdlr.Translate)
		v1.POST("/analyze", translateHdlr.AnalyzeInput)
		v1.GET("/languages", translateHdlr.ListLanguages)
		v1.GET("/languages/:code", translateHdlr.GetLanguage)

		// WebSocket endpoint (live typing preview)
		v1.GET("/ws/preview", previewHub.ServeWS)
	}

	// 7. Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("Translation service starting",
			zap.String("port", cfg.Port),
			zap.String("backend_url", cfg.Backend.URL),
			zap.String("backend_mode", cfg.Backend.Mode),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
