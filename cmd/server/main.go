package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insight-gateway/internal/adapter/api"
	"insight-gateway/internal/adapter/client"
	"insight-gateway/internal/adapter/store"
	"insight-gateway/internal/config"
	"insight-gateway/internal/domain/repository"
	"insight-gateway/internal/logging"
	"insight-gateway/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		log.Printf("Warning: %s file not found, using system environment variables", envFile)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	if !cfg.HasCredentials() {
		logger.Warn("no credentials configured for provider; requests will fail until they are set",
			zap.String("provider", cfg.Provider))
	}

	insightProvider, imageProvider := buildProviders(ctx, cfg, logger)

	insights := usecase.NewInsightService(insightProvider, cfg.MaxTokens)
	images := usecase.NewImageService(imageProvider)

	opts := api.RouterOptions{AccessLog: true, Log: logger}
	if cfg.RateLimitEnabled() {
		// Redis for Rate Limiting
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		opts.Limiter = store.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		logger.Info("rate limiting enabled",
			zap.String("redis", cfg.RedisAddr),
			zap.Int("per_minute", cfg.RateLimitPerMinute))
	}

	app := fiber.New(fiber.Config{
		AppName: "AI Insight Gateway",
	})

	handler := api.NewInsightHandler(insights, images, logger)
	api.SetupRouter(app, handler, opts)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("AI insight server listening",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.Provider),
		zap.String("insight_model", cfg.InsightModel),
		zap.String("image_model", cfg.ImageModel))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildProviders(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.InsightProvider, repository.ImageProvider) {
	if cfg.Provider == config.ProviderGemini {
		gemini, err := client.NewGeminiClient(ctx, client.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Project:    cfg.GoogleProject,
			Location:   cfg.GoogleLocation,
			BaseURL:    cfg.GeminiBaseURL,
			Model:      cfg.InsightModel,
			ImageModel: cfg.ImageModel,
		})
		if err != nil {
			// Surface the failure per request instead of refusing to boot.
			logger.Error("failed to init genai client", zap.Error(err))
			unavailable := client.UnavailableClient{Err: err}
			return unavailable, unavailable
		}
		return gemini, gemini
	}

	openai := client.NewOpenAIClient(client.OpenAIConfig{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.InsightModel,
		ImageModel: cfg.ImageModel,
	})
	return openai, openai
}
