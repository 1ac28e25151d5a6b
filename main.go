package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/database"
	"pawfect_grooming/gateway"
	"pawfect_grooming/helper"
	"pawfect_grooming/logging"
	"pawfect_grooming/metrics"
	"pawfect_grooming/router"
	"pawfect_grooming/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("fatal error")
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.App = cfg

	logger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}
	log.Logger = *logger

	if err := database.ConnectDB(cfg); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	redisClient := initRedis(cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	if cfg.Stripe.SecretKey != "" {
		gateway.Default = gateway.NewStripeClient(cfg.Stripe)
	} else {
		logger.Warn().Msg("stripe secret key missing, card and FPX checkout disabled")
	}

	if err := helper.StartSchedulers(cfg.Scheduler); err != nil {
		return err
	}
	defer helper.StopSchedulers()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Server.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, Stripe-Signature, X-Temp-Login-Token, X-Temp-Login-Role",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
	router.SetupRoutes(app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	}()
	logger.Info().Int("port", cfg.Server.Port).Msg("http server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}

// initRedis wires the session store and the appointment feed. Without redis both fall back to
// process memory and the feed is disabled.
func initRedis(cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	memory := session.NewMemoryStore(cfg.Redis.SessionTTL)
	session.Default = memory
	if cfg.Redis.Address == "" {
		logger.Warn().Msg("redis address missing, sessions kept in memory")
		return nil
	}

	client := session.NewRedisClient(cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := session.Ping(ctx, client); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, sessions fall back to memory until it recovers")
	} else {
		logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	}

	session.Default = session.NewFailoverStore(session.NewRedisStore(client, cfg.Redis.SessionTTL), memory, logger)
	helper.FeedClient = client
	return client
}
