package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"orator/docs"
	"orator/internal/config"
	"orator/internal/database"
	"orator/internal/database/migration"
	handlers "orator/internal/http/handler"
	"orator/internal/http/middleware"
	"orator/internal/logger"
	"orator/internal/otel"
	"orator/internal/providers"
	"orator/internal/repository/postgres"
	"orator/internal/service"
	"orator/internal/storage"
	"orator/internal/tasks"
)

// @title Orator API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, os.Getenv("LOG_FORMAT"))

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	// Model provider adapters share the OpenAI credentials
	analyzer := providers.NewOpenAIAnalyzer(providers.VisionConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.VisionModel,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	synthesizer := providers.NewOpenAISynthesizer(providers.TTSConfig{
		APIKey:       cfg.OpenAI.APIKey,
		Model:        cfg.OpenAI.TTSModel,
		Voices:       providers.NewVoiceSet(cfg.TTS.Voices, cfg.TTS.DefaultVoice),
		Instructions: cfg.OpenAI.TTSInstructions,
		BaseURL:      cfg.OpenAI.BaseURL,
	})

	runner := tasks.NewRunner(cfg.Analyze.MaxConcurrency)

	bookSvc := service.NewBookService(postgres.NewBookPostgres(db))
	pageSvc := service.NewPageService(postgres.NewPagePostgres(db), objStore, analyzer, runner)
	ttsSvc := service.NewTTSService(synthesizer, objStore, postgres.NewTTSResultPostgres(db))

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Upload.MaxSizeMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promReg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, handlers.Services{
		Books: bookSvc,
		Pages: pageSvc,
		TTS:   ttsSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Optional recovery sweep for pages stranded in processing by a crash
	sweepDone := make(chan struct{})
	if cfg.Analyze.SweepEnabled {
		go func() {
			ticker := time.NewTicker(cfg.Analyze.SweepMaxAge / 2)
			defer ticker.Stop()
			for {
				select {
				case <-sweepDone:
					return
				case <-ticker.C:
					if _, err := pageSvc.SweepStale(context.Background(), cfg.Analyze.SweepMaxAge); err != nil {
						log.Error().Err(err).Msg("stale page sweep failed")
					}
				}
			}
		}()
	}

	go func() {
		addr := ":" + cfg.Port
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	close(sweepDone)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	// Let in-flight page analyses finish so their results are persisted
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := runner.Shutdown(drainCtx); err != nil {
		log.Warn().Err(err).Msg("background tasks did not drain in time")
	}

	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
