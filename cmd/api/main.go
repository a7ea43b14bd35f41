package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"auralearn/internal/config"
	handlers "auralearn/internal/http/handler"
	"auralearn/internal/http/middleware"
	"auralearn/internal/otel"
	"auralearn/internal/repository/memory"
	"auralearn/internal/service"
	"auralearn/internal/storage"
	"auralearn/internal/tutor"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing is optional: it degrades to a noop provider when no collector
	// is configured, so the returned shutdown is always safe to call.
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Content storage: local disk by default, MinIO when configured
	store, err := storage.New(cfg.Storage, cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// In-memory repositories: state lives for the process lifetime only
	fileRepo := memory.NewFileMemory()
	planRepo := memory.NewStudyPlanMemory()

	fileSvc := service.NewFileService(store, fileRepo)
	planSvc := service.NewStudyPlanService(planRepo)

	// Tutor responder: Gemini when an API key is set, canned replies otherwise
	var responder tutor.Responder = tutor.NewCanned()
	if cfg.Tutor.GeminiAPIKey != "" {
		gemini, err := tutor.NewGemini(ctx, cfg.Tutor)
		if err != nil {
			log.Fatalf("failed to initialize tutor: %v", err)
		}
		defer gemini.Close()
		responder = gemini
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, fileSvc, planSvc, responder, store)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
