package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/swapitsneil/ai-job-tracker/internal/config"
	"github.com/swapitsneil/ai-job-tracker/internal/events"
	"github.com/swapitsneil/ai-job-tracker/internal/handlers"
	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/repositories"
	"github.com/swapitsneil/ai-job-tracker/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	appRepo := repositories.NewApplicationRepository(db)
	digestRepo := repositories.NewDigestRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	clock := services.NewSystemClock()
	insightService := services.NewInsightService(appRepo, clock)
	mailer := services.NewRestyMailer(cfg.Mail.APIURL, cfg.Mail.APIKey, cfg.Mail.From)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini advisor (optional)
	var advisorService services.AdvisorService
	if cfg.Gemini.APIKey != "" {
		advisorService, err = services.NewAdvisorService(cfg.Gemini.APIKey, cfg.Digest.RetryMaxAttempts)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini advisor: %v", err)
		}
		log.Println("✅ Gemini advisor initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, advice endpoint disabled")
	}

	// Initialize digest worker
	worker := services.NewDigestWorker(
		digestRepo,
		insightService,
		mailer,
		cfg.Digest.Concurrency,
		cfg.Digest.RetryMaxAttempts,
		cfg.Digest.PollInterval,
	)
	log.Println("✅ Digest worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)

	// Wire lifecycle event subscribers
	dispatcher := events.NewDispatcher()
	journal := func(_ context.Context, event events.Event) {
		log.Printf("📣 %s: application %d (%s at %s)\n",
			event.Kind, event.Application.ID, event.Application.Role, event.Application.Company)
	}
	dispatcher.Subscribe(events.ApplicationCreated, journal)
	dispatcher.Subscribe(events.ApplicationUpdated, journal)
	dispatcher.Subscribe(events.ApplicationStatusChanged, journal)
	dispatcher.Subscribe(events.ApplicationDeleted, journal)
	dispatcher.Subscribe(events.ApplicationStatusChanged, func(_ context.Context, event events.Event) {
		if event.Application.Status == models.StatusOffer {
			log.Printf("🎉 Offer received from %s!\n", event.Application.Company)
		}
	})
	log.Println("✅ Event subscribers wired")

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(appRepo, dispatcher)
	insightHandler := handlers.NewInsightHandler(insightService, advisorService)
	digestHandler := handlers.NewDigestHandler(digestRepo, worker, cfg.Digest.Recipient)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Job Tracker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Application CRUD
	api.Post("/applications", applicationHandler.HandleCreate)
	api.Get("/applications", applicationHandler.HandleList)
	api.Get("/applications/:id", applicationHandler.HandleGet)
	api.Put("/applications/:id", applicationHandler.HandleUpdate)
	api.Delete("/applications/:id", applicationHandler.HandleDelete)

	// Insights
	api.Get("/insights/sources", insightHandler.HandleSourceInsights)
	api.Get("/insights/resumes", insightHandler.HandleResumeInsights)
	api.Get("/insights/response-times", insightHandler.HandleResponseTimeInsights)
	api.Get("/insights/advice", insightHandler.HandleAdvice)
	api.Get("/insights", insightHandler.HandleComprehensiveInsights)

	// Digests
	api.Post("/digests", digestHandler.HandleCreateDigest)
	api.Get("/digests/:id", digestHandler.HandleGetDigest)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Job Tracker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/applications",
				"GET /api/v1/applications",
				"GET /api/v1/applications/:id",
				"PUT /api/v1/applications/:id",
				"DELETE /api/v1/applications/:id",
				"GET /api/v1/insights",
				"GET /api/v1/insights/sources",
				"GET /api/v1/insights/resumes",
				"GET /api/v1/insights/response-times",
				"GET /api/v1/insights/advice",
				"POST /api/v1/digests",
				"GET /api/v1/digests/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
