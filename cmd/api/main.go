package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gomail/gomail"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"dataquad/recruitops/internal/config"
	"dataquad/recruitops/internal/handlers"
	"dataquad/recruitops/internal/repositories"
	"dataquad/recruitops/internal/services"
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
	reqRepo := repositories.NewRequirementRepository(db)
	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor(storageService)

	dialer := gomail.NewDialer(
		cfg.Mail.Host,
		cfg.Mail.Port,
		cfg.Mail.Username,
		cfg.Mail.Password,
	)
	mailer := services.NewMailerService(userRepo, services.NewGomailTransport(dialer))
	log.Println("✅ Services initialized successfully")

	// Initialize notification worker
	notifier := services.NewNotifyWorker(reqRepo, mailer, cfg.Notifier.Concurrency, cfg.Notifier.QueueSize)
	ctx := context.Background()
	notifier.Start(ctx)
	log.Println("✅ Notification worker started successfully")

	reqService := services.NewRequirementService(reqRepo, userRepo, reportRepo, extractor, notifier)
	reportService := services.NewReportService(reqRepo, userRepo, reportRepo)

	// Initialize Handlers
	reqHandler := handlers.NewRequirementHandler(reqService)
	reportHandler := handlers.NewReportHandler(reportService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Dataquad Recruit Ops API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
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

	api.Post("/requirements", reqHandler.HandleCreate)
	api.Get("/requirements", reqHandler.HandleList)
	api.Get("/requirements/filter", reqHandler.HandleListByDateRange)
	api.Get("/requirements/:jobId", reqHandler.HandleGet)
	api.Put("/requirements/:jobId", reqHandler.HandleUpdate)
	api.Delete("/requirements/:jobId", reqHandler.HandleDelete)
	api.Put("/requirements/:jobId/status", reqHandler.HandleUpdateStatus)
	api.Put("/requirements/:jobId/recruiters", reqHandler.HandleAssignRecruiters)
	api.Get("/requirements/:jobId/recruiters", reportHandler.HandleRecruiterDetails)
	api.Get("/recruiters/:recruiterId/jobs", reqHandler.HandleJobsForRecruiter)
	api.Get("/users/:userId/requirements", reqHandler.HandleRequirementsByAssigner)
	api.Get("/users/:userId/dashboard", reportHandler.HandleCandidateReport)
	api.Get("/stats/candidates", reportHandler.HandleCandidateStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Dataquad Recruit Ops API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/requirements",
				"GET /api/v1/requirements",
				"GET /api/v1/requirements/filter",
				"GET /api/v1/requirements/:jobId",
				"PUT /api/v1/requirements/:jobId",
				"DELETE /api/v1/requirements/:jobId",
				"PUT /api/v1/requirements/:jobId/status",
				"PUT /api/v1/requirements/:jobId/recruiters",
				"GET /api/v1/requirements/:jobId/recruiters",
				"GET /api/v1/recruiters/:recruiterId/jobs",
				"GET /api/v1/users/:userId/requirements",
				"GET /api/v1/users/:userId/dashboard",
				"GET /api/v1/stats/candidates",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		notifier.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}
