package main

import (
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

	"alfredoptarigan/resume-extractor/internal/config"
	"alfredoptarigan/resume-extractor/internal/extraction"
	"alfredoptarigan/resume-extractor/internal/handlers"
	"alfredoptarigan/resume-extractor/internal/repositories"
	"alfredoptarigan/resume-extractor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	headings, err := extraction.HeadingsFor(cfg.Extraction.SectionVocabulary)
	if err != nil {
		log.Fatalf("❌ Invalid extraction config: %v", err)
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initializes repositories
	studentRepo := repositories.NewStudentRepository(db)
	documentRepo := repositories.NewStudentDocumentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Load the entity model once; every request shares it
	recognizer, err := extraction.DefaultRecognizer()
	if err != nil {
		log.Fatalf("❌ Failed to load entity model: %v", err)
	}
	extractor := extraction.NewExtractor(recognizer, extraction.NewSegmenter(headings))
	log.Printf("✅ Extractor initialized (%s section vocabulary)\n", cfg.Extraction.SectionVocabulary)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeService := services.NewResumeService(
		studentRepo,
		services.NewDocumentParserService(),
		extractor,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		resumeService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	extractHandler := handlers.NewExtractHandler(extractor)
	studentHandler := handlers.NewStudentHandler(studentRepo, documentRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Extractor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Upload form posts here directly
	app.Post("/upload_resume", uploadHandler.HandleUploadResume)

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload_resume", uploadHandler.HandleUploadResume)
	api.Post("/extract", extractHandler.HandleExtract)
	api.Get("/students", studentHandler.HandleListStudents)
	api.Post("/students", studentHandler.HandleSaveStudent)
	api.Get("/students/:id", studentHandler.HandleGetStudent)
	api.Get("/students/:id/documents", studentHandler.HandleListDocuments)
	api.Patch("/students/:id/hiring_status", studentHandler.HandleUpdateHiringStatus)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Extractor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /upload_resume",
				"POST /api/v1/upload_resume",
				"POST /api/v1/extract",
				"GET /api/v1/students",
				"POST /api/v1/students",
				"GET /api/v1/students/:id",
				"GET /api/v1/students/:id/documents",
				"PATCH /api/v1/students/:id/hiring_status",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
