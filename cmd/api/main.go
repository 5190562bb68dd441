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
	"golang.org/x/text/language"

	"aitrustyou/outfit-recommender/internal/config"
	"aitrustyou/outfit-recommender/internal/handlers"
	"aitrustyou/outfit-recommender/internal/i18n"
	"aitrustyou/outfit-recommender/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	defaultTag, ok := i18n.ParseTag(cfg.Locale.Default)
	if !ok {
		log.Printf("⚠️  Unsupported DEFAULT_LOCALE %q, falling back to es", cfg.Locale.Default)
		defaultTag = language.Spanish
	}

	// Initialize services
	recommender := services.NewRecommenderService(cfg.Recommender.URL, cfg.Recommender.Timeout)
	loader := services.NewGarmentLoader(cfg.Upload.MaxFileSize)
	log.Printf("✅ Recommender client targeting %s (timeout %s)", cfg.Recommender.URL, cfg.Recommender.Timeout)

	// Initialize handlers
	recommendHandler := handlers.NewRecommendHandler(
		recommender,
		loader,
		defaultTag,
	)
	pageHandler := handlers.NewPageHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Outfit Recommender",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Recommender.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Upload.MaxBodySize),
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language",
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

	api.Post("/recommend", recommendHandler.HandleRecommend)

	app.Get("/", pageHandler.HandleIndex)

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
	log.Printf("📖 Upload form: http://localhost%s\n", addr)

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
