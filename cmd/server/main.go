package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neolalia/wordforge/internal/catalog"
	"github.com/neolalia/wordforge/internal/config"
	"github.com/neolalia/wordforge/internal/handler"
	"github.com/neolalia/wordforge/internal/limiter"
	"github.com/neolalia/wordforge/internal/llm"
	"github.com/neolalia/wordforge/internal/middleware"
	"github.com/neolalia/wordforge/internal/storage"
	"github.com/neolalia/wordforge/internal/word"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required; set it in the environment or a .env file")
	}

	languages := catalog.Default()

	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.Temperature)
	log.Printf("Using OpenAI model %s (temperature %.2f)", cfg.Model, cfg.Temperature)

	service := word.NewService(client)

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(service)
	languagesHandler := handler.NewLanguagesHandler(languages)
	examplesHandler := handler.NewExamplesHandler()

	// Setup router
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Static single-page UI
	r.StaticFile("/", "./web/index.html")

	// API routes
	api := r.Group("/api")
	{
		api.GET("/languages", languagesHandler.List)
		api.GET("/languages/:name/pairs", languagesHandler.SuggestedPairs)
		api.GET("/examples", examplesHandler.List)

		generate := api.Group("")
		if cfg.RedisURL != "" {
			redisStore, err := storage.NewRedisStorage(cfg.RedisURL)
			if err != nil {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			defer redisStore.Close()

			rateLimiter := limiter.New(redisStore, limiter.Config{
				Limit:  cfg.GenerateLimit,
				Window: cfg.GenerateWindow,
			})
			generate.Use(middleware.RateLimit(rateLimiter))
			log.Printf("Rate limiting /api/words at %d requests per %s", cfg.GenerateLimit, cfg.GenerateWindow)
		}
		generate.POST("/words", generateHandler.Generate)
	}

	log.Printf("Word forge starting on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
