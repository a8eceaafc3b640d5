package main

import (
	"log"
	"os"
	"voicebridge/internal/ai"
	"voicebridge/internal/api"
	"voicebridge/internal/config"
	"voicebridge/internal/db"
	"voicebridge/internal/repository"
	"voicebridge/internal/storage"
	"voicebridge/internal/stt"
	"voicebridge/internal/tts"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Make sure the public artifact directory exists
	if err := storage.Init(cfg.StaticDir); err != nil {
		log.Fatalf("Failed to prepare static directory: %v", err)
	}

	// Initialize database if DATABASE_URL is provided
	if cfg.DatabaseURL != "" {
		log.Printf("Initializing database connection with DATABASE_URL...")
		if err := db.Init(cfg.DatabaseURL); err != nil {
			log.Printf("Warning: Failed to initialize database: %v. Continuing without database.", err)
		} else {
			repo := repository.NewPostgresRepository()
			api.InitCallRepository(repo)
			log.Println("Database and call repository initialized successfully")
		}
	} else {
		log.Println("DATABASE_URL not set, running without database (in-memory call log only)")
	}

	// Build the pipeline clients
	transcriber, err := stt.CreateProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to create STT provider: %v", err)
	}
	log.Printf("STT provider initialized: %s", transcriber.Name())

	synthesizer, err := tts.CreateProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to create TTS provider: %v", err)
	}
	log.Printf("TTS provider initialized: %s", synthesizer.Name())

	responder := ai.NewClient(cfg.OpenAIKey, cfg.CompletionModel)

	r := gin.Default()

	// Generated audio artifacts are served publicly for playback
	r.Static("/static", cfg.StaticDir)

	h := api.NewHandler(cfg, transcriber, responder, synthesizer)
	api.RegisterRoutes(r, h)

	log.Printf("Voicebridge running on :%s (HOST_URL=%s)", cfg.Port, cfg.HostURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
