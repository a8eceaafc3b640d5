package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port               string
	HostURL            string
	OpenAIKey          string
	STTProvider        string
	TTSProvider        string
	TranscriptionModel string
	CompletionModel    string
	StaticDir          string
	DatabaseURL        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		HostURL:            getEnv("HOST_URL", "http://localhost:8000"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		STTProvider:        getEnv("STT_PROVIDER", "openai"),
		TTSProvider:        getEnv("TTS_PROVIDER", "google"),
		TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
		CompletionModel:    getEnv("OPENAI_COMPLETION_MODEL", "gpt-3.5-turbo"),
		StaticDir:          getEnv("STATIC_DIR", "static"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
	}

	// Validate required environment variables
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required. Please set it as environment variable:\n  Linux/Mac: export OPENAI_API_KEY=\"your_key\"\n  Windows PowerShell: $env:OPENAI_API_KEY=\"your_key\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
