package stt

import (
	"fmt"
	"log"
	"strings"
	"voicebridge/internal/config"
)

// CreateProvider creates an STT provider based on the loaded configuration
func CreateProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(cfg.STTProvider)

	if providerName == "" {
		providerName = "openai"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'openai'")
	}

	switch providerName {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai STT provider")
		}
		log.Printf("[STT Factory] Creating OpenAI Whisper provider (model: %s)", cfg.TranscriptionModel)
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.TranscriptionModel), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: openai", providerName)
	}
}
