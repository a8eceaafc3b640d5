package tts

import (
	"fmt"
	"log"
	"strings"
	"voicebridge/internal/config"
)

// CreateProvider creates a TTS provider based on the loaded configuration
func CreateProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(cfg.TTSProvider)

	if providerName == "" {
		providerName = "google"
		log.Printf("[TTS Factory] TTS_PROVIDER not set, defaulting to 'google'")
	}

	switch providerName {
	case "google":
		log.Printf("[TTS Factory] Creating Google Translate TTS provider")
		return NewGoogleProvider(cfg.HostURL), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai TTS provider")
		}
		log.Printf("[TTS Factory] Creating OpenAI speech provider")
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.HostURL), nil
	default:
		return nil, fmt.Errorf("unsupported TTS provider: %s. Supported: google, openai", providerName)
	}
}
