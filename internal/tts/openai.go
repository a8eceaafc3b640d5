package tts

import (
	"context"
	"fmt"
	"io"
	"log"
	"voicebridge/internal/storage"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements TTS using the OpenAI speech API
type OpenAIProvider struct {
	client  *openai.Client
	hostURL string
}

// NewOpenAIProvider creates a new OpenAI speech provider
func NewOpenAIProvider(apiKey, hostURL string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(openai.DefaultConfig(apiKey), hostURL)
}

// NewOpenAIProviderWithConfig creates a provider with an explicit client
// configuration, used to point at substitute endpoints in tests.
func NewOpenAIProviderWithConfig(clientConfig openai.ClientConfig, hostURL string) *OpenAIProvider {
	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		hostURL: hostURL,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Synthesize renders text with the speech API and stores the MP3 artifact.
func (p *OpenAIProvider) Synthesize(ctx context.Context, text, filename string) (string, error) {
	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.VoiceAlloy,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return "", &SynthesisError{Provider: p.Name(), Err: err}
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return "", &SynthesisError{Provider: p.Name(), Err: fmt.Errorf("failed to read speech response: %w", err)}
	}

	savedPath, err := storage.SaveBytes(filename, data)
	if err != nil {
		return "", &SynthesisError{Provider: p.Name(), Err: err}
	}
	log.Printf("[OpenAI TTS] Saved reply audio %s (%d bytes)", savedPath, len(data))

	return storage.PublicURL(p.hostURL, filename), nil
}
