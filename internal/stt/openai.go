package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
	"voicebridge/internal/storage"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements STT using the OpenAI audio transcription API
type OpenAIProvider struct {
	client     *openai.Client
	httpClient *http.Client
	model      string
}

// NewOpenAIProvider creates a new OpenAI Whisper provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIProviderWithConfig creates a provider with an explicit client
// configuration, used to point at substitute endpoints in tests.
func NewOpenAIProviderWithConfig(clientConfig openai.ClientConfig, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(clientConfig),
		httpClient: &http.Client{Timeout: 90 * time.Second},
		model:      model,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Transcribe downloads the recording, writes it under the static directory
// and sends it to the transcription API.
func (p *OpenAIProvider) Transcribe(ctx context.Context, audioURL, filename string) (*Result, error) {
	audio, err := p.download(ctx, audioURL)
	if err != nil {
		return nil, err
	}

	savedPath, err := storage.SaveBytes(filename, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to save recording copy: %w", err)
	}
	log.Printf("[Whisper STT] Saved recording %s (%d bytes)", savedPath, len(audio))

	startTime := time.Now()
	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.model,
		FilePath: savedPath,
	})
	if err != nil {
		return nil, wrapTranscriptionErr(err)
	}

	log.Printf("[Whisper STT] Transcription successful: length=%d, duration=%v",
		len(resp.Text), time.Since(startTime))

	return &Result{
		Text:      resp.Text,
		Provider:  p.Name(),
		SavedPath: savedPath,
	}, nil
}

func (p *OpenAIProvider) download(ctx context.Context, audioURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, &DownloadError{URL: audioURL, Err: err}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: audioURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadError{URL: audioURL, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: audioURL, Err: err}
	}
	return data, nil
}

// wrapTranscriptionErr keeps the API status code and body on the error so the
// caller can log them without parsing strings.
func wrapTranscriptionErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TranscriptionError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TranscriptionError{StatusCode: reqErr.HTTPStatusCode, Body: fmt.Sprint(reqErr.Err), Err: err}
	}
	return &TranscriptionError{Err: err}
}
