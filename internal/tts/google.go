package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"voicebridge/internal/storage"
)

const defaultGoogleEndpoint = "https://translate.google.com/translate_tts"

// The translate endpoint rejects long inputs, so text is synthesized in
// word-boundary chunks and the MP3 segments are concatenated.
const maxChunkRunes = 200

// GoogleProvider implements TTS using the unauthenticated Google Translate
// speech endpoint.
type GoogleProvider struct {
	endpoint   string
	lang       string
	hostURL    string
	httpClient *http.Client
}

// NewGoogleProvider creates a new Google Translate TTS provider
func NewGoogleProvider(hostURL string) *GoogleProvider {
	return NewGoogleProviderWithEndpoint(hostURL, defaultGoogleEndpoint)
}

// NewGoogleProviderWithEndpoint creates a provider against an explicit
// endpoint, used to substitute the backend in tests.
func NewGoogleProviderWithEndpoint(hostURL, endpoint string) *GoogleProvider {
	return &GoogleProvider{
		endpoint:   endpoint,
		lang:       "en",
		hostURL:    hostURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// Synthesize fetches speech for each text chunk, writes the combined MP3
// under the static directory and returns its public URL.
func (p *GoogleProvider) Synthesize(ctx context.Context, text, filename string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &SynthesisError{Provider: p.Name(), Err: fmt.Errorf("empty text")}
	}

	chunks := splitChunks(text, maxChunkRunes)
	log.Printf("[Google TTS] Synthesizing %d chunk(s), %d chars total", len(chunks), len(text))

	var buf bytes.Buffer
	for i, chunk := range chunks {
		data, err := p.fetchChunk(ctx, chunk, i, len(chunks))
		if err != nil {
			return "", &SynthesisError{Provider: p.Name(), Err: err}
		}
		buf.Write(data)
	}

	if _, err := storage.SaveBytes(filename, buf.Bytes()); err != nil {
		return "", &SynthesisError{Provider: p.Name(), Err: err}
	}

	return storage.PublicURL(p.hostURL, filename), nil
}

func (p *GoogleProvider) fetchChunk(ctx context.Context, chunk string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", p.lang)
	q.Set("q", chunk)
	q.Set("idx", strconv.Itoa(idx))
	q.Set("total", strconv.Itoa(total))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch speech: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("speech endpoint returned status %d: %s", resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}

// splitChunks breaks text into word-boundary chunks of at most maxRunes runes.
// A single word longer than the limit becomes its own chunk.
func splitChunks(text string, maxRunes int) []string {
	words := strings.Fields(text)
	var chunks []string
	var current strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := len([]rune(word))
		if currentLen > 0 && currentLen+1+wordLen > maxRunes {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}

	if currentLen > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
