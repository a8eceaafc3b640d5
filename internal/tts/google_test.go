package tts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"voicebridge/internal/storage"
)

func TestGoogleProviderSynthesize(t *testing.T) {
	dir := t.TempDir()
	if err := storage.Init(dir); err != nil {
		t.Fatalf("storage init: %v", err)
	}

	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Write([]byte("MP3"))
	}))
	defer srv.Close()

	p := NewGoogleProviderWithEndpoint("http://example.com/", srv.URL)

	audioURL, err := p.Synthesize(context.Background(), "Paris.", "response_test.mp3")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if audioURL != "http://example.com/static/response_test.mp3" {
		t.Errorf("unexpected public URL: %s", audioURL)
	}
	if len(queries) != 1 || queries[0] != "Paris." {
		t.Errorf("unexpected synthesis queries: %v", queries)
	}

	data, err := os.ReadFile(filepath.Join(dir, "response_test.mp3"))
	if err != nil {
		t.Fatalf("artifact unreadable: %v", err)
	}
	if string(data) != "MP3" {
		t.Errorf("artifact content mismatch: %q", data)
	}
}

func TestGoogleProviderChunksLongText(t *testing.T) {
	if err := storage.Init(t.TempDir()); err != nil {
		t.Fatalf("storage init: %v", err)
	}

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("X"))
	}))
	defer srv.Close()

	p := NewGoogleProviderWithEndpoint("http://example.com", srv.URL)

	long := strings.Repeat("longword ", 60) // well past one chunk
	if _, err := p.Synthesize(context.Background(), long, "response_long.mp3"); err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if requests < 2 {
		t.Errorf("expected long text to be fetched in multiple chunks, got %d request(s)", requests)
	}
}

func TestGoogleProviderBackendFailure(t *testing.T) {
	if err := storage.Init(t.TempDir()); err != nil {
		t.Fatalf("storage init: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewGoogleProviderWithEndpoint("http://example.com", srv.URL)

	_, err := p.Synthesize(context.Background(), "hello", "response_fail.mp3")

	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Fatalf("expected SynthesisError, got %T: %v", err, err)
	}
}

func TestGoogleProviderEmptyText(t *testing.T) {
	p := NewGoogleProvider("http://example.com")

	_, err := p.Synthesize(context.Background(), "   ", "response_empty.mp3")

	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Fatalf("expected SynthesisError for empty text, got %T: %v", err, err)
	}
}

func TestSplitChunks(t *testing.T) {
	chunks := splitChunks("one two three", 8)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %v", chunks)
	}
	if chunks[0] != "one two" || chunks[1] != "three" {
		t.Errorf("unexpected chunking: %v", chunks)
	}

	for _, chunk := range splitChunks(strings.Repeat("word ", 100), maxChunkRunes) {
		if n := len([]rune(chunk)); n > maxChunkRunes {
			t.Errorf("chunk exceeds limit: %d runes", n)
		}
	}

	// A single oversized word still becomes a chunk rather than being dropped.
	oversized := strings.Repeat("a", maxChunkRunes+10)
	chunks = splitChunks(oversized, maxChunkRunes)
	if len(chunks) != 1 || chunks[0] != oversized {
		t.Errorf("oversized word mishandled: %d chunks", len(chunks))
	}
}
