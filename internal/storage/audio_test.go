package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken()
		if len(token) != 32 {
			t.Fatalf("expected 32-char token, got %q", token)
		}
		if strings.Contains(token, "-") {
			t.Fatalf("token should not contain dashes: %q", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}

func TestSaveBytes(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("init: %v", err)
	}

	path, err := SaveBytes("recording_abc.mp3", []byte("audio"))
	if err != nil {
		t.Fatalf("SaveBytes returned error: %v", err)
	}
	if path != filepath.Join(dir, "recording_abc.mp3") {
		t.Errorf("unexpected path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("content mismatch: %q", data)
	}
}

func TestSaveBytesStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("init: %v", err)
	}

	path, err := SaveBytes("../escape/../../evil.mp3", []byte("x"))
	if err != nil {
		t.Fatalf("SaveBytes returned error: %v", err)
	}
	if path != filepath.Join(dir, "evil.mp3") {
		t.Errorf("filename not confined to the static directory: %s", path)
	}
}

func TestPublicURL(t *testing.T) {
	cases := []struct {
		hostURL  string
		filename string
		want     string
	}{
		{"http://example.com", "response_1.mp3", "http://example.com/static/response_1.mp3"},
		{"http://example.com/", "response_1.mp3", "http://example.com/static/response_1.mp3"},
		{"https://bridge.io", "sub/response_2.mp3", "https://bridge.io/static/response_2.mp3"},
	}
	for _, tc := range cases {
		if got := PublicURL(tc.hostURL, tc.filename); got != tc.want {
			t.Errorf("PublicURL(%q, %q) = %q, want %q", tc.hostURL, tc.filename, got, tc.want)
		}
	}
}
