package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// staticDir is the publicly served directory for audio artifacts.
var staticDir = "static"

// Init sets the public static directory and makes sure it exists.
func Init(dir string) error {
	if dir != "" {
		staticDir = dir
	}
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return fmt.Errorf("failed to create static directory: %w", err)
	}
	return nil
}

// Dir returns the current static directory.
func Dir() string {
	return staticDir
}

// NewToken returns a random unique token used to name per-request artifacts.
func NewToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// SaveBytes writes data under the static directory and returns the local path.
func SaveBytes(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create static directory: %w", err)
	}

	dst := filepath.Join(staticDir, filepath.Base(filename))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return dst, nil
}

// PublicURL builds the playback URL for an artifact under /static.
func PublicURL(hostURL, filename string) string {
	return strings.TrimRight(hostURL, "/") + "/static/" + filepath.Base(filename)
}
