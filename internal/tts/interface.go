package tts

import "context"

// Provider defines the interface for text-to-speech providers
type Provider interface {
	// Synthesize renders text as speech, stores the audio under the public
	// static directory as filename, and returns the public playback URL.
	Synthesize(ctx context.Context, text, filename string) (string, error)

	// Name returns the name of the provider (e.g., "google", "openai")
	Name() string
}
