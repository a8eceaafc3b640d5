package stt

import "context"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe fetches the remote recording, keeps a local copy under the
	// public static directory as filename, and returns the transcription.
	Transcribe(ctx context.Context, audioURL, filename string) (*Result, error)

	// Name returns the name of the provider (e.g., "openai")
	Name() string
}
