package stt

// Result represents the result of a speech-to-text transcription
type Result struct {
	Text      string // The transcribed text, may be empty when no speech was recognized
	Provider  string // The provider used (e.g., "openai")
	SavedPath string // Local copy of the downloaded recording
}
