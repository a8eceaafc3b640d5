package storage

import "sync"

type CallState struct {
	ID           string
	CallSid      string
	RecordingSid string
	RecordingURL string
	Duration     string // provider-reported seconds, advisory
	Status       string // received, transcribing, answering, synthesizing, completed, failed
	Transcript   string
	Reply        string
	AudioURL     string
	FailedStage  string
	Error        string
	CreatedAt    string
}

var (
	calls = make(map[string]*CallState)
	mu    sync.Mutex
)

// SaveCall stores the initial state for a processed webhook.
func SaveCall(state *CallState) {
	mu.Lock()
	defer mu.Unlock()
	calls[state.ID] = state
}

// GetCall retrieves a call state by ID
func GetCall(id string) (*CallState, bool) {
	mu.Lock()
	defer mu.Unlock()
	state, ok := calls[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	stateCopy := *state
	return &stateCopy, true
}

// UpdateStatus updates the status of a call
func UpdateStatus(id, status string) {
	mu.Lock()
	defer mu.Unlock()
	if state, ok := calls[id]; ok {
		state.Status = status
	}
}

// UpdateTranscript stores the transcription result
func UpdateTranscript(id, transcript string) {
	mu.Lock()
	defer mu.Unlock()
	if state, ok := calls[id]; ok {
		state.Transcript = transcript
	}
}

// UpdateReply stores the completion reply and its playback URL
func UpdateReply(id, reply, audioURL string) {
	mu.Lock()
	defer mu.Unlock()
	if state, ok := calls[id]; ok {
		state.Reply = reply
		state.AudioURL = audioURL
	}
}

// UpdateError records which pipeline stage failed and why
func UpdateError(id, stage, errorMsg string) {
	mu.Lock()
	defer mu.Unlock()
	if state, ok := calls[id]; ok {
		state.FailedStage = stage
		state.Error = errorMsg
	}
}
