package model

import (
	"time"

	"github.com/google/uuid"
)

// CallRecord represents one processed voice-call webhook
type CallRecord struct {
	ID              uuid.UUID              `json:"id"`
	CallSid         *string                `json:"call_sid,omitempty"`
	RecordingSid    *string                `json:"recording_sid,omitempty"`
	RecordingURL    string                 `json:"recording_url"`
	DurationSeconds *int                   `json:"duration_seconds,omitempty"`
	Transcript      *string                `json:"transcript,omitempty"`
	Reply           *string                `json:"reply,omitempty"`
	AudioURL        *string                `json:"audio_url,omitempty"`
	Status          string                 `json:"status"`
	FailedStage     *string                `json:"failed_stage,omitempty"`
	ErrorMessage    *string                `json:"error_message,omitempty"`
	Metadata        map[string]interface{} `json:"metadata"`
	CreatedAt       time.Time              `json:"created_at"`
}
