package repository

import (
	"context"
	"voicebridge/internal/model"

	"github.com/google/uuid"
)

// CallRepository defines the interface for call record data access
type CallRepository interface {
	// Create creates a new call record
	Create(ctx context.Context, rec *model.CallRecord) error

	// UpdateResult updates the pipeline result (transcript, reply, status, etc.)
	UpdateResult(ctx context.Context, rec *model.CallRecord) error

	// GetByID retrieves a call record by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.CallRecord, error)

	// ListRecent retrieves the most recently created call records
	ListRecent(ctx context.Context, limit int) ([]model.CallRecord, error)
}
