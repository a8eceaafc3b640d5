package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
	"voicebridge/internal/db"
	"voicebridge/internal/model"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository() CallRepository {
	return &postgresRepository{
		db: db.DB,
	}
}

// Create creates a new call record
func (r *postgresRepository) Create(ctx context.Context, rec *model.CallRecord) error {
	query := `
		INSERT INTO voice_calls (
			id, call_sid, recording_sid, recording_url, duration_seconds,
			transcript, reply, audio_url, status, failed_stage, error_message,
			metadata, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	metadataJSON, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.CallSid,
		rec.RecordingSid,
		rec.RecordingURL,
		rec.DurationSeconds,
		rec.Transcript,
		rec.Reply,
		rec.AudioURL,
		rec.Status,
		rec.FailedStage,
		rec.ErrorMessage,
		metadataJSON,
		rec.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create call record: %w", err)
	}

	return nil
}

// UpdateResult updates the pipeline result of an existing call record
func (r *postgresRepository) UpdateResult(ctx context.Context, rec *model.CallRecord) error {
	query := `
		UPDATE voice_calls
		SET
			transcript = COALESCE($1, transcript),
			reply = COALESCE($2, reply),
			audio_url = COALESCE($3, audio_url),
			status = COALESCE($4, status),
			failed_stage = COALESCE($5, failed_stage),
			error_message = COALESCE($6, error_message),
			duration_seconds = COALESCE($7, duration_seconds)
		WHERE id = $8
	`

	var status *string
	if rec.Status != "" {
		status = &rec.Status
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.Transcript,
		rec.Reply,
		rec.AudioURL,
		status,
		rec.FailedStage,
		rec.ErrorMessage,
		rec.DurationSeconds,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update call record: %w", err)
	}

	return nil
}

// GetByID retrieves a call record by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CallRecord, error) {
	query := `
		SELECT
			id, call_sid, recording_sid, recording_url, duration_seconds,
			transcript, reply, audio_url, status, failed_stage, error_message,
			metadata, created_at
		FROM voice_calls
		WHERE id = $1
	`

	rec, err := scanCallRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("call record not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call record: %w", err)
	}
	return rec, nil
}

// ListRecent retrieves the most recently created call records
func (r *postgresRepository) ListRecent(ctx context.Context, limit int) ([]model.CallRecord, error) {
	query := `
		SELECT
			id, call_sid, recording_sid, recording_url, duration_seconds,
			transcript, reply, audio_url, status, failed_stage, error_message,
			metadata, created_at
		FROM voice_calls
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query call records: %w", err)
	}
	defer rows.Close()

	var records []model.CallRecord
	for rows.Next() {
		rec, err := scanCallRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call record: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCallRecord(row rowScanner) (*model.CallRecord, error) {
	var rec model.CallRecord
	var metadataJSON []byte
	var createdAt time.Time

	err := row.Scan(
		&rec.ID,
		&rec.CallSid,
		&rec.RecordingSid,
		&rec.RecordingURL,
		&rec.DurationSeconds,
		&rec.Transcript,
		&rec.Reply,
		&rec.AudioURL,
		&rec.Status,
		&rec.FailedStage,
		&rec.ErrorMessage,
		&metadataJSON,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt = createdAt

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	} else {
		rec.Metadata = make(map[string]interface{})
	}

	return &rec, nil
}
