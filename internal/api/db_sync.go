package api

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"
	"voicebridge/internal/model"
	"voicebridge/internal/storage"

	"github.com/google/uuid"
)

// callIDToDBUUIDMap stores the mapping between in-memory call tokens and DB UUIDs
var callIDToDBUUIDMap = make(map[string]uuid.UUID)
var mapMu sync.Mutex

// syncCallToDatabase syncs the in-memory call state to the database if a
// repository is available. Best effort: a missing or failing database never
// affects the webhook response.
func syncCallToDatabase(callID string) uuid.UUID {
	if callRepo == nil {
		return uuid.Nil // No database, skip
	}

	state, ok := storage.GetCall(callID)
	if !ok {
		log.Printf("Warning: call %s not found in storage, skipping database sync", callID)
		return uuid.Nil
	}

	ctx := context.Background()

	mapMu.Lock()
	dbUUID, exists := callIDToDBUUIDMap[callID]
	mapMu.Unlock()

	if exists {
		updateReq := buildCallRecord(dbUUID, state)
		if err := callRepo.UpdateResult(ctx, updateReq); err != nil {
			log.Printf("Warning: failed to update call %s in database: %v", callID, err)
			return uuid.Nil
		}
		return dbUUID
	}

	rec := buildCallRecord(uuid.New(), state)
	rec.Metadata = map[string]interface{}{
		"call_token": callID,
	}
	rec.CreatedAt = time.Now()
	if state.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, state.CreatedAt); err == nil {
			rec.CreatedAt = t
		}
	}

	if err := callRepo.Create(ctx, rec); err != nil {
		log.Printf("Error: failed to create call %s in database: %v", callID, err)
		return uuid.Nil
	}

	mapMu.Lock()
	callIDToDBUUIDMap[callID] = rec.ID
	mapMu.Unlock()

	log.Printf("Synced call %s to database with UUID: %s", callID, rec.ID.String())
	return rec.ID
}

func buildCallRecord(id uuid.UUID, state *storage.CallState) *model.CallRecord {
	rec := &model.CallRecord{
		ID:           id,
		RecordingURL: state.RecordingURL,
		Status:       state.Status,
	}

	if state.CallSid != "" {
		rec.CallSid = &state.CallSid
	}
	if state.RecordingSid != "" {
		rec.RecordingSid = &state.RecordingSid
	}
	if state.Duration != "" {
		if secs, err := strconv.Atoi(state.Duration); err == nil {
			rec.DurationSeconds = &secs
		}
	}
	if state.Transcript != "" {
		rec.Transcript = &state.Transcript
	}
	if state.Reply != "" {
		rec.Reply = &state.Reply
	}
	if state.AudioURL != "" {
		rec.AudioURL = &state.AudioURL
	}
	if state.FailedStage != "" {
		rec.FailedStage = &state.FailedStage
	}
	if state.Error != "" {
		rec.ErrorMessage = &state.Error
	}

	return rec
}
