package api

import (
	"log"
	"net/http"
	"strconv"
	"voicebridge/internal/storage"
	"voicebridge/internal/utils"

	"github.com/gin-gonic/gin"
)

// getCall returns the in-memory state of a processed webhook
func getCall(c *gin.Context) {
	id := c.Param("call_id")
	if id == "" {
		utils.Error(c, http.StatusBadRequest, "call_id is required")
		return
	}

	state, ok := storage.GetCall(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "call not found")
		return
	}

	utils.Success(c, gin.H{
		"call_id":       state.ID,
		"call_sid":      state.CallSid,
		"recording_sid": state.RecordingSid,
		"status":        state.Status,
		"created_at":    state.CreatedAt,
		"transcript":    state.Transcript,
		"reply":         state.Reply,
		"audio_url":     state.AudioURL,
		"failed_stage":  state.FailedStage,
	})
}

// listCalls returns recent call records from the database
func listCalls(c *gin.Context) {
	if callRepo == nil {
		utils.Error(c, http.StatusServiceUnavailable, "call history requires a database (DATABASE_URL not configured)")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	records, err := callRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Error listing call records: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve call history")
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, rec := range records {
		item := gin.H{
			"id":         rec.ID.String(),
			"status":     rec.Status,
			"created_at": rec.CreatedAt,
		}
		if rec.CallSid != nil {
			item["call_sid"] = *rec.CallSid
		}
		if rec.Transcript != nil {
			item["transcript"] = *rec.Transcript
		}
		if rec.Reply != nil {
			item["reply"] = *rec.Reply
		}
		if rec.AudioURL != nil {
			item["audio_url"] = *rec.AudioURL
		}
		if rec.FailedStage != nil {
			item["failed_stage"] = *rec.FailedStage
		}
		items = append(items, item)
	}

	utils.Success(c, gin.H{
		"calls": items,
		"count": len(items),
	})
}
