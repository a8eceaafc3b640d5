package api

import (
	"context"
	"log"
	"strings"
	"time"
	"voicebridge/internal/ai"
	"voicebridge/internal/config"
	"voicebridge/internal/storage"
	"voicebridge/internal/stt"
	"voicebridge/internal/tts"
	"voicebridge/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler carries the pipeline clients for the voice webhook endpoints.
type Handler struct {
	cfg         *config.Config
	transcriber stt.Provider
	responder   ai.Responder
	synthesizer tts.Provider
}

// NewHandler creates the webhook handler
func NewHandler(cfg *config.Config, transcriber stt.Provider, responder ai.Responder, synthesizer tts.Provider) *Handler {
	return &Handler{
		cfg:         cfg,
		transcriber: transcriber,
		responder:   responder,
		synthesizer: synthesizer,
	}
}

// voiceWebhook handles the incoming-call notification. It cannot fail: the
// response always prompts the caller and records their question.
func (h *Handler) voiceWebhook(c *gin.Context) {
	actionURL := strings.TrimRight(h.cfg.HostURL, "/") + "/process_recording"
	utils.XML(c, answerCallDocument(actionURL))
}

// processRecording receives the recording details and runs the pipeline:
// download + transcribe, complete, synthesize, then answer with a play
// directive. Each stage short-circuits to a spoken apology on failure.
func (h *Handler) processRecording(c *gin.Context) {
	recordingURL := c.PostForm("RecordingUrl")
	recordingSid := c.PostForm("RecordingSid")
	duration := c.PostForm("RecordingDuration")
	callSid := c.PostForm("CallSid")

	token := storage.NewToken()
	storage.SaveCall(&storage.CallState{
		ID:           token,
		CallSid:      callSid,
		RecordingSid: recordingSid,
		RecordingURL: recordingURL,
		Duration:     duration,
		Status:       "received",
		CreatedAt:    time.Now().Format(time.RFC3339),
	})

	if recordingURL == "" {
		log.Printf("[Processor] No recording reference (call: %s)", callSid)
		h.finishFailed(c, token, "validate", "missing recording reference", msgMissingRecording)
		return
	}

	ctx := c.Request.Context()

	storage.UpdateStatus(token, "transcribing")
	downloadName := "recording_" + token + ".mp3"
	transcript, err := h.transcribe(ctx, recordingURL, downloadName)
	if err != nil {
		log.Printf("[Processor] Transcription error (call: %s): %v", callSid, err)
		h.finishFailed(c, token, "transcription", err.Error(), msgTranscriptionFailed)
		return
	}
	storage.UpdateTranscript(token, transcript)
	log.Printf("[Processor] Transcript (call: %s): %q", callSid, transcript)

	// The transcript is forwarded even when it is empty; the completion API
	// decides what a silent question deserves.
	storage.UpdateStatus(token, "answering")
	reply, err := h.responder.Reply(ctx, transcript)
	if err != nil {
		log.Printf("[Processor] Completion error (call: %s): %v", callSid, err)
		h.finishFailed(c, token, "completion", err.Error(), msgCompletionFailed)
		return
	}

	storage.UpdateStatus(token, "synthesizing")
	outName := "response_" + token + ".mp3"
	audioURL, err := h.synthesizer.Synthesize(ctx, reply, outName)
	if err != nil {
		log.Printf("[Processor] Synthesis error (call: %s): %v", callSid, err)
		h.finishFailed(c, token, "synthesis", err.Error(), msgSynthesisFailed)
		return
	}

	storage.UpdateReply(token, reply, audioURL)
	storage.UpdateStatus(token, "completed")
	syncCallToDatabase(token)

	log.Printf("[Processor] Call answered (call: %s), playback at %s", callSid, audioURL)
	utils.XML(c, playReplyDocument(audioURL))
}

// transcribe runs the primary attempt against the ".mp3" variant of the
// recording URL and retries the unmodified URL when the transcript comes
// back empty.
func (h *Handler) transcribe(ctx context.Context, recordingURL, filename string) (string, error) {
	result, err := h.transcriber.Transcribe(ctx, recordingURL+".mp3", filename)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result.Text) != "" {
		return result.Text, nil
	}

	log.Printf("[Processor] Empty transcript for .mp3 variant, retrying original URL")
	result, err = h.transcriber.Transcribe(ctx, recordingURL, filename)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// finishFailed records the failed stage, syncs the call log and answers with
// the stage's apology line. Internal detail never reaches the caller.
func (h *Handler) finishFailed(c *gin.Context, token, stage, detail, spokenLine string) {
	storage.UpdateError(token, stage, detail)
	storage.UpdateStatus(token, "failed")
	syncCallToDatabase(token)
	utils.XML(c, apologyDocument(spokenLine))
}
