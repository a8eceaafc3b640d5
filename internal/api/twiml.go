package api

import (
	"log"

	"github.com/twilio/twilio-go/twiml"
)

// Spoken lines returned to the telephony provider. Stage failures map to
// distinct apologies so a caller can tell which part of the pipeline broke
// without ever hearing internal error detail.
const (
	promptLine      = "Hello. Ask your question after the beep. When you are done, please hang up or press the pound key."
	noRecordingLine = "No recording received. Goodbye."
	closingLine     = "If you have another question, please call again. Goodbye."

	msgMissingRecording    = "Sorry, I couldn't find your recording. Goodbye."
	msgTranscriptionFailed = "Sorry, there was an error processing your audio. Please try again later. Goodbye."
	msgCompletionFailed    = "Sorry, I couldn't generate an answer at the moment. Goodbye."
	msgSynthesisFailed     = "Sorry, an error occurred preparing my reply. Goodbye."
)

// answerCallDocument prompts the caller, records their question and posts the
// recording details to actionURL.
func answerCallDocument(actionURL string) string {
	return renderVoice([]twiml.Element{
		&twiml.VoiceSay{Message: promptLine},
		&twiml.VoiceRecord{
			Action:      actionURL,
			MaxLength:   "30",
			PlayBeep:    "true",
			Trim:        "trim-silence",
			FinishOnKey: "#",
		},
		&twiml.VoiceSay{Message: noRecordingLine},
	})
}

// apologyDocument speaks a single line and lets the call end.
func apologyDocument(message string) string {
	return renderVoice([]twiml.Element{
		&twiml.VoiceSay{Message: message},
	})
}

// playReplyDocument pauses briefly so the artifact is reachable, plays the
// generated answer and invites another call.
func playReplyDocument(audioURL string) string {
	return renderVoice([]twiml.Element{
		&twiml.VoicePause{Length: "1"},
		&twiml.VoicePlay{Url: audioURL},
		&twiml.VoiceSay{Message: closingLine},
	})
}

func renderVoice(verbs []twiml.Element) string {
	doc, err := twiml.Voice(verbs)
	if err != nil {
		// The generator only fails on malformed verb trees, which are all
		// built from constants here.
		log.Printf("Error rendering voice markup: %v", err)
		return "<Response></Response>"
	}
	return doc
}
