package ai

import (
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// CompletionError indicates the chat completion API failed to produce a reply.
type CompletionError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion failed (status %d): %s", e.StatusCode, e.Body)
	}
	if e.Body != "" {
		return fmt.Sprintf("completion failed: %s", e.Body)
	}
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

func wrapCompletionErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &CompletionError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &CompletionError{StatusCode: reqErr.HTTPStatusCode, Body: fmt.Sprint(reqErr.Err), Err: err}
	}
	return &CompletionError{Err: err}
}
