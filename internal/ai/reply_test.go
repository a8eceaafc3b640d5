package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = srv.URL + "/v1"
	return NewClientWithConfig(clientConfig, "gpt-3.5-turbo")
}

func TestReplyTrimsFirstChoice(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Paris.  "}}]}`))
	})

	reply, err := c.Reply(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if reply != "Paris." {
		t.Errorf("expected trimmed reply %q, got %q", "Paris.", reply)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("expected a two-message conversation, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first message should be the system instruction, got role %q", gotReq.Messages[0].Role)
	}
	if gotReq.Messages[1].Content != "What is the capital of France?" {
		t.Errorf("transcript not forwarded as the user message: %q", gotReq.Messages[1].Content)
	}
	if gotReq.MaxTokens != replyMaxTokens {
		t.Errorf("expected bounded reply length %d, got %d", replyMaxTokens, gotReq.MaxTokens)
	}
}

func TestReplyAPIFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	})

	_, err := c.Reply(context.Background(), "hello")

	var cErr *CompletionError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected CompletionError, got %T: %v", err, err)
	}
	if cErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500 on the error, got %d", cErr.StatusCode)
	}
}

func TestReplyNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Reply(context.Background(), "hello")

	var cErr *CompletionError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected CompletionError, got %T: %v", err, err)
	}
}
