package ai

import (
	"context"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// systemInstruction establishes the brief-assistant persona for callers.
const systemInstruction = "You are a helpful assistant answering callers briefly."

// replyMaxTokens bounds the spoken reply length.
const replyMaxTokens = 250

// Responder produces a spoken-reply text for a caller transcript.
type Responder interface {
	Reply(ctx context.Context, transcript string) (string, error)
}

// Client implements Responder using the OpenAI chat completion API.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a completion client
func NewClient(apiKey, model string) *Client {
	return NewClientWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewClientWithConfig creates a client with an explicit client configuration,
// used to point at substitute endpoints in tests.
func NewClientWithConfig(clientConfig openai.ClientConfig, model string) *Client {
	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Reply sends the transcript as the user message and returns the trimmed
// content of the first choice.
func (c *Client) Reply(ctx context.Context, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: transcript,
			},
		},
		MaxTokens: replyMaxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapCompletionErr(err)
	}

	if len(resp.Choices) == 0 {
		return "", &CompletionError{Body: "no choices returned"}
	}

	log.Printf("[Completion] Usage - prompt tokens: %d, completion tokens: %d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
