// Package ai talks to the external AI coaching partner.
package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an AI training partner helping users improve their skills. Provide constructive feedback and guidance."

const fallbackReply = "Sorry, I could not generate a response."

// OpenAIClient implements ports.CoachClient against the OpenAI chat
// completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client for the given API key and model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Feedback requests coaching feedback for the user's message. The caller owns
// the deadline on ctx; a cancelled context surfaces as an error here.
func (c *OpenAIClient) Feedback(ctx context.Context, message string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}
