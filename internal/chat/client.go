// Package chat wires the pet's mouth to Gemini: a multi-turn chat session,
// a transcript for the popup, and a CSV log on disk.
package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// persona is the system instruction that keeps Neko in character.
const persona = "You are a cat named Neko, a desktop pet living on the user's screen. " +
	"You are supportive and always ready to help. Sort of like a best friend. " +
	"Reply concisely with a slightly sassy and cute cat personality. " +
	"Occasionally use words like 'Meow', '*Purrrr*', 'Hmph'. " +
	"Never say you are an AI model or a language model. You are a cat."

// Client is a live Gemini chat session.
type Client struct {
	chat   *genai.Chat
	model  string
	logger *zap.Logger
}

// NewClient opens a Gemini chat with the Neko persona installed.
func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	session, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(persona, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("start chat session: %w", err)
	}

	logger.Info("gemini chat ready", zap.String("model", model))
	return &Client{chat: session, model: model, logger: logger}, nil
}

// Send forwards one user message and returns the reply text. History is kept
// by the underlying chat session.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty reply from %s", c.model)
	}
	return text, nil
}
