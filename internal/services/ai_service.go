package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// AIService is a thin passthrough to the Gemini API. It never interprets
// prompts or replies beyond returning the model's text.
type AIService struct {
	client *genai.Client
	model  string
}

func NewAIService(ctx context.Context, apiKey, model string) (*AIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}
	return &AIService{client: client, model: model}, nil
}

// Generate sends the prompt and returns the model's raw text reply.
func (s *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("ai: generate: %w", err)
	}
	return resp.Text(), nil
}
