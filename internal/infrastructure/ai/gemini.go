package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini adapts the Google GenAI client to the orchestrator's
// TextGenerator contract.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client}, nil
}

// GenerateContent sends the prompt to the given model and returns the
// joined textual parts of the first response.
func (g *Gemini) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini client is not initialized")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return "", errors.New("model name is required")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return out, nil
}
