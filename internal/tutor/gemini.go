package tutor

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"auralearn/internal/config"
)

// Gemini answers chat messages with the Gemini API. Generation failures fall
// back to the canned responder so the chat endpoint never fails.
type Gemini struct {
	client   *genai.Client
	model    string
	fallback Responder
}

// NewGemini constructs a Gemini-backed responder.
func NewGemini(ctx context.Context, cfg config.TutorConfig) (*Gemini, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{
		client:   client,
		model:    cfg.GeminiModel,
		fallback: NewCanned(),
	}, nil
}

func (g *Gemini) Reply(ctx context.Context, message, userID string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return g.fallback.Reply(ctx, message, userID)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok && txt != "" {
				return Prefix + string(txt), nil
			}
		}
	}
	return g.fallback.Reply(ctx, message, userID)
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
