package main

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiGenerator asks a Gemini model for fresh events.
type geminiGenerator struct {
	client  *genai.Client
	model   string
	setting string
}

func newGeminiGenerator(ctx context.Context, apiKey, model, setting string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generative client: %w", err)
	}
	return &geminiGenerator{client: client, model: model, setting: setting}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, count int) ([]string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.9)

	resp, err := model.GenerateContent(ctx, genai.Text(eventPrompt(g.setting, count)))
	if err != nil {
		return nil, err
	}
	events := parseGenerated(getText(resp))
	if len(events) > count {
		events = events[:count]
	}
	return events, nil
}

func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

func getText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}
