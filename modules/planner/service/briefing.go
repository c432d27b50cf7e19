package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"surfplan-api/modules/planner/entity"

	"google.golang.org/genai"
)

// Briefer turns ranked session windows into a short human-readable summary.
type Briefer interface {
	Brief(ctx context.Context, timezoneID string, windows []entity.SessionWindow) (string, error)
}

// GeminiBriefer writes the summary with the Gemini API.
type GeminiBriefer struct {
	apiKey string
	model  string
}

func NewGeminiBriefer(apiKey, model string) *GeminiBriefer {
	return &GeminiBriefer{apiKey: apiKey, model: model}
}

func (b *GeminiBriefer) Brief(ctx context.Context, timezoneID string, windows []entity.SessionWindow) (string, error) {
	if len(windows) == 0 {
		return "No surfable windows in the requested horizon. Check back after the next forecast refresh.", nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: b.buildPrompt(timezoneID, windows)},
			},
		},
	}

	temperature := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 512,
	}

	resp, err := client.Models.GenerateContent(ctx, b.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty gemini response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}

func (b *GeminiBriefer) buildPrompt(timezoneID string, windows []entity.SessionWindow) string {
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		loc = time.UTC
	}

	var sb strings.Builder
	sb.WriteString("You are a surf forecaster. Write a short, friendly briefing (3-5 sentences, plain text) ")
	sb.WriteString("summarizing these recommended surf sessions. Mention spots by name, local times, and what ")
	sb.WriteString("makes each window good or marginal. Scores are 0-100.\n\n")
	for i, w := range windows {
		fmt.Fprintf(&sb, "%d. %s (%s): %s to %s local, score %d",
			i+1, w.SpotName, w.SpotRegion,
			w.StartTime.In(loc).Format("Mon 15:04"),
			w.EndTime.In(loc).Format("15:04"),
			w.Score)
		if c := w.Hours[0].Conditions; c.WaveHeightM != nil {
			fmt.Fprintf(&sb, ", waves %.1fm", *c.WaveHeightM)
		}
		if c := w.Hours[0].Conditions; c.WindSpeedKt != nil {
			fmt.Fprintf(&sb, ", wind %.0fkt", *c.WindSpeedKt)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
