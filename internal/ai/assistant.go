// Package ai implements the content assistant backed by Gemini.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/virally/virally-backend/internal/repository"
)

// GeminiAssistant generates content suggestions for a workspace using
// the Gemini API.
type GeminiAssistant struct {
	apiKey string
	model  string
}

// NewGeminiAssistant creates a Gemini-backed assistant. Returns nil when
// no API key is configured so callers can treat the assistant as
// optional.
func NewGeminiAssistant(apiKey, model string) *GeminiAssistant {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiAssistant{
		apiKey: apiKey,
		model:  model,
	}
}

// Reply answers a user prompt with the workspace niche and recent
// conversation as context.
func (a *GeminiAssistant) Reply(ctx context.Context, workspace *repository.Workspace, history []*repository.ChatMessage, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(a.model)
	var temperature float32 = 0.8
	generativeModel.Temperature = &temperature

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(buildPrompt(workspace, history, prompt)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}
	return strings.TrimSpace(output), nil
}

func buildPrompt(workspace *repository.Workspace, history []*repository.ChatMessage, prompt string) string {
	var sb strings.Builder

	sb.WriteString("You are a content strategy assistant for social media creators.\n")
	sb.WriteString(fmt.Sprintf("The creator's channel is about: %s.\n", workspace.Niche))
	if workspace.Description != nil && *workspace.Description != "" {
		sb.WriteString(fmt.Sprintf("Channel description: %s\n", *workspace.Description))
	}
	sb.WriteString("Help with video ideas, hooks, scripts and posting strategy. Keep answers practical and concise.\n")

	if len(history) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, msg := range history {
			sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
		}
	}

	sb.WriteString("\nuser: ")
	sb.WriteString(prompt)
	return sb.String()
}
