package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
)

// AdvisorService asks Gemini for job-search advice grounded in a
// comprehensive insights report.
type AdvisorService interface {
	Advise(ctx context.Context, report *models.ComprehensiveReport) (string, error)
}

type advisorService struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAdvisorService(apiKey string, maxRetries int) (AdvisorService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &advisorService{
		client:        client,
		modelName:     "gemini-2.5-flash",
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}, nil
}

// Advise implements AdvisorService.
func (a *advisorService) Advise(ctx context.Context, report *models.ComprehensiveReport) (string, error) {
	prompt := a.promptBuilder.BuildCoachPrompt(report.Narrative)

	advice, err := a.generateWithRetry(ctx, prompt, 0.5)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	return strings.TrimSpace(advice), nil
}

func (a *advisorService) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func (a *advisorService) generateWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= a.maxRetries; attempt++ {
		result, err := a.generate(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < a.maxRetries {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", a.maxRetries, lastErr)
}
