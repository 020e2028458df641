package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"

	"github.com/forklion/forklion-api/internal/logger"
)

const (
	providerNameGemini = "gemini"
	defaultGeminiModel = "gemini-2.0-flash"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  defaultGeminiModel,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Generate runs a single-turn generation and returns the response text
func (p *GeminiProvider) Generate(ctx context.Context, prompt string, maxTokens int64) (*GenerationResponse, error) {
	startTime := time.Now()
	log.Printf("🦁 GEMINI GENERATION REQUEST STARTED (Model: %s)", p.model)

	transaction := sentry.StartTransaction(ctx, "gemini.generate")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameGemini)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	span := transaction.StartChild("gemini.api_call")
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", time.Since(startTime), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini response did not include any candidates")
	}

	textOutput := result.Candidates[0].Content.Parts[0].Text
	if textOutput == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini response did not include any output text")
	}

	var usage TokenUsage
	if result.UsageMetadata != nil {
		usage = TokenUsage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	logger.LogGenerationRequest(ctx, p.model, time.Since(startTime), map[string]interface{}{
		"total_tokens":  usage.TotalTokens,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}, logger.Fields{"provider": providerNameGemini})

	log.Printf("✅ GEMINI GENERATION COMPLETED in %v (output: %d chars, tokens: %d)",
		time.Since(startTime), len(textOutput), usage.TotalTokens)
	transaction.SetTag("success", "true")
	return &GenerationResponse{Text: textOutput, Model: p.model, Usage: usage}, nil
}
