package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/forklion/forklion-api/internal/logger"
)

const (
	providerNameOpenAI = "openai"
	defaultOpenAIModel = "gpt-5-mini"
)

// OpenAIProvider implements the Provider interface using OpenAI's
// Responses API
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client: &client,
		model:  defaultOpenAIModel,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Generate runs a single-turn completion and returns the output text
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, maxTokens int64) (*GenerationResponse, error) {
	startTime := time.Now()
	log.Printf("🦁 OPENAI GENERATION REQUEST STARTED (Model: %s)", p.model)

	transaction := sentry.StartTransaction(ctx, "openai.generate")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := responses.ResponseNewParams{
		Model: p.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
		MaxOutputTokens: openai.Int(maxTokens),
	}

	span := transaction.StartChild("openai.api_call")
	resp, err := p.client.Responses.New(ctx, params)
	span.Finish()

	if err != nil {
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", time.Since(startTime), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	textOutput := resp.OutputText()
	if textOutput == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("openai response did not include any output text")
	}

	usage := TokenUsage{
		InputTokens:  int(resp.Usage.InputTokens),
		OutputTokens: int(resp.Usage.OutputTokens),
		TotalTokens:  int(resp.Usage.TotalTokens),
	}
	logger.LogGenerationRequest(ctx, p.model, time.Since(startTime), map[string]interface{}{
		"total_tokens":  usage.TotalTokens,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}, logger.Fields{"provider": providerNameOpenAI})

	log.Printf("✅ OPENAI GENERATION COMPLETED in %v (output: %d chars, tokens: %d)",
		time.Since(startTime), len(textOutput), usage.TotalTokens)
	transaction.SetTag("success", "true")
	return &GenerationResponse{Text: textOutput, Model: p.model, Usage: usage}, nil
}
