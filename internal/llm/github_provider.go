package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/forklion/forklion-api/internal/logger"
)

const (
	providerNameGitHub = "github"
	githubModelsURL    = "https://models.inference.ai.azure.com"
	defaultGitHubModel = "gpt-4o"
)

// GitHubProvider implements the Provider interface against GitHub Models,
// an OpenAI-compatible endpoint authenticated with a GitHub token
type GitHubProvider struct {
	client *openai.Client
	model  string
}

// NewGitHubProvider creates a new GitHub Models provider
func NewGitHubProvider(token, model string) *GitHubProvider {
	if model == "" {
		model = defaultGitHubModel
	}
	client := openai.NewClient(
		option.WithAPIKey(token),
		option.WithBaseURL(githubModelsURL),
	)
	return &GitHubProvider{
		client: &client,
		model:  model,
	}
}

// Name returns the provider name including the selected model
func (p *GitHubProvider) Name() string {
	return fmt.Sprintf("%s (%s)", providerNameGitHub, p.model)
}

// Generate runs a single-turn chat completion and returns the message text
func (p *GitHubProvider) Generate(ctx context.Context, prompt string, maxTokens int64) (*GenerationResponse, error) {
	startTime := time.Now()
	log.Printf("🦁 GITHUB MODELS GENERATION REQUEST STARTED (Model: %s)", p.model)

	transaction := sentry.StartTransaction(ctx, "github.generate")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameGitHub)

	span := transaction.StartChild("github.api_call")
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(maxTokens),
	})
	span.Finish()

	if err != nil {
		log.Printf("❌ GITHUB MODELS REQUEST FAILED after %v: %v", time.Since(startTime), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("github models request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("no choices in github models response")
	}

	textOutput := resp.Choices[0].Message.Content
	if textOutput == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("github models response did not include any output text")
	}

	usage := TokenUsage{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:  int(resp.Usage.TotalTokens),
	}
	logger.LogGenerationRequest(ctx, p.model, time.Since(startTime), map[string]interface{}{
		"total_tokens":  usage.TotalTokens,
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	}, logger.Fields{"provider": providerNameGitHub})

	log.Printf("✅ GITHUB MODELS GENERATION COMPLETED in %v (output: %d chars, tokens: %d)",
		time.Since(startTime), len(textOutput), usage.TotalTokens)
	transaction.SetTag("success", "true")
	return &GenerationResponse{Text: textOutput, Model: p.model, Usage: usage}, nil
}
