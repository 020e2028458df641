package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider identifiers accepted by the factory
const (
	ProviderOpenAI = "openai"
	ProviderGitHub = "github"
	ProviderGemini = "gemini"
)

// ProviderFactory creates providers from an explicit provider choice.
// A missing credential or unknown identifier is a configuration error and
// fails here, before any network activity.
type ProviderFactory struct {
	openaiAPIKey string
	githubToken  string
	githubModel  string
	geminiAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, githubToken, githubModel, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey: openaiAPIKey,
		githubToken:  githubToken,
		githubModel:  githubModel,
		geminiAPIKey: geminiAPIKey,
	}
}

// GetProvider returns the provider for the given configuration name
func (f *ProviderFactory) GetProvider(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case ProviderOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not configured")
		}
		return NewOpenAIProvider(f.openaiAPIKey), nil

	case ProviderGitHub:
		if f.githubToken == "" {
			return nil, fmt.Errorf("GITHUB_TOKEN not configured (required for GitHub Models)")
		}
		return NewGitHubProvider(f.githubToken, f.githubModel), nil

	case ProviderGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not configured")
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey)

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, github, gemini)", providerName)
	}
}
