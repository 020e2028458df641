package llm

import "context"

// Provider defines the capability every evolution backend exposes:
// a single-turn text completion plus a stable name. Backends differ only
// in transport and auth; callers never see provider-specific types.
type Provider interface {
	// Generate returns the model's response for the prompt
	Generate(ctx context.Context, prompt string, maxTokens int64) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationResponse carries the raw text output plus token accounting
// for one provider call
type GenerationResponse struct {
	Text  string
	Model string
	Usage TokenUsage
}

// TokenUsage reports token consumption as the backend accounted it.
// Backends that omit usage data leave the counts at zero.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
