package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - lion records live in the request
// and response bodies, so there is no database to configure
type Config struct {
	// Environment
	Environment string
	Port        string

	// AI provider selection: "openai", "github" or "gemini"
	AIProvider string

	// LLM credentials
	OpenAIAPIKey string // OpenAI API key for GPT models
	GitHubToken  string // GitHub token for GitHub Models
	GitHubModel  string // Model served through GitHub Models
	GeminiAPIKey string // Google Gemini API key

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		AIProvider:        getEnv("AI_PROVIDER", "github"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GitHubToken:       getEnv("GITHUB_TOKEN", ""),
		GitHubModel:       getEnv("GITHUB_MODEL", "gpt-4o"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true when running with the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
