package evolution

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/forklion/forklion-api/internal/genetics"
	"github.com/forklion/forklion-api/internal/llm"
	"github.com/forklion/forklion-api/internal/metrics"
	"github.com/forklion/forklion-api/internal/models"
	"github.com/forklion/forklion-api/internal/observability"
	"github.com/forklion/forklion-api/internal/prompt"
)

const (
	evolveMaxTokens = 1024
	storyMaxTokens  = 256

	// Mutation probability used when AI evolution fails and the random
	// engine takes over
	fallbackStrength = 0.1
)

// Agent drives AI-assisted evolution. It asks the configured provider for a
// bounded change-set and applies it; any failure along the way falls back to
// the random genetics engine, so evolution itself never fails.
type Agent struct {
	provider   llm.Provider
	engine     *genetics.Engine
	builder    *prompt.Builder
	metrics    *metrics.SentryMetrics
	cloudwatch *metrics.Client
}

// NewAgent creates an evolution agent backed by the given provider.
// cloudwatch may be nil; token metrics are then only recorded in Sentry.
func NewAgent(provider llm.Provider, cloudwatch *metrics.Client) *Agent {
	agent := &Agent{
		provider:   provider,
		engine:     genetics.NewEngine(),
		builder:    prompt.NewPromptBuilder(),
		metrics:    metrics.NewSentryMetrics(),
		cloudwatch: cloudwatch,
	}

	log.Printf("🧬 EVOLUTION AGENT INITIALIZED:")
	log.Printf("   Provider: %s", provider.Name())
	return agent
}

// EvolveWithAI evolves the lion one step using the AI provider.
// The returned record is always a valid evolved DNA: if the provider call or
// the response handling fails, the random engine supplies the mutation and
// the second return value is false.
func (a *Agent) EvolveWithAI(ctx context.Context, dna *models.LionDNA, daysPassed int) (*models.LionDNA, bool) {
	startTime := time.Now()
	log.Printf("🧠 Evolving lion %s with %s...", dna.LionID, a.provider.Name())

	transaction := sentry.StartTransaction(ctx, "lion.evolve")
	defer transaction.Finish()

	transaction.SetTag("provider", a.provider.Name())
	transaction.SetContext("lion", map[string]any{
		"lion_id":    dna.LionID,
		"generation": dna.Generation,
		"days":       daysPassed,
	})

	promptText, err := a.builder.BuildEvolutionPrompt(dna, daysPassed)
	if err != nil {
		log.Printf("⚠️  AI evolution failed: %v", err)
		log.Printf("   Falling back to random evolution...")
		return a.fallback(ctx, dna, startTime)
	}

	trace := observability.GetClient().StartTrace(ctx, "lion.evolution", map[string]any{
		"lion_id":    dna.LionID,
		"generation": dna.Generation,
	})
	defer trace.Finish()

	generation := trace.Generation("evolution_decision", map[string]any{
		"provider": a.provider.Name(),
		"days":     daysPassed,
	})
	generation.Input(promptText)

	response, err := a.provider.Generate(ctx, promptText, evolveMaxTokens)
	if err != nil {
		generation.Finish()
		log.Printf("⚠️  AI evolution failed: %v", err)
		log.Printf("   Falling back to random evolution...")
		return a.fallback(ctx, dna, startTime)
	}
	generation.Output(response.Text)
	generation.Usage(response.Model, response.Usage.InputTokens, response.Usage.OutputTokens)
	generation.Finish()

	a.recordTokenUsage(ctx, response)

	decision := ParseDecision(response.Text)
	evolved := ApplyDecision(dna, decision)

	a.metrics.RecordEvolution(ctx, a.provider.Name(), len(decision.Changes), time.Since(startTime), true)
	log.Printf("✅ AI evolution applied %d change(s) to lion %s in %v",
		len(decision.Changes), dna.LionID, time.Since(startTime))
	return evolved, true
}

// GenerateEvolutionStory narrates the diff between two DNA records.
// An empty diff gets a fixed rest message without any provider call, and a
// provider failure degrades to a templated change listing.
func (a *Agent) GenerateEvolutionStory(ctx context.Context, oldDNA, newDNA *models.LionDNA) string {
	changes := diffTraits(oldDNA, newDNA)
	if len(changes) == 0 {
		return "Your lion rested today. No visible changes."
	}

	promptText, err := a.builder.BuildStoryPrompt(changes)
	if err != nil {
		return storyFallback(changes)
	}

	response, err := a.provider.Generate(ctx, promptText, storyMaxTokens)
	if err != nil {
		log.Printf("⚠️  Story generation failed: %v", err)
		return storyFallback(changes)
	}
	a.recordTokenUsage(ctx, response)
	return strings.TrimSpace(response.Text)
}

// recordTokenUsage forwards one call's token accounting to the metric sinks
func (a *Agent) recordTokenUsage(ctx context.Context, response *llm.GenerationResponse) {
	a.metrics.RecordTokenUsage(ctx, response.Model,
		response.Usage.TotalTokens, response.Usage.InputTokens, response.Usage.OutputTokens)
	a.cloudwatch.RecordTokenUsage(response.Model,
		response.Usage.TotalTokens, response.Usage.InputTokens, response.Usage.OutputTokens)
}

func (a *Agent) fallback(ctx context.Context, dna *models.LionDNA, startTime time.Time) (*models.LionDNA, bool) {
	evolved := a.engine.Evolve(dna, fallbackStrength)
	a.metrics.RecordEvolution(ctx, a.provider.Name(), evolved.MutationCount-dna.MutationCount, time.Since(startTime), false)
	return evolved, false
}

// diffTraits lists value changes in canonical category order
func diffTraits(oldDNA, newDNA *models.LionDNA) []string {
	var changes []string
	for _, cat := range models.AllCategories {
		oldValue := oldDNA.TraitValue(cat)
		newValue := newDNA.TraitValue(cat)
		if oldValue != newValue {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", cat, oldValue, newValue))
		}
	}
	return changes
}

func storyFallback(changes []string) string {
	return fmt.Sprintf("Your lion evolved! Changes: %s", strings.Join(changes, ", "))
}
