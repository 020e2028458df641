package evolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forklion/forklion-api/internal/llm"
	"github.com/forklion/forklion-api/internal/models"
)

// stubProvider returns a canned response and counts calls
type stubProvider struct {
	response string
	usage    llm.TokenUsage
	err      error
	calls    int
}

func (p *stubProvider) Generate(_ context.Context, _ string, _ int64) (*llm.GenerationResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &llm.GenerationResponse{Text: p.response, Model: "stub-model", Usage: p.usage}, nil
}

func (p *stubProvider) Name() string { return "stub" }

func baseDNA() *models.LionDNA {
	dna := &models.LionDNA{
		LionID:     "lion-1",
		Generation: 2,
		Traits: map[models.TraitCategory]models.Trait{
			models.CategoryBodyColor:      {Category: models.CategoryBodyColor, Value: "brown", Rarity: models.RarityCommon},
			models.CategoryFaceExpression: {Category: models.CategoryFaceExpression, Value: "happy", Rarity: models.RarityCommon},
			models.CategoryAccessory:      {Category: models.CategoryAccessory, Value: "none", Rarity: models.RarityCommon},
			models.CategoryPattern:        {Category: models.CategoryPattern, Value: "solid", Rarity: models.RarityCommon},
			models.CategoryBackground:     {Category: models.CategoryBackground, Value: "white", Rarity: models.RarityCommon},
			models.CategorySpecial:        {Category: models.CategorySpecial, Value: "none", Rarity: models.RarityCommon},
		},
		MutationCount:  4,
		BirthTimestamp: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	dna.DNAHash = dna.ComputeHash()
	return dna
}

func TestParseDecisionPlainJSON(t *testing.T) {
	decision := ParseDecision(`{"changes": [{"category": "body_color", "new_value": "golden", "new_rarity": "uncommon", "reason": "warmer"}], "evolution_story": "A golden sheen."}`)

	require.Len(t, decision.Changes, 1)
	assert.Equal(t, "body_color", decision.Changes[0].Category)
	assert.Equal(t, "golden", decision.Changes[0].NewValue)
	assert.Equal(t, "A golden sheen.", decision.EvolutionStory)
}

func TestParseDecisionStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"changes\": [], \"evolution_story\": \"Quiet day.\"}\n```"

	decision := ParseDecision(raw)
	assert.Empty(t, decision.Changes)
	assert.Equal(t, "Quiet day.", decision.EvolutionStory)
}

func TestParseDecisionIgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the evolution plan you asked for:
{"changes": [{"category": "accessory", "new_value": "crown", "new_rarity": "uncommon", "reason": "regal"}], "evolution_story": "Crowned."}
Hope that helps!`

	decision := ParseDecision(raw)
	require.Len(t, decision.Changes, 1)
	assert.Equal(t, "crown", decision.Changes[0].NewValue)
}

func TestParseDecisionGarbageDegradesToEmpty(t *testing.T) {
	decision := ParseDecision("I cannot help with that request.")

	assert.Empty(t, decision.Changes)
	assert.Equal(t, "No changes today.", decision.EvolutionStory)
}

func TestParseDecisionBrokenJSONDegradesToEmpty(t *testing.T) {
	decision := ParseDecision(`{"changes": [{"category": "body_color",`)

	assert.Empty(t, decision.Changes)
	assert.Equal(t, "No changes today.", decision.EvolutionStory)
}

func TestApplyDecisionValidChange(t *testing.T) {
	dna := baseDNA()
	decision := &models.EvolutionDecision{
		Changes: []models.TraitChange{
			{Category: "body_color", NewValue: "golden", NewRarity: "uncommon", Reason: "warmer"},
		},
	}

	evolved := ApplyDecision(dna, decision)

	assert.Equal(t, "golden", evolved.Traits[models.CategoryBodyColor].Value)
	assert.Equal(t, models.RarityUncommon, evolved.Traits[models.CategoryBodyColor].Rarity)
	assert.Equal(t, dna.MutationCount+1, evolved.MutationCount)
	assert.Equal(t, evolved.ComputeHash(), evolved.DNAHash)
	assert.NotEqual(t, dna.DNAHash, evolved.DNAHash)
}

func TestApplyDecisionSkipsInvalidKeepsValid(t *testing.T) {
	dna := baseDNA()
	decision := &models.EvolutionDecision{
		Changes: []models.TraitChange{
			{Category: "mane_style", NewValue: "curly", NewRarity: "common"},
			{Category: "accessory", NewValue: "crown", NewRarity: "mythic"},
			{Category: "pattern", NewValue: "stripes", NewRarity: "common"},
		},
	}

	evolved := ApplyDecision(dna, decision)

	assert.Equal(t, "stripes", evolved.Traits[models.CategoryPattern].Value)
	assert.Equal(t, "none", evolved.Traits[models.CategoryAccessory].Value)
	assert.Equal(t, dna.MutationCount+1, evolved.MutationCount)
}

func TestApplyDecisionAcceptsUnknownValue(t *testing.T) {
	dna := baseDNA()
	decision := &models.EvolutionDecision{
		Changes: []models.TraitChange{
			{Category: "body_color", NewValue: "ultraviolet", NewRarity: "legendary"},
		},
	}

	evolved := ApplyDecision(dna, decision)
	assert.Equal(t, "ultraviolet", evolved.Traits[models.CategoryBodyColor].Value)
}

func TestApplyDecisionDoesNotMutateInput(t *testing.T) {
	dna := baseDNA()
	originalHash := dna.DNAHash
	decision := &models.EvolutionDecision{
		Changes: []models.TraitChange{
			{Category: "body_color", NewValue: "golden", NewRarity: "uncommon"},
		},
	}

	_ = ApplyDecision(dna, decision)

	assert.Equal(t, "brown", dna.Traits[models.CategoryBodyColor].Value)
	assert.Equal(t, originalHash, dna.DNAHash)
	assert.Equal(t, 4, dna.MutationCount)
}

func TestEvolveWithAIAppliesModelChanges(t *testing.T) {
	provider := &stubProvider{
		response: `{"changes": [{"category": "body_color", "new_value": "golden", "new_rarity": "uncommon", "reason": "maturing"}], "evolution_story": "Golden days."}`,
	}
	agent := NewAgent(provider, nil)
	dna := baseDNA()

	evolved, aiUsed := agent.EvolveWithAI(context.Background(), dna, 1)

	assert.True(t, aiUsed)
	assert.Equal(t, "golden", evolved.Traits[models.CategoryBodyColor].Value)
	assert.Equal(t, dna.MutationCount+1, evolved.MutationCount)
	assert.Equal(t, evolved.ComputeHash(), evolved.DNAHash)
}

func TestEvolveWithAIRecordsTokenUsage(t *testing.T) {
	provider := &stubProvider{
		response: `{"changes": [], "evolution_story": "Rest."}`,
		usage:    llm.TokenUsage{InputTokens: 120, OutputTokens: 30, TotalTokens: 150},
	}
	agent := NewAgent(provider, nil)

	evolved, aiUsed := agent.EvolveWithAI(context.Background(), baseDNA(), 1)

	assert.True(t, aiUsed)
	require.NotNil(t, evolved)
	assert.Equal(t, 1, provider.calls)
}

func TestEvolveWithAIFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("rate limited")}
	agent := NewAgent(provider, nil)
	dna := baseDNA()

	evolved, aiUsed := agent.EvolveWithAI(context.Background(), dna, 1)

	require.NotNil(t, evolved)
	assert.False(t, aiUsed)
	assert.Greater(t, evolved.MutationCount, dna.MutationCount)
	assert.Equal(t, evolved.ComputeHash(), evolved.DNAHash)
	for _, cat := range models.AllCategories {
		assert.NotEmpty(t, evolved.Traits[cat].Value)
	}
}

func TestEvolveWithAIUnparseableResponseIsNoOp(t *testing.T) {
	provider := &stubProvider{response: "definitely not json"}
	agent := NewAgent(provider, nil)
	dna := baseDNA()

	evolved, aiUsed := agent.EvolveWithAI(context.Background(), dna, 1)

	assert.True(t, aiUsed)
	assert.Equal(t, dna.DNAHash, evolved.DNAHash)
	assert.Equal(t, dna.MutationCount, evolved.MutationCount)
}

func TestGenerateEvolutionStoryNoChangesSkipsProvider(t *testing.T) {
	provider := &stubProvider{response: "should never be used"}
	agent := NewAgent(provider, nil)
	dna := baseDNA()

	story := agent.GenerateEvolutionStory(context.Background(), dna, dna.Clone())

	assert.Equal(t, "Your lion rested today. No visible changes.", story)
	assert.Equal(t, 0, provider.calls)
}

func TestGenerateEvolutionStoryFromProvider(t *testing.T) {
	provider := &stubProvider{response: "  Your lion now gleams like the sun!  "}
	agent := NewAgent(provider, nil)
	oldDNA := baseDNA()
	newDNA := oldDNA.Clone()
	newDNA.Traits[models.CategoryBodyColor] = models.Trait{
		Category: models.CategoryBodyColor, Value: "golden", Rarity: models.RarityUncommon,
	}
	newDNA.DNAHash = newDNA.ComputeHash()

	story := agent.GenerateEvolutionStory(context.Background(), oldDNA, newDNA)

	assert.Equal(t, "Your lion now gleams like the sun!", story)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateEvolutionStoryFallbackOnError(t *testing.T) {
	provider := &stubProvider{err: errors.New("timeout")}
	agent := NewAgent(provider, nil)
	oldDNA := baseDNA()
	newDNA := oldDNA.Clone()
	newDNA.Traits[models.CategoryAccessory] = models.Trait{
		Category: models.CategoryAccessory, Value: "crown", Rarity: models.RarityUncommon,
	}
	newDNA.DNAHash = newDNA.ComputeHash()

	story := agent.GenerateEvolutionStory(context.Background(), oldDNA, newDNA)

	assert.Equal(t, "Your lion evolved! Changes: accessory: none -> crown", story)
}
