package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/forklion/forklion-api/internal/genetics"
	"github.com/forklion/forklion-api/internal/models"
)

// Builder renders the evolution agent's prompts from the embedded templates.
// The trait vocabulary section is generated from the genetics catalog so the
// prompt and the engine can never drift apart.
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{loader: NewPromptLoader()}
}

// traitView is the readable trait shape shown to the model
type traitView struct {
	Value  string `json:"value"`
	Rarity string `json:"rarity"`
}

// BuildEvolutionPrompt builds the decision prompt for one evolution step
func (b *Builder) BuildEvolutionPrompt(dna *models.LionDNA, daysPassed int) (string, error) {
	template, err := b.loader.GetEvolutionPrompt()
	if err != nil {
		return "", err
	}

	current := make(map[string]traitView, len(dna.Traits))
	for cat, trait := range dna.Traits {
		current[string(cat)] = traitView{
			Value:  trait.Value,
			Rarity: string(trait.Rarity),
		}
	}
	traitsJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize traits: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{CURRENT_TRAITS}}", string(traitsJSON),
		"{{GENERATION}}", strconv.Itoa(dna.Generation),
		"{{DAYS_PASSED}}", strconv.Itoa(daysPassed),
		"{{TRAIT_OPTIONS}}", traitOptionsSection(),
	)
	return replacer.Replace(template), nil
}

// BuildStoryPrompt builds the narration prompt from a trait-diff listing
func (b *Builder) BuildStoryPrompt(changes []string) (string, error) {
	template, err := b.loader.GetStoryPrompt()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(template, "{{CHANGES}}", strings.Join(changes, "\n")), nil
}

// traitOptionsSection lists every category's full vocabulary, one line each
func traitOptionsSection() string {
	lines := make([]string, 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		lines = append(lines, fmt.Sprintf("- %s: %s", cat, strings.Join(genetics.ValuesFor(cat), ", ")))
	}
	return strings.Join(lines, "\n")
}
