package prompt

import (
	"strings"

	"github.com/forklion/forklion-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetEvolutionPrompt loads the evolution decision prompt template
func (l *Loader) GetEvolutionPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.EvolutionPromptTxt)), nil
}

// GetStoryPrompt loads the evolution story prompt template
func (l *Loader) GetStoryPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.StoryPromptTxt)), nil
}
