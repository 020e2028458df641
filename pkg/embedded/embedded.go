package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/prompts/evolution_prompt.txt
var EvolutionPromptTxt []byte

//go:embed data/prompts/story_prompt.txt
var StoryPromptTxt []byte
