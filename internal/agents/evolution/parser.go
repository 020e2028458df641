package evolution

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/forklion/forklion-api/internal/models"
)

// noChangesStory is returned when the model output yields no usable decision
const noChangesStory = "No changes today."

// ParseDecision extracts an EvolutionDecision from raw model output.
// Markdown code fences are stripped, then the outermost brace-delimited
// object is decoded. Output that still fails to parse degrades to an empty
// decision; a malformed response must never fail an evolution request.
func ParseDecision(responseText string) *models.EvolutionDecision {
	clean := strings.ReplaceAll(responseText, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end < start {
		log.Printf("⚠️  No JSON object found in AI response: %.100s", responseText)
		return &models.EvolutionDecision{EvolutionStory: noChangesStory}
	}

	var decision models.EvolutionDecision
	if err := json.Unmarshal([]byte(clean[start:end+1]), &decision); err != nil {
		log.Printf("⚠️  Failed to parse AI response: %v (raw: %.100s)", err, responseText)
		return &models.EvolutionDecision{EvolutionStory: noChangesStory}
	}
	return &decision
}
