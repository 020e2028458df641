package evolution

import (
	"log"

	"github.com/forklion/forklion-api/internal/models"
)

// ApplyDecision folds a parsed change-set into a new DNA record.
// Category and rarity must parse; the value is taken verbatim, even outside
// the known vocabulary, since the renderer degrades unknown values to
// defaults. A bad change is skipped without disturbing the rest.
func ApplyDecision(dna *models.LionDNA, decision *models.EvolutionDecision) *models.LionDNA {
	evolved := dna.Clone()
	applied := 0

	for _, change := range decision.Changes {
		cat, err := models.ParseTraitCategory(change.Category)
		if err != nil {
			log.Printf("⚠️  Failed to apply change: %v", err)
			continue
		}
		rarity, err := models.ParseRarity(change.NewRarity)
		if err != nil {
			log.Printf("⚠️  Failed to apply change: %v", err)
			continue
		}

		evolved.Traits[cat] = models.Trait{
			Category: cat,
			Value:    change.NewValue,
			Rarity:   rarity,
		}
		applied++
	}

	evolved.MutationCount = dna.MutationCount + applied
	evolved.DNAHash = evolved.ComputeHash()
	return evolved
}
