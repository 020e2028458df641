package models

// TraitChange is a single proposed trait replacement from the evolution model
type TraitChange struct {
	Category  string `json:"category"`
	NewValue  string `json:"new_value"`
	NewRarity string `json:"new_rarity"`
	Reason    string `json:"reason"`
}

// EvolutionDecision is the change-set wire format expected from the model:
// a bounded list of trait changes plus a short narrative
type EvolutionDecision struct {
	Changes        []TraitChange `json:"changes"`
	EvolutionStory string        `json:"evolution_story"`
}
