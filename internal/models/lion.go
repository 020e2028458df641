package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TraitCategory identifies one of the six genetic trait slots every lion has
type TraitCategory string

const (
	CategoryBodyColor      TraitCategory = "body_color"
	CategoryFaceExpression TraitCategory = "face_expression"
	CategoryAccessory      TraitCategory = "accessory"
	CategoryPattern        TraitCategory = "pattern"
	CategoryBackground     TraitCategory = "background"
	CategorySpecial        TraitCategory = "special"
)

// AllCategories lists the six trait categories in canonical order
// Iteration over the traits map is not deterministic; use this instead
var AllCategories = []TraitCategory{
	CategoryBodyColor,
	CategoryFaceExpression,
	CategoryAccessory,
	CategoryPattern,
	CategoryBackground,
	CategorySpecial,
}

// ParseTraitCategory resolves external text to a trait category
func ParseTraitCategory(s string) (TraitCategory, error) {
	for _, cat := range AllCategories {
		if string(cat) == s {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown trait category: %q", s)
}

// Rarity is the ordinal scarcity tier of a trait value
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// AllRarities lists the tiers from most to least frequent
var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}

// ParseRarity resolves external text to a rarity tier
func ParseRarity(s string) (Rarity, error) {
	for _, r := range AllRarities {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rarity: %q", s)
}

// Rank returns the ordinal position of the tier (common=0 .. legendary=3)
func (r Rarity) Rank() int {
	for i, tier := range AllRarities {
		if tier == r {
			return i
		}
	}
	return 0
}

// Trait is a single (category, value, rarity) gene
// Value and rarity are independently settable; no correlation is enforced
type Trait struct {
	Category TraitCategory `json:"category"`
	Value    string        `json:"value"`
	Rarity   Rarity        `json:"rarity"`
}

// LionDNA is the complete versioned genetic record of a lion
type LionDNA struct {
	LionID         string                  `json:"lion_id"`
	Generation     int                     `json:"generation"`
	ParentID       string                  `json:"parent_id,omitempty"`
	Traits         map[TraitCategory]Trait `json:"traits"`
	MutationCount  int                     `json:"mutation_count"`
	BirthTimestamp time.Time               `json:"birth_timestamp"`
	DNAHash        string                  `json:"dna_hash"`
}

// ComputeHash digests the trait values in canonical category order.
// The hash seeds procedural rendering; it is not a security identifier.
func (d *LionDNA) ComputeHash() string {
	parts := make([]string, 0, len(AllCategories))
	for _, cat := range AllCategories {
		trait := d.Traits[cat]
		parts = append(parts, fmt.Sprintf("%s=%s", cat, trait.Value))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// TraitValue returns the value stored for a category, or "none" when absent
func (d *LionDNA) TraitValue(cat TraitCategory) string {
	if trait, ok := d.Traits[cat]; ok && trait.Value != "" {
		return trait.Value
	}
	return "none"
}

// Clone returns a deep copy; the traits map is never shared
func (d *LionDNA) Clone() *LionDNA {
	traits := make(map[TraitCategory]Trait, len(d.Traits))
	for cat, trait := range d.Traits {
		traits[cat] = trait
	}
	clone := *d
	clone.Traits = traits
	return &clone
}
