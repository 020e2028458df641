package genetics

import (
	"log"
	"math/rand"
	"time"

	"github.com/forklion/forklion-api/internal/models"
	"github.com/google/uuid"
)

// Vocabulary holds the allowed values for one trait category, grouped by tier
type Vocabulary map[models.Rarity][]string

// TraitCatalog maps every category to its closed vocabulary.
// Values outside these lists can still enter a record through AI evolution;
// the visualizer degrades them to defaults at render time.
var TraitCatalog = map[models.TraitCategory]Vocabulary{
	models.CategoryBodyColor: {
		models.RarityCommon:    {"brown", "tan", "beige", "gray"},
		models.RarityUncommon:  {"golden", "silver", "copper", "bronze"},
		models.RarityRare:      {"blue", "purple", "green", "pink"},
		models.RarityLegendary: {"rainbow", "galaxy", "holographic", "crystal"},
	},
	models.CategoryFaceExpression: {
		models.RarityCommon:    {"happy", "neutral", "curious", "sleepy"},
		models.RarityUncommon:  {"excited", "mischievous", "wise", "cool"},
		models.RarityRare:      {"surprised", "laughing", "winking", "zen"},
		models.RarityLegendary: {"enlightened", "cosmic", "legendary", "divine"},
	},
	models.CategoryAccessory: {
		models.RarityCommon:    {"none", "simple_hat", "bandana", "bow"},
		models.RarityUncommon:  {"sunglasses", "crown", "headphones", "monocle"},
		models.RarityRare:      {"laser_eyes", "halo", "horns", "wizard_hat"},
		models.RarityLegendary: {"golden_crown", "diamond_chain", "jetpack", "wings"},
	},
	models.CategoryPattern: {
		models.RarityCommon:    {"solid", "spots", "stripes", "gradient"},
		models.RarityUncommon:  {"swirls", "stars", "hearts", "diamonds"},
		models.RarityRare:      {"fractals", "nebula", "lightning", "flames"},
		models.RarityLegendary: {"aurora", "quantum", "cosmic_dust", "void"},
	},
	models.CategoryBackground: {
		models.RarityCommon:    {"white", "blue_sky", "green_grass", "sunset"},
		models.RarityUncommon:  {"forest", "beach", "mountains", "city"},
		models.RarityRare:      {"space", "underwater", "volcano", "aurora"},
		models.RarityLegendary: {"multiverse", "black_hole", "dimension_rift", "heaven"},
	},
	models.CategorySpecial: {
		models.RarityCommon:    {"none"},
		models.RarityUncommon:  {"sparkles", "glow", "shadow"},
		models.RarityRare:      {"aura", "particles", "energy"},
		models.RarityLegendary: {"transcendent", "godlike", "mythical"},
	},
}

// Rarity roll weights: common 60%, uncommon 25%, rare 10%, legendary 5%
var rarityWeights = []struct {
	tier   models.Rarity
	weight int
}{
	{models.RarityCommon, 60},
	{models.RarityUncommon, 25},
	{models.RarityRare, 10},
	{models.RarityLegendary, 5},
}

// ValuesFor flattens a category's vocabulary across all tiers, common first
func ValuesFor(cat models.TraitCategory) []string {
	vocab := TraitCatalog[cat]
	var values []string
	for _, tier := range models.AllRarities {
		values = append(values, vocab[tier]...)
	}
	return values
}

// Engine generates and randomly evolves lion DNA.
// It is the guaranteed-successful fallback behind AI evolution.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine seeded from the current time
func NewEngine() *Engine {
	return &Engine{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewEngineWithSeed creates an engine with a fixed seed, for reproducible tests
func NewEngineWithSeed(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// GenerateRandomDNA rolls a complete six-trait record for a new lion
func (e *Engine) GenerateRandomDNA() *models.LionDNA {
	traits := make(map[models.TraitCategory]models.Trait, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		traits[cat] = e.rollTrait(cat)
	}

	dna := &models.LionDNA{
		LionID:         uuid.New().String(),
		Generation:     0,
		Traits:         traits,
		MutationCount:  0,
		BirthTimestamp: time.Now().UTC(),
	}
	dna.DNAHash = dna.ComputeHash()

	log.Printf("🦁 Generated random lion %s (hash: %.8s)", dna.LionID, dna.DNAHash)
	return dna
}

// Evolve mutates each category with probability strength (clamped to [0,1])
// and returns a new record; the input is never modified.
// At least one trait always mutates so the record visibly changes.
func (e *Engine) Evolve(dna *models.LionDNA, strength float64) *models.LionDNA {
	if strength < 0 {
		strength = 0
	} else if strength > 1 {
		strength = 1
	}

	evolved := dna.Clone()
	mutations := 0
	for _, cat := range models.AllCategories {
		if e.rng.Float64() < strength {
			evolved.Traits[cat] = e.rollTrait(cat)
			mutations++
		}
	}
	if mutations == 0 {
		cat := models.AllCategories[e.rng.Intn(len(models.AllCategories))]
		evolved.Traits[cat] = e.rollTrait(cat)
		mutations = 1
	}

	evolved.MutationCount = dna.MutationCount + mutations
	evolved.DNAHash = evolved.ComputeHash()

	log.Printf("🎲 Random evolution applied %d mutation(s) to lion %s", mutations, dna.LionID)
	return evolved
}

// rollTrait picks a tier by weight, then a value uniformly within the tier
func (e *Engine) rollTrait(cat models.TraitCategory) models.Trait {
	roll := e.rng.Intn(100)
	tier := models.RarityCommon
	for _, rw := range rarityWeights {
		if roll < rw.weight {
			tier = rw.tier
			break
		}
		roll -= rw.weight
	}

	vocab := TraitCatalog[cat]
	values := vocab[tier]
	if len(values) == 0 {
		tier = models.RarityCommon
		values = vocab[tier]
	}

	return models.Trait{
		Category: cat,
		Value:    values[e.rng.Intn(len(values))],
		Rarity:   tier,
	}
}
