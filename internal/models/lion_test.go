package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTraits() map[TraitCategory]Trait {
	return map[TraitCategory]Trait{
		CategoryBodyColor:      {Category: CategoryBodyColor, Value: "brown", Rarity: RarityCommon},
		CategoryFaceExpression: {Category: CategoryFaceExpression, Value: "happy", Rarity: RarityCommon},
		CategoryAccessory:      {Category: CategoryAccessory, Value: "none", Rarity: RarityCommon},
		CategoryPattern:        {Category: CategoryPattern, Value: "solid", Rarity: RarityCommon},
		CategoryBackground:     {Category: CategoryBackground, Value: "white", Rarity: RarityCommon},
		CategorySpecial:        {Category: CategorySpecial, Value: "none", Rarity: RarityCommon},
	}
}

func TestComputeHashDeterministic(t *testing.T) {
	a := &LionDNA{Traits: fullTraits()}
	b := &LionDNA{Traits: fullTraits()}

	assert.Equal(t, a.ComputeHash(), b.ComputeHash())
	assert.Len(t, a.ComputeHash(), 64)
}

func TestComputeHashIgnoresIdentityFields(t *testing.T) {
	a := &LionDNA{LionID: "a", Generation: 1, MutationCount: 7, Traits: fullTraits()}
	b := &LionDNA{LionID: "b", Generation: 9, MutationCount: 0, Traits: fullTraits(),
		BirthTimestamp: time.Now()}

	assert.Equal(t, a.ComputeHash(), b.ComputeHash())
}

func TestComputeHashChangesWithTraitValue(t *testing.T) {
	a := &LionDNA{Traits: fullTraits()}
	traits := fullTraits()
	traits[CategoryBodyColor] = Trait{Category: CategoryBodyColor, Value: "golden", Rarity: RarityUncommon}
	b := &LionDNA{Traits: traits}

	assert.NotEqual(t, a.ComputeHash(), b.ComputeHash())
}

func TestTraitValueDefaultsToNone(t *testing.T) {
	dna := &LionDNA{Traits: map[TraitCategory]Trait{}}

	assert.Equal(t, "none", dna.TraitValue(CategoryAccessory))
	assert.Equal(t, "none", dna.TraitValue(CategoryBodyColor))
}

func TestCloneIsIndependent(t *testing.T) {
	dna := &LionDNA{LionID: "lion-1", Traits: fullTraits()}
	clone := dna.Clone()

	clone.Traits[CategoryBodyColor] = Trait{Category: CategoryBodyColor, Value: "galaxy", Rarity: RarityLegendary}
	clone.MutationCount = 99

	assert.Equal(t, "brown", dna.Traits[CategoryBodyColor].Value)
	assert.Equal(t, 0, dna.MutationCount)
}

func TestParseTraitCategory(t *testing.T) {
	cat, err := ParseTraitCategory("face_expression")
	require.NoError(t, err)
	assert.Equal(t, CategoryFaceExpression, cat)

	_, err = ParseTraitCategory("mane_style")
	assert.Error(t, err)
}

func TestParseRarity(t *testing.T) {
	r, err := ParseRarity("legendary")
	require.NoError(t, err)
	assert.Equal(t, RarityLegendary, r)

	_, err = ParseRarity("mythic")
	assert.Error(t, err)
}

func TestRarityRank(t *testing.T) {
	assert.Equal(t, 0, RarityCommon.Rank())
	assert.Equal(t, 1, RarityUncommon.Rank())
	assert.Equal(t, 2, RarityRare.Rank())
	assert.Equal(t, 3, RarityLegendary.Rank())
}
