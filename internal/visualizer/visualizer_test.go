package visualizer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forklion/forklion-api/internal/models"
)

func dnaWith(values map[models.TraitCategory]string) *models.LionDNA {
	traits := make(map[models.TraitCategory]models.Trait, len(values))
	for cat, value := range values {
		traits[cat] = models.Trait{Category: cat, Value: value, Rarity: models.RarityCommon}
	}
	dna := &models.LionDNA{LionID: "test", Traits: traits}
	dna.DNAHash = dna.ComputeHash()
	return dna
}

func basicDNA() *models.LionDNA {
	return dnaWith(map[models.TraitCategory]string{
		models.CategoryBodyColor:      "brown",
		models.CategoryFaceExpression: "happy",
		models.CategoryAccessory:      "none",
		models.CategoryPattern:        "solid",
		models.CategoryBackground:     "white",
		models.CategorySpecial:        "none",
	})
}

func TestRenderDeterministic(t *testing.T) {
	dna := basicDNA()

	first := Render(dna, 400, 400)
	second := Render(dna, 400, 400)

	assert.Equal(t, first, second)
}

func TestRenderProducesSVGDocument(t *testing.T) {
	svg := Render(basicDNA(), 400, 400)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, svg, `width="400" height="400"`)
}

func TestRenderNeverFailsOnUnknownValues(t *testing.T) {
	dna := dnaWith(map[models.TraitCategory]string{
		models.CategoryBodyColor:      "ultraviolet",
		models.CategoryFaceExpression: "screaming",
		models.CategoryAccessory:      "top_hat",
		models.CategoryPattern:        "plaid",
		models.CategoryBackground:     "mars",
		models.CategorySpecial:        "invisible",
	})

	svg := Render(dna, 400, 400)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	// Unknown body color falls back to the brown palette
	assert.Contains(t, svg, "#CD853F")
	// Unknown background falls back to the default fill
	assert.Contains(t, svg, "#FFF5E6")
}

func TestRenderEmptyTraits(t *testing.T) {
	dna := &models.LionDNA{LionID: "bare", Traits: map[models.TraitCategory]models.Trait{}}

	svg := Render(dna, 200, 200)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestRenderVariesWithTraits(t *testing.T) {
	a := basicDNA()
	b := basicDNA()
	b.Traits[models.CategoryBodyColor] = models.Trait{
		Category: models.CategoryBodyColor, Value: "galaxy", Rarity: models.RarityLegendary,
	}
	b.DNAHash = b.ComputeHash()

	assert.NotEqual(t, Render(a, 400, 400), Render(b, 400, 400))
}

func TestRenderThumbnailDefaultSize(t *testing.T) {
	svg := RenderThumbnail(basicDNA(), 0)
	assert.Contains(t, svg, `width="100" height="100"`)

	svg = RenderThumbnail(basicDNA(), 64)
	assert.Contains(t, svg, `width="64" height="64"`)
}

func TestRainbowManeGradientGated(t *testing.T) {
	plain := Render(basicDNA(), 400, 400)
	assert.NotContains(t, plain, "rainbow-mane")

	rainbow := basicDNA()
	rainbow.Traits[models.CategoryBodyColor] = models.Trait{
		Category: models.CategoryBodyColor, Value: "rainbow", Rarity: models.RarityLegendary,
	}
	rainbow.DNAHash = rainbow.ComputeHash()
	assert.Contains(t, Render(rainbow, 400, 400), "rainbow-mane")
}

func TestRenderSmallCanvasNeverPanics(t *testing.T) {
	scenes := []string{
		"white", "blue_sky", "green_grass", "sunset", "forest", "beach",
		"space", "underwater", "volcano", "aurora", "multiverse",
		"black_hole", "dimension_rift", "heaven", "mountains", "city",
	}

	// 40, 100 and 120 sit exactly on the decoration span boundaries
	for _, scene := range scenes {
		dna := basicDNA()
		dna.Traits[models.CategoryBackground] = models.Trait{
			Category: models.CategoryBackground, Value: scene, Rarity: models.RarityCommon,
		}
		dna.DNAHash = dna.ComputeHash()

		for _, size := range []int{0, 1, 40, 100, 120} {
			svg := Render(dna, size, size)
			assert.True(t, strings.HasPrefix(svg, "<svg"), "scene %s at %dx%d", scene, size, size)
			assert.True(t, strings.HasSuffix(svg, "</svg>"), "scene %s at %dx%d", scene, size, size)
		}
	}
}

func TestRenderSeedMovesPlacementNotStructure(t *testing.T) {
	a := basicDNA()
	b := basicDNA()
	a.DNAHash = "00000001" + strings.Repeat("0", 56)
	b.DNAHash = "00ff00ff" + strings.Repeat("0", 56)

	svgA := Render(a, 400, 400)
	svgB := Render(b, 400, 400)

	assert.NotEqual(t, svgA, svgB)
	assert.Equal(t, tagSequence(svgA), tagSequence(svgB))
}

// tagSequence reduces an SVG document to its ordered element names
func tagSequence(svg string) []string {
	return regexp.MustCompile(`</?[a-zA-Z]+`).FindAllString(svg, -1)
}

func TestDeriveSeedFallback(t *testing.T) {
	dna := basicDNA()
	dna.DNAHash = "zzzz"

	assert.Equal(t, fallbackSeed, deriveSeed(dna))

	dna.DNAHash = "deadbeef" + strings.Repeat("0", 56)
	assert.Equal(t, 0xdeadbeef, deriveSeed(dna))
}

func TestDeriveSeedNonHexPrefix(t *testing.T) {
	dna := basicDNA()
	dna.DNAHash = "nothexval" + strings.Repeat("0", 55)

	assert.Equal(t, fallbackSeed, deriveSeed(dna))
}

func TestPaletteFor(t *testing.T) {
	require.Equal(t, "#DAA520", PaletteFor("golden").Main)
	assert.Equal(t, PaletteFor("brown"), PaletteFor("does-not-exist"))
}

func TestBackgroundScenes(t *testing.T) {
	scenes := map[string]string{
		"space":      "url(#bg-space)",
		"underwater": "url(#bg-underwater)",
		"heaven":     "url(#bg-heaven)",
		"city":       "url(#bg-city)",
	}

	for scene, fill := range scenes {
		dna := basicDNA()
		dna.Traits[models.CategoryBackground] = models.Trait{
			Category: models.CategoryBackground, Value: scene, Rarity: models.RarityRare,
		}
		dna.DNAHash = dna.ComputeHash()

		svg := Render(dna, 400, 400)
		assert.Contains(t, svg, fill, "scene %s", scene)
	}
}

func TestAccessoryLayerGated(t *testing.T) {
	crowned := basicDNA()
	crowned.Traits[models.CategoryAccessory] = models.Trait{
		Category: models.CategoryAccessory, Value: "crown", Rarity: models.RarityUncommon,
	}
	crowned.DNAHash = crowned.ComputeHash()

	plain := Render(basicDNA(), 400, 400)
	withCrown := Render(crowned, 400, 400)

	assert.NotEqual(t, plain, withCrown)
	assert.Greater(t, len(withCrown), len(plain))
}
