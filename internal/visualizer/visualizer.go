package visualizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forklion/forklion-api/internal/models"
)

const (
	// Defaults substituted for absent or unrecognized trait values so a
	// lion is always displayable
	defaultBodyColor = "brown"
	defaultFill      = "#FFF5E6"
	defaultThumbnail = 100
	seedHexPrefixLen = 8
	fallbackSeed     = 12345
	headRadius       = 88
)

// traitSet is the flattened view of the six trait values used for one render
type traitSet struct {
	bodyColor  string
	expression string
	accessory  string
	pattern    string
	background string
	special    string
}

// Render produces a self-contained SVG document for the given DNA.
// It is a pure function of (dna, width, height): identical inputs yield
// byte-identical output, and it never fails for a structurally valid record.
func Render(dna *models.LionDNA, width, height int) string {
	// Degenerate canvases clamp to 1px so modulus placement stays defined
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	t := traitSet{
		bodyColor:  dna.TraitValue(models.CategoryBodyColor),
		expression: dna.TraitValue(models.CategoryFaceExpression),
		accessory:  dna.TraitValue(models.CategoryAccessory),
		pattern:    dna.TraitValue(models.CategoryPattern),
		background: dna.TraitValue(models.CategoryBackground),
		special:    dna.TraitValue(models.CategorySpecial),
	}

	seed := deriveSeed(dna)
	cx, cy := width/2, height/2
	colors := PaletteFor(t.bodyColor)

	parts := []string{
		fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
			width, height, width, height),
		writeDefs(t, width, height),
		writeBackground(t.background, width, height, seed),
		writeBody(colors, t.pattern, cx, cy, seed),
		writeFace(t.expression, cx, cy),
		writeAccessory(t.accessory, cx, cy),
		writeSpecial(t.special, width, height, seed),
		"</svg>",
	}
	return strings.Join(parts, "\n")
}

// RenderThumbnail renders a square image at the given size (default 100)
func RenderThumbnail(dna *models.LionDNA, size int) string {
	if size <= 0 {
		size = defaultThumbnail
	}
	return Render(dna, size, size)
}

// deriveSeed parses the first 8 hex chars of the content hash as base-16.
// Same traits produce the same hash, so renders stay reproducible.
func deriveSeed(dna *models.LionDNA) int {
	if len(dna.DNAHash) < seedHexPrefixLen {
		return fallbackSeed
	}
	v, err := strconv.ParseInt(dna.DNAHash[:seedHexPrefixLen], 16, 64)
	if err != nil {
		return fallbackSeed
	}
	return int(v)
}

// writeDefs emits the filters, gradients and clip paths referenced by the
// later layers. The rainbow mane gradient is only emitted for rainbow lions.
func writeDefs(t traitSet, w, h int) string {
	d := []string{"<defs>"}

	d = append(d,
		`<filter id="shadow" x="-20%" y="-20%" width="140%" height="140%"><feDropShadow dx="2" dy="4" stdDeviation="3" flood-opacity="0.3"/></filter>`,
		`<filter id="glow"><feGaussianBlur in="SourceGraphic" stdDeviation="8" result="blur"/><feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge></filter>`,
		`<filter id="glow-strong"><feGaussianBlur in="SourceGraphic" stdDeviation="15" result="blur"/><feMerge><feMergeNode in="blur"/><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge></filter>`,
	)

	d = append(d,
		`<linearGradient id="bg-sky" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#87CEEB"/><stop offset="100%" stop-color="#E0F4FF"/></linearGradient>`,
		`<linearGradient id="bg-sunset" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#FF4500"/><stop offset="40%" stop-color="#FF8C00"/><stop offset="100%" stop-color="#FFD700"/></linearGradient>`,
		`<linearGradient id="bg-forest" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#2D5016"/><stop offset="100%" stop-color="#4A7A2E"/></linearGradient>`,
		`<linearGradient id="bg-grass" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#87CEEB"/><stop offset="60%" stop-color="#87CEEB"/><stop offset="60%" stop-color="#7CCD7C"/><stop offset="100%" stop-color="#4A8B3F"/></linearGradient>`,
		`<linearGradient id="bg-beach" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#87CEEB"/><stop offset="50%" stop-color="#87CEEB"/><stop offset="50%" stop-color="#F4D03F"/><stop offset="100%" stop-color="#E8C430"/></linearGradient>`,
		`<linearGradient id="bg-space" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#0B0B2B"/><stop offset="100%" stop-color="#1A1A4A"/></linearGradient>`,
		`<linearGradient id="bg-underwater" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#006994"/><stop offset="100%" stop-color="#003050"/></linearGradient>`,
		`<linearGradient id="bg-volcano" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#1A0A00"/><stop offset="60%" stop-color="#4A1A00"/><stop offset="100%" stop-color="#FF4500"/></linearGradient>`,
		`<linearGradient id="bg-aurora-bg" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" stop-color="#0B1A30"/><stop offset="33%" stop-color="#1A4A3A"/><stop offset="66%" stop-color="#2A1A5A"/><stop offset="100%" stop-color="#0B1A30"/></linearGradient>`,
		`<linearGradient id="bg-multiverse" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" stop-color="#FF006E"/><stop offset="25%" stop-color="#8338EC"/><stop offset="50%" stop-color="#3A86FF"/><stop offset="75%" stop-color="#06D6A0"/><stop offset="100%" stop-color="#FFD166"/></linearGradient>`,
		`<radialGradient id="bg-black-hole" cx="50%" cy="50%" r="50%"><stop offset="0%" stop-color="#000000"/><stop offset="60%" stop-color="#1A0530"/><stop offset="100%" stop-color="#4A1A70"/></radialGradient>`,
		`<linearGradient id="bg-dimension" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" stop-color="#FF0080"/><stop offset="50%" stop-color="#0000FF"/><stop offset="100%" stop-color="#00FF80"/></linearGradient>`,
		`<linearGradient id="bg-heaven" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#FFFDE0"/><stop offset="100%" stop-color="#FFF8E1"/></linearGradient>`,
		`<linearGradient id="bg-mountains" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#87CEEB"/><stop offset="100%" stop-color="#B0C4DE"/></linearGradient>`,
		`<linearGradient id="bg-city" x1="0%" y1="0%" x2="0%" y2="100%"><stop offset="0%" stop-color="#1A1A2E"/><stop offset="100%" stop-color="#16213E"/></linearGradient>`,
	)

	d = append(d, fmt.Sprintf(`<clipPath id="body-clip"><circle cx="%d" cy="%d" r="%d"/></clipPath>`,
		w/2, h/2, headRadius))

	if t.bodyColor == "rainbow" {
		d = append(d, `<linearGradient id="rainbow-mane" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" stop-color="#FF6B6B"/><stop offset="20%" stop-color="#FFB347"/><stop offset="40%" stop-color="#FFFF88"/><stop offset="60%" stop-color="#88FF88"/><stop offset="80%" stop-color="#88BBFF"/><stop offset="100%" stop-color="#BB88FF"/></linearGradient>`)
	}

	d = append(d, "</defs>")
	return strings.Join(d, "\n")
}
