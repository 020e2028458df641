package visualizer

// Palette is the five-color scheme derived from a lion's body_color trait
type Palette struct {
	Main      string
	Shadow    string
	Highlight string
	Mane      string
	Mane2     string
}

// bodyPalettes maps every recognized body color to its palette.
// Unrecognized colors fall back to defaultBodyColor.
var bodyPalettes = map[string]Palette{
	"brown":       {Main: "#CD853F", Shadow: "#8B4513", Highlight: "#DEB887", Mane: "#8B4513", Mane2: "#6B3410"},
	"tan":         {Main: "#D2B48C", Shadow: "#B8956E", Highlight: "#F4E4C1", Mane: "#A0784C", Mane2: "#7A5A3A"},
	"beige":       {Main: "#F5F5DC", Shadow: "#D4D4B8", Highlight: "#FFFFF0", Mane: "#C8B88A", Mane2: "#A09068"},
	"golden":      {Main: "#DAA520", Shadow: "#B8860B", Highlight: "#FFD700", Mane: "#B8860B", Mane2: "#8B6508"},
	"white":       {Main: "#F8F8F8", Shadow: "#D8D8D8", Highlight: "#FFFFFF", Mane: "#E0D8D0", Mane2: "#C8C0B8"},
	"black":       {Main: "#3A3A3A", Shadow: "#1A1A1A", Highlight: "#5A5A5A", Mane: "#1A1A1A", Mane2: "#0A0A0A"},
	"gray":        {Main: "#A0A0A0", Shadow: "#707070", Highlight: "#C8C8C8", Mane: "#606060", Mane2: "#404040"},
	"silver":      {Main: "#C0C0C0", Shadow: "#909090", Highlight: "#E8E8E8", Mane: "#808080", Mane2: "#606060"},
	"copper":      {Main: "#B87333", Shadow: "#8B5A2B", Highlight: "#DA8A4A", Mane: "#7A4A1A", Mane2: "#5A3A10"},
	"bronze":      {Main: "#CD7F32", Shadow: "#A0622A", Highlight: "#E0A050", Mane: "#7A4A1A", Mane2: "#5A3210"},
	"blue":        {Main: "#4A90D9", Shadow: "#2A6AB0", Highlight: "#7AB8FF", Mane: "#2A5A90", Mane2: "#1A3A60"},
	"purple":      {Main: "#9B59B6", Shadow: "#6C3483", Highlight: "#C39BD3", Mane: "#5B2C6F", Mane2: "#3B1C4F"},
	"green":       {Main: "#5DAE8B", Shadow: "#3D8E6B", Highlight: "#8DD8B0", Mane: "#2D6E4B", Mane2: "#1D4E3B"},
	"pink":        {Main: "#E8829A", Shadow: "#C8627A", Highlight: "#FFB0C8", Mane: "#A84060", Mane2: "#882848"},
	"rainbow":     {Main: "#FFB347", Shadow: "#FF6B6B", Highlight: "#FFFF88", Mane: "#9B59B6", Mane2: "#4A90D9"},
	"galaxy":      {Main: "#2C1654", Shadow: "#1A0A30", Highlight: "#6C3FA0", Mane: "#0D0D2B", Mane2: "#1A0530"},
	"holographic": {Main: "#E0E8F0", Shadow: "#A0D0E0", Highlight: "#F0F8FF", Mane: "#C0A8D8", Mane2: "#90D8C0"},
	"crystal":     {Main: "#D4F1F9", Shadow: "#88CCE8", Highlight: "#EAFBFF", Mane: "#70B8D8", Mane2: "#5098B8"},
}

// PaletteFor resolves a body color value, substituting the brown default
func PaletteFor(bodyColor string) Palette {
	if p, ok := bodyPalettes[bodyColor]; ok {
		return p
	}
	return bodyPalettes[defaultBodyColor]
}

// backgroundFills maps background values to their rect fill.
// Gradient references point at defs emitted by writeDefs.
var backgroundFills = map[string]string{
	"white":          "#FFF5E6",
	"blue_sky":       "url(#bg-sky)",
	"green_grass":    "url(#bg-grass)",
	"sunset":         "url(#bg-sunset)",
	"forest":         "url(#bg-forest)",
	"beach":          "url(#bg-beach)",
	"space":          "url(#bg-space)",
	"underwater":     "url(#bg-underwater)",
	"volcano":        "url(#bg-volcano)",
	"aurora":         "url(#bg-aurora-bg)",
	"multiverse":     "url(#bg-multiverse)",
	"black_hole":     "url(#bg-black-hole)",
	"dimension_rift": "url(#bg-dimension)",
	"heaven":         "url(#bg-heaven)",
	"mountains":      "url(#bg-mountains)",
	"city":           "url(#bg-city)",
}
