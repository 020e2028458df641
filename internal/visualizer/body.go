package visualizer

import (
	"fmt"
	"strings"
)

// writeBody draws the mane, ears, head and cheeks, then the pattern
// overlay clipped to the head silhouette
func writeBody(c Palette, pattern string, cx, cy, seed int) string {
	var p []string

	// Mane petals
	for i := 0; i < 16; i++ {
		angle := float64(i) * 22.5
		rx := 130 + (seed+i*7)%20
		ry := 55 + (seed+i*11)%15
		p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="%d" ry="%d" fill="%s" transform="rotate(%s %d %d)" opacity="0.75"/>`,
			cx, cy, rx, ry, c.Mane, formatAngle(angle), cx, cy))
	}

	// Inner mane ring
	p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="110" fill="%s" opacity="0.5"/>`, cx, cy, c.Mane2))

	// Ears
	for _, dx := range []int{-68, 68} {
		ex, ey := cx+dx, cy-68
		p = append(p,
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="22" fill="%s"/>`, ex, ey, c.Main),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="12" fill="%s" opacity="0.5"/>`, ex, ey, c.Highlight))
	}

	// Head
	p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="90" fill="%s" filter="url(#shadow)"/>`, cx, cy, c.Main))

	// Cheeks
	p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="48" ry="38" fill="%s" opacity="0.5"/>`, cx, cy+30, c.Highlight))

	if overlay := writePattern(pattern, cx, cy, c, seed); overlay != "" {
		p = append(p, overlay)
	}

	return strings.Join(p, "\n")
}

// writePattern draws the pattern overlay for the head. Solid and unknown
// "none" patterns emit nothing; anything else unrecognized gets the
// rosette fallback so rendering never fails.
func writePattern(pattern string, cx, cy int, c Palette, seed int) string {
	if pattern == "solid" || pattern == "none" {
		return ""
	}

	p := []string{`<g clip-path="url(#body-clip)" opacity="0.3">`}
	dark := c.Shadow

	switch pattern {
	case "spots":
		for i := 0; i < 12; i++ {
			sx := cx - 60 + (seed*(i+1)*13)%120
			sy := cy - 60 + (seed*(i+1)*17)%120
			sr := 5 + (seed+i)%8
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, sx, sy, sr, dark))
		}

	case "stripes":
		for i := 0; i < 7; i++ {
			y := cy - 70 + i*24
			p = append(p, fmt.Sprintf(`<rect x="%d" y="%d" width="170" height="8" rx="4" fill="%s"/>`, cx-85, y, dark))
		}

	case "gradient":
		p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="88" ry="60" fill="%s" opacity="0.25"/>`, cx, cy+40, dark))

	case "swirls":
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d T%d %d" stroke="%s" stroke-width="4" fill="none"/>`,
				cx-40, cy, cx-20, cy-40, cx, cy, cx+40, cy, dark),
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="3" fill="none"/>`,
				cx-30, cy+20, cx, cy-10, cx+30, cy+20, dark))

	case "stars":
		for i := 0; i < 8; i++ {
			sx := cx - 50 + (seed*(i+1)*19)%100
			sy := cy - 50 + (seed*(i+1)*23)%100
			p = append(p, starShape(sx, sy, 6, 3, dark))
		}

	case "hearts":
		for i := 0; i < 6; i++ {
			hx := cx - 45 + (seed*(i+1)*31)%90
			hy := cy - 45 + (seed*(i+1)*37)%90
			p = append(p, heartShape(hx, hy, 8, dark))
		}

	case "diamonds":
		for i := 0; i < 8; i++ {
			dx := cx - 50 + (seed*(i+1)*41)%100
			dy := cy - 50 + (seed*(i+1)*43)%100
			s := 8
			p = append(p, fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d %d,%d" fill="%s"/>`,
				dx, dy-s, dx+s, dy, dx, dy+s, dx-s, dy, dark))
		}

	case "fractals":
		for i := 0; i < 10; i++ {
			fx := cx - 50 + (seed*(i+1)*47)%100
			fy := cy - 50 + (seed*(i+1)*53)%100
			s := 6 + i%5
			p = append(p, fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s" opacity="0.6"/>`,
				fx, fy-s, fx+s, fy+s, fx-s, fy+s, dark))
		}

	case "nebula":
		nebulaColors := []string{"#9B59B6", "#3498DB", "#E74C3C", "#2ECC71"}
		for i, col := range nebulaColors {
			nx := cx - 40 + (seed*(i+1)*59)%80
			ny := cy - 40 + (seed*(i+1)*61)%80
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s" opacity="0.15"/>`,
				nx, ny, 15+i*5, col))
		}

	case "lightning":
		p = append(p, fmt.Sprintf(`<path d="M%d %d L%d %d L%d %d L%d %d" stroke="#FFD700" stroke-width="3" fill="none"/>`,
			cx-20, cy-60, cx-5, cy-10, cx-15, cy-10, cx+10, cy+50))

	case "flames":
		for i := 0; i < 5; i++ {
			fx := cx - 30 + i*15
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Q%d %d %d %d" stroke="#FF4500" stroke-width="2" fill="none" opacity="0.6"/>`,
				fx, cy+60, fx+5, cy+20, fx-3, cy+10, fx+8, cy-10, fx+2, cy-20))
		}

	case "aurora", "quantum", "cosmic_dust", "void":
		luminous := map[string][]string{
			"aurora":      {"#00FF88", "#8800FF", "#00AAFF"},
			"quantum":     {"#00FFFF", "#FF00FF", "#FFFF00"},
			"cosmic_dust": {"#FFD700", "#FF69B4", "#87CEEB"},
			"void":        {"#2C003E", "#000000", "#1A001A"},
		}
		for i, col := range luminous[pattern] {
			ny := cy - 30 + i*30
			p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="80" ry="20" fill="%s" opacity="0.15"/>`,
				cx, ny, col))
		}

	default:
		// Rosettes and any unrecognized pattern
		for i := 0; i < 8; i++ {
			rx := cx - 50 + (seed*(i+1)*67)%100
			ry := cy - 50 + (seed*(i+1)*71)%100
			r := 8 + i%5
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="2"/>`,
				rx, ry, r, dark))
		}
	}

	p = append(p, "</g>")
	return strings.Join(p, "\n")
}

// formatAngle renders rotation angles without a trailing ".0"
func formatAngle(a float64) string {
	if a == float64(int(a)) {
		return fmt.Sprintf("%d", int(a))
	}
	return fmt.Sprintf("%.1f", a)
}
