package visualizer

import (
	"fmt"
	"math"
	"strings"
)

// writeSpecial draws the full-canvas special-effect overlay on top of the
// lion. "none" and unrecognized values emit nothing.
func writeSpecial(special string, w, h, seed int) string {
	if special == "none" {
		return ""
	}
	var p []string
	cx, cy := w/2, h/2

	switch special {
	case "sparkles":
		for i := 0; i < 10; i++ {
			sx := (seed * (i + 1) * 19) % w
			sy := (seed * (i + 1) * 23) % h
			size := float64(4 + i%5)
			p = append(p, starShape(sx, sy, size, size*0.4, "#FFD700"))
		}

	case "glow":
		p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="100" fill="%s" opacity="0.15" filter="url(#glow)"/>`,
			cx, cy, bodyPalettes["golden"].Highlight))

	case "shadow":
		p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="90" ry="20" fill="#000" opacity="0.2"/>`, cx, cy+100))

	case "aura":
		auraColors := []string{"#FF6B6B", "#FFD93D", "#6BCB77"}
		for i, c := range auraColors {
			r := 130 + i*15
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="2" opacity="0.2"/>`,
				cx, cy, r, c))
		}

	case "particles":
		for i := 0; i < 15; i++ {
			px := (seed * (i + 1) * 29) % w
			py := (seed * (i + 1) * 31) % h
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="#88CCFF" opacity="0.4"/>`,
				px, py, 2+i%3))
		}

	case "energy":
		for i := 0; i < 6; i++ {
			angle := float64(i * 60)
			x2 := cx + int(140*math.Cos(angle*math.Pi/180))
			y2 := cy + int(140*math.Sin(angle*math.Pi/180))
			mx := cx + int(80*math.Cos((angle+15)*math.Pi/180))
			my := cy + int(80*math.Sin((angle+15)*math.Pi/180))
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#00FFFF" stroke-width="1.5" fill="none" opacity="0.3"/>`,
				cx, cy, mx, my, x2, y2))
		}

	case "transcendent", "godlike", "mythical":
		glowColors := map[string]string{
			"transcendent": "#FFFFFF",
			"godlike":      "#FFD700",
			"mythical":     "#9B59B6",
		}
		gc := glowColors[special]
		p = append(p,
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="140" fill="%s" opacity="0.06"/>`, cx, cy, gc),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="120" fill="%s" opacity="0.08"/>`, cx, cy, gc),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="100" fill="%s" opacity="0.06"/>`, cx, cy, gc))
		for i := 0; i < 12; i++ {
			angle := float64(i * 30)
			sx := cx + int(135*math.Cos(angle*math.Pi/180))
			sy := cy + int(135*math.Sin(angle*math.Pi/180))
			p = append(p, starShape(sx, sy, 5, 2, gc))
		}
	}

	return strings.Join(p, "\n")
}

// starShape emits a 5-pointed star polygon centered at (cx, cy)
func starShape(cx, cy int, outer, inner float64, color string) string {
	pts := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		angle := float64(i*36-90) * math.Pi / 180
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, fmt.Sprintf("%.1f,%.1f",
			float64(cx)+r*math.Cos(angle), float64(cy)+r*math.Sin(angle)))
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, strings.Join(pts, " "), color)
}

// heartShape emits a heart path centered near (cx, cy) at the given size
func heartShape(cx, cy int, size float64, color string) string {
	x, y, s := float64(cx), float64(cy), size
	return fmt.Sprintf(`<path d="M%.1f %.1f Q%.1f %.1f %.1f %.1f Q%.1f %.1f %.1f %.1f Q%.1f %.1f %.1f %.1f Q%.1f %.1f %.1f %.1f Z" fill="%s"/>`,
		x, y+s*0.6,
		x-s, y-s*0.2, x-s*0.5, y-s*0.6,
		x, y-s, x, y-s*0.2,
		x, y-s, x+s*0.5, y-s*0.6,
		x+s, y-s*0.2, x, y+s*0.6,
		color)
}
