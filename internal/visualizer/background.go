package visualizer

import (
	"fmt"
	"math"
	"strings"
)

// writeBackground fills the canvas and adds per-scene decoration.
// Decoration positions derive from the DNA seed and a small per-element
// multiplier, so layouts vary between lions but never between renders.
func writeBackground(bg string, w, h int, seed int) string {
	fill, ok := backgroundFills[bg]
	if !ok {
		fill = defaultFill
	}

	p := []string{fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, w, h, fill)}

	switch bg {
	case "blue_sky":
		for i := 0; i < 3; i++ {
			// spans clamp to 1 so tiny canvases never divide by zero
			cx := 60 + (seed+i*137)%max(w-120, 1)
			cy := 30 + (seed+i*53)%80
			p = append(p,
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="40" ry="18" fill="white" opacity="0.7"/>`, cx, cy),
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="30" ry="15" fill="white" opacity="0.6"/>`, cx+25, cy-5))
		}

	case "sunset":
		p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="60" fill="#FFD700" opacity="0.5"/>`, w/2, h/2+40))

	case "green_grass":
		p = append(p, fmt.Sprintf(`<circle cx="%d" cy="50" r="30" fill="#FFD700" opacity="0.8"/>`, w-60))
		for i := 0; i < 8; i++ {
			x := 20 + (seed+i*47)%max(w-40, 1)
			p = append(p, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#5A8A3A" stroke-width="2"/>`,
				x, h, x-5, h-20))
		}

	case "forest":
		for i := 0; i < 5; i++ {
			tx := 30 + (seed+i*71)%max(w-60, 1)
			th := 60 + (seed+i*31)%40
			p = append(p,
				fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="#1A4010" opacity="0.5"/>`,
					tx, h-th, tx-15, h-10, tx+15, h-10),
				fmt.Sprintf(`<rect x="%d" y="%d" width="6" height="15" fill="#5A3A1A" opacity="0.5"/>`,
					tx-3, h-15))
		}

	case "beach":
		p = append(p, fmt.Sprintf(`<path d="M0 %d Q%d %d %d %d T%d %d" stroke="#5DADE2" stroke-width="2" fill="none" opacity="0.5"/>`,
			h/2-10, w/4, h/2-25, w/2, h/2-10, w, h/2-10))

	case "mountains":
		p = append(p,
			fmt.Sprintf(`<polygon points="0,%d 80,%d 160,%d" fill="#6C7A89" opacity="0.6"/>`, h, h-180, h),
			fmt.Sprintf(`<polygon points="100,%d 200,%d 300,%d" fill="#7F8C8D" opacity="0.5"/>`, h, h-220, h),
			fmt.Sprintf(`<polygon points="250,%d 340,%d 400,%d" fill="#6C7A89" opacity="0.6"/>`, h, h-160, h),
			fmt.Sprintf(`<polygon points="65,%d 80,%d 95,%d" fill="white" opacity="0.8"/>`, h-165, h-180, h-165),
			fmt.Sprintf(`<polygon points="180,%d 200,%d 220,%d" fill="white" opacity="0.8"/>`, h-200, h-220, h-200))

	case "city":
		buildings := [][2]int{
			{20, 140}, {60, 180}, {100, 120}, {140, 200}, {180, 150},
			{220, 190}, {260, 130}, {300, 170}, {340, 160}, {370, 140},
		}
		for _, b := range buildings {
			bx, bh := b[0], b[1]
			bw := 30 + (seed+bx)%15
			p = append(p, fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="#0F3460" opacity="0.7"/>`,
				bx, h-bh, bw, bh))
			for wy := h - bh + 10; wy < h-10; wy += 20 {
				for wx := bx + 5; wx < bx+bw-5; wx += 10 {
					windowFill := "#FFD700"
					if (seed+wx+wy)%3 == 0 {
						windowFill = "#1A1A2E"
					}
					p = append(p, fmt.Sprintf(`<rect x="%d" y="%d" width="5" height="8" fill="%s" opacity="0.8"/>`,
						wx, wy, windowFill))
				}
			}
		}

	case "space":
		for i := 0; i < 30; i++ {
			sx := (seed * (i + 1) * 7) % w
			sy := (seed * (i + 1) * 13) % h
			sr := 1 + i%3
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="white" opacity="%s"/>`,
				sx, sy, sr, formatOpacity(0.4+float64(i%5)*0.12)))
		}
		p = append(p,
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="80" fill="#9B59B6" opacity="0.08"/>`, w/3, h/3),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="60" fill="#3498DB" opacity="0.08"/>`, w*2/3, h*2/3))

	case "underwater":
		for i := 0; i < 12; i++ {
			bx := (seed * (i + 1) * 11) % w
			by := (seed * (i + 1) * 17) % h
			br := 3 + i%6
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#80D0E0" stroke-width="1" opacity="0.4"/>`,
				bx, by, br))
		}
		for i := 0; i < 4; i++ {
			sx := 40 + (seed+i*97)%max(w-80, 1)
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Q%d %d %d %d" stroke="#2E8B57" stroke-width="4" fill="none" opacity="0.5"/>`,
				sx, h, sx+10, h-40, sx-5, h-70, sx+15, h-100, sx, h-120))
		}

	case "volcano":
		p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="120" fill="#FF4500" opacity="0.15"/>`, w/2, h))
		for i := 0; i < 8; i++ {
			ex := (seed * (i + 1) * 23) % w
			ey := (seed * (i + 1) * 37) % h
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="2" fill="#FF6347" opacity="0.6"/>`, ex, ey))
		}

	case "aurora":
		bandColors := []string{"#00FF88", "#8800FF", "#00AAFF"}
		for i, color := range bandColors {
			y := 40 + i*50
			p = append(p, fmt.Sprintf(`<path d="M0 %d Q100 %d 200 %d T400 %d" stroke="%s" stroke-width="20" fill="none" opacity="0.15"/>`,
				y, y-30, y+10, y, color))
		}
		for i := 0; i < 15; i++ {
			sx := (seed * (i + 1) * 7) % w
			sy := (seed * (i + 1) * 13) % max(h/2, 1)
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="1.5" fill="white" opacity="0.6"/>`, sx, sy))
		}

	case "heaven":
		for i := 0; i < 5; i++ {
			cx := (seed * (i + 1) * 41) % w
			cy := (seed * (i + 1) * 29) % h
			p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="50" ry="20" fill="white" opacity="0.3"/>`, cx, cy))
		}
		for i := 0; i < 6; i++ {
			angle := float64(i*30 - 75)
			x2 := w/2 + int(200*math.Sin(angle*math.Pi/180))
			y2 := int(200 * math.Cos(angle*math.Pi/180))
			p = append(p, fmt.Sprintf(`<line x1="%d" y1="0" x2="%d" y2="%d" stroke="#FFD700" stroke-width="3" opacity="0.1"/>`,
				w/2, x2, y2))
		}

	case "black_hole":
		p = append(p,
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="180" ry="40" fill="none" stroke="#9B59B6" stroke-width="3" opacity="0.3" transform="rotate(-20 %d %d)"/>`,
				w/2, h/2, w/2, h/2),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="150" ry="30" fill="none" stroke="#FF6B6B" stroke-width="2" opacity="0.2" transform="rotate(-20 %d %d)"/>`,
				w/2, h/2, w/2, h/2))

	case "multiverse":
		for i := 0; i < 3; i++ {
			px := 50 + (seed*(i+1)*43)%max(w-100, 1)
			py := 50 + (seed*(i+1)*67)%max(h-100, 1)
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="25" fill="none" stroke="white" stroke-width="2" opacity="0.2"/>`, px, py))
		}

	case "dimension_rift":
		p = append(p, fmt.Sprintf(`<path d="M%d 0 L%d %d L%d %d L%d %d" stroke="white" stroke-width="3" fill="none" opacity="0.3"/>`,
			w/2, w/2+20, h/3, w/2-10, h*2/3, w/2+5, h))
	}

	return strings.Join(p, "\n")
}

// formatOpacity trims trailing zeros so 0.40 renders as 0.4
func formatOpacity(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
