package visualizer

import (
	"fmt"
	"strings"
)

// writeAccessory draws the accessory anchored to head-relative coordinates.
// "none" and unrecognized values emit nothing.
func writeAccessory(acc string, cx, cy int) string {
	if acc == "none" {
		return ""
	}
	var p []string

	switch acc {
	case "crown", "golden_crown":
		color, stroke := "#FFD700", "#B8860B"
		if acc == "golden_crown" {
			color, stroke = "#FFC800", "#DAA520"
		}
		y := cy - 95
		p = append(p, fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d %d,%d %d,%d %d,%d %d,%d %d,%d %d,%d" fill="%s" stroke="%s" stroke-width="1.5"/>`,
			cx-30, y+20, cx-30, y, cx-18, y+12, cx-6, y-5, cx, y+8, cx+6, y-5, cx+18, y+12, cx+30, y, cx+30, y+20,
			color, stroke))
		if acc == "golden_crown" {
			for _, jx := range []int{-15, 0, 15} {
				p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="#FF0040"/>`, cx+jx, y+8))
			}
		}

	case "sunglasses":
		y := cy - 14
		p = append(p,
			fmt.Sprintf(`<rect x="%d" y="%d" width="28" height="18" rx="4" fill="#111" opacity="0.85"/>`, cx-46, y-10),
			fmt.Sprintf(`<rect x="%d" y="%d" width="28" height="18" rx="4" fill="#111" opacity="0.85"/>`, cx+18, y-10),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="2"/>`, cx-18, y, cx+18, y),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="2"/>`, cx-46, y-4, cx-60, y-10),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="2"/>`, cx+46, y-4, cx+60, y-10))

	case "monocle":
		y := cy - 12
		p = append(p,
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="16" fill="none" stroke="#B8860B" stroke-width="2"/>`, cx+30, y),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#B8860B" stroke-width="1"/>`, cx+30, y+16, cx+25, cy+60),
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="white" stroke-width="1" fill="none" opacity="0.5"/>`,
				cx+24, y-8, cx+28, y-12, cx+34, y-8))

	case "bow":
		y := cy - 85
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Z" fill="#FF69B4"/>`, cx+35, y, cx+55, y-15, cx+55, y+15),
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Z" fill="#FF69B4"/>`, cx+35, y, cx+15, y-15, cx+15, y+15),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="4" fill="#FF1493"/>`, cx+35, y))

	case "simple_hat":
		y := cy - 95
		p = append(p,
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="55" ry="10" fill="#8B4513"/>`, cx, y+20),
			fmt.Sprintf(`<rect x="%d" y="%d" width="60" height="30" rx="5" fill="#A0522D"/>`, cx-30, y-10))

	case "bandana":
		y := cy - 80
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#D32F2F" stroke-width="8" fill="none"/>`,
				cx-60, y, cx, y+15, cx+60, y),
			fmt.Sprintf(`<path d="M%d %d L%d %d L%d %d" fill="#D32F2F"/>`,
				cx+50, y+2, cx+65, y+20, cx+55, y+22))

	case "headphones":
		y := cy - 20
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Q%d %d %d %d" stroke="#333" stroke-width="5" fill="none"/>`,
				cx-65, y, cx-65, cy-85, cx, cy-90, cx+65, cy-85, cx+65, y),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="12" ry="16" fill="#444"/>`, cx-68, y+5),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="12" ry="16" fill="#444"/>`, cx+68, y+5))

	case "scarf":
		y := cy + 70
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#E74C3C" stroke-width="12" fill="none" stroke-linecap="round"/>`,
				cx-50, y, cx, y+15, cx+50, y),
			fmt.Sprintf(`<path d="M%d %d L%d %d L%d %d" fill="#C0392B"/>`,
				cx+40, y+5, cx+35, y+35, cx+50, y+30))

	case "earring":
		p = append(p,
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="5" fill="#FFD700" stroke="#B8860B" stroke-width="1"/>`, cx+72, cy-55),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="#FFD700"/>`, cx+72, cy-45))

	case "laser_eyes":
		y := cy - 12
		p = append(p,
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#FF0000" stroke-width="3" opacity="0.7"/>`,
				cx-30, y, cx-120, y+40),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#FF0000" stroke-width="3" opacity="0.7"/>`,
				cx+30, y, cx+120, y+40),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="6" fill="#FF0000" opacity="0.5"/>`, cx-30, y),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="6" fill="#FF0000" opacity="0.5"/>`, cx+30, y))

	case "halo":
		y := cy - 105
		p = append(p,
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="45" ry="12" fill="none" stroke="#FFD700" stroke-width="3" opacity="0.8"/>`, cx, y),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="45" ry="12" fill="#FFD700" opacity="0.1"/>`, cx, y))

	case "horns":
		for _, side := range []int{-1, 1} {
			hx := cx + side*55
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#4A2800" stroke-width="8" fill="none" stroke-linecap="round"/>`,
				hx, cy-75, hx+side*25, cy-120, hx+side*15, cy-130))
		}

	case "wizard_hat":
		y := cy - 90
		p = append(p,
			fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="#2C3E80"/>`,
				cx, y-80, cx-45, y+10, cx+45, y+10),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="55" ry="10" fill="#1A2550"/>`, cx, y+10),
			starShape(cx-10, y-30, 5, 2.5, "#FFD700"),
			starShape(cx+15, y-50, 4, 2, "#FFD700"))

	case "diamond_chain":
		y := cy + 65
		for i := 0; i < 7; i++ {
			dx := cx - 42 + i*14
			s := 5
			p = append(p, fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d %d,%d" fill="#87CEEB" stroke="#4A90D9" stroke-width="0.5"/>`,
				dx, y-s, dx+s, y, dx, y+s, dx-s, y))
		}
		p = append(p, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#B8B8B8" stroke-width="1.5"/>`,
			cx-48, y, cx+48, y))

	case "jetpack":
		for _, side := range []int{-1, 1} {
			jx := cx + side*85
			p = append(p,
				fmt.Sprintf(`<rect x="%d" y="%d" width="16" height="40" rx="4" fill="#666"/>`, jx-8, cy-20),
				fmt.Sprintf(`<rect x="%d" y="%d" width="10" height="8" rx="2" fill="#FF4500"/>`, jx-5, cy+20),
				fmt.Sprintf(`<path d="M%d %d L%d %d L%d %d" fill="#FF6B00" opacity="0.6"/>`,
					jx-4, cy+28, jx, cy+50, jx+4, cy+28))
		}

	case "wings":
		for _, side := range []int{-1, 1} {
			wx := cx + side*80
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d Q%d %d %d %d" fill="white" stroke="#D0D0D0" stroke-width="1" opacity="0.7"/>`,
				cx+side*60, cy-10, wx+side*40, cy-60, wx+side*30, cy-80, wx+side*20, cy-40, cx+side*60, cy+20))
		}
	}

	return strings.Join(p, "\n")
}
