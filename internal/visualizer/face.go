package visualizer

import (
	"fmt"
	"strings"
)

const faceInk = "#3E2723"

// writeFace draws expression-specific eyes, the nose, an expression-specific
// mouth and the whiskers. Unrecognized expressions get the default eye/mouth
// branch, never an error.
func writeFace(expr string, cx, cy int) string {
	var p []string
	eyeY := cy - 12

	switch expr {
	case "sleepy":
		p = append(p,
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000" stroke-width="3" stroke-linecap="round"/>`,
				cx-40, eyeY, cx-20, eyeY),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000" stroke-width="3" stroke-linecap="round"/>`,
				cx+20, eyeY, cx+40, eyeY))

	case "surprised":
		for _, dx := range []int{-30, 30} {
			p = append(p,
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="14" fill="white" stroke="#000" stroke-width="2"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="6" fill="#000"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="2" fill="white"/>`, cx+dx+2, eyeY-3))
		}

	case "winking":
		p = append(p,
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="11" ry="10" fill="#FFD700"/>`, cx-30, eyeY),
			fmt.Sprintf(`<circle cx="%d" cy="%d" r="4" fill="#000"/>`, cx-30, eyeY),
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#000" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
				cx+20, eyeY, cx+30, eyeY-8, cx+40, eyeY))

	case "angry":
		for _, dx := range []int{-30, 30} {
			p = append(p,
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="11" ry="8" fill="#FF4444"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="4" fill="#000"/>`, cx+dx, eyeY))
		}
		p = append(p,
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000" stroke-width="3" stroke-linecap="round"/>`,
				cx-42, eyeY-14, cx-18, eyeY-20),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000" stroke-width="3" stroke-linecap="round"/>`,
				cx+42, eyeY-14, cx+18, eyeY-20))

	case "cool":
		for _, dx := range []int{-30, 30} {
			p = append(p,
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="12" ry="7" fill="#FFD700"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" r="4" fill="#000"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000" stroke-width="2"/>`,
					cx+dx-14, eyeY-8, cx+dx+14, eyeY-8))
		}

	case "zen", "enlightened", "cosmic", "divine":
		for _, dx := range []int{-30, 30} {
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#000" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
				cx+dx-12, eyeY, cx+dx, eyeY-10, cx+dx+12, eyeY))
		}
		if expr == "enlightened" || expr == "divine" {
			// Third eye
			p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="4" fill="#FFD700" opacity="0.7"/>`, cx, eyeY-25))
		}
		if expr == "cosmic" {
			for _, dx := range []int{-30, 30} {
				p = append(p, fmt.Sprintf(`<circle cx="%d" cy="%d" r="2" fill="#FFD700" opacity="0.5"/>`, cx+dx, eyeY+4))
			}
		}

	case "laughing":
		for _, dx := range []int{-30, 30} {
			p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="#000" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
				cx+dx-12, eyeY+2, cx+dx, eyeY-10, cx+dx+12, eyeY+2))
		}

	case "legendary":
		for _, dx := range []int{-30, 30} {
			p = append(p,
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="12" fill="#FFD700" opacity="0.4"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="8" fill="#FFF"/>`, cx+dx, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="4" fill="#FFD700"/>`, cx+dx, eyeY))
		}

	default:
		// happy / neutral / curious / excited / mischievous / wise / fierce
		// and anything unrecognized
		eyeColor := "#FFD700"
		pupilR := 4
		switch expr {
		case "fierce":
			eyeColor = "#FF6600"
			pupilR = 3
		case "excited":
			pupilR = 5
		case "mischievous":
			eyeColor = "#88DD44"
		}

		for _, dx := range []int{-30, 30} {
			p = append(p,
				fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="12" ry="10" fill="%s"/>`, cx+dx, eyeY, eyeColor),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="#000"/>`, cx+dx, eyeY, pupilR),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="2" fill="white" opacity="0.7"/>`, cx+dx+2, eyeY-2))
		}

		if expr == "wise" {
			p = append(p,
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="14" fill="none" stroke="#000" stroke-width="1" opacity="0.3"/>`, cx-30, eyeY),
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="14" fill="none" stroke="#000" stroke-width="1" opacity="0.3"/>`, cx+30, eyeY))
		}
	}

	// Nose
	noseY := cy + 20
	p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d L%d %d Z" fill="%s"/>`,
		cx-12, noseY, cx, noseY-8, cx+12, noseY, cx, noseY+12, faceInk))

	// Mouth
	mouthY := noseY + 18
	switch expr {
	case "happy", "excited":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
			cx-22, mouthY, cx, mouthY+18, cx+22, mouthY, faceInk))
	case "angry", "fierce":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
			cx-22, mouthY+8, cx, mouthY-8, cx+22, mouthY+8, faceInk))
		if expr == "fierce" {
			p = append(p,
				fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="white" stroke="%s" stroke-width="0.5"/>`,
					cx-12, mouthY, cx-9, mouthY+10, cx-6, mouthY, faceInk),
				fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="white" stroke="%s" stroke-width="0.5"/>`,
					cx+6, mouthY, cx+9, mouthY+10, cx+12, mouthY, faceInk))
		}
	case "surprised":
		p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="10" ry="12" fill="%s"/>`, cx, mouthY+5, faceInk))
	case "sleepy":
		p = append(p, fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="8" ry="6" fill="%s" opacity="0.6"/>`, cx, mouthY+2, faceInk))
	case "laughing":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2" fill="%s" opacity="0.5"/>`,
			cx-25, mouthY-2, cx, mouthY+25, cx+25, mouthY-2, faceInk, faceInk))
	case "mischievous":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
			cx-15, mouthY+2, cx+5, mouthY+10, cx+22, mouthY-4, faceInk))
	case "cool":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2" fill="none" stroke-linecap="round"/>`,
			cx-18, mouthY+2, cx, mouthY+10, cx+18, mouthY, faceInk))
	case "zen", "enlightened", "cosmic", "divine", "legendary":
		p = append(p, fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2" fill="none" stroke-linecap="round"/>`,
			cx-15, mouthY, cx, mouthY+8, cx+15, mouthY, faceInk))
	case "winking":
		p = append(p,
			fmt.Sprintf(`<path d="M%d %d Q%d %d %d %d" stroke="%s" stroke-width="2.5" fill="none" stroke-linecap="round"/>`,
				cx-20, mouthY, cx, mouthY+14, cx+20, mouthY, faceInk),
			fmt.Sprintf(`<ellipse cx="%d" cy="%d" rx="5" ry="4" fill="#E88090"/>`, cx+5, mouthY+8))
	default:
		p = append(p, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-linecap="round"/>`,
			cx-15, mouthY, cx+15, mouthY, faceInk))
	}

	// Whiskers, always present
	for _, side := range []int{-1, 1} {
		for _, wy := range []int{-5, 5} {
			p = append(p, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1" opacity="0.3"/>`,
				cx+side*30, noseY+wy, cx+side*70, noseY+wy+side*3, faceInk))
		}
	}

	return strings.Join(p, "\n")
}
