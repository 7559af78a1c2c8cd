package compile

import (
	"fmt"
	"math/rand/v2"

	"github.com/beevik/etree"

	"lovemedo/project"
)

// Particle counts per overlay kind.
const (
	confettiCount = 30
	heartsCount   = 15
	starsCount    = 15
	bubblesCount  = 20

	fireworksMinBursts = 3
	fireworksMaxBursts = 6
	fireworksMinRays   = 8
	fireworksMaxRays   = 16
)

var confettiPalette = []string{"#ff6b6b", "#feca57", "#48dbfb", "#1dd1a1", "#f368e0", "#ff9ff3", "#54a0ff"}

// Particles generates the decorative animated overlay for a screen.
//
// The overlay is purely additive: it sits on its own absolutely positioned
// layer, never participates in layout and never intercepts pointer events
// (enforced by the .particles stylesheet rules). Per-particle parameters are
// drawn fresh on every call; reproducibility is not a goal.
func Particles(kind project.OverlayKind) *etree.Element {
	if kind == "" || kind == project.OverlayKindNone {
		return nil
	}

	layer := etree.NewElement("div")
	layer.CreateAttr("class", "particles particles-"+kind.String())

	switch kind {
	case project.OverlayKindConfetti:
		for range confettiCount {
			p := particle(layer, "confetti")
			size := 6 + rand.Float64()*6
			style := fmt.Sprintf("left:%.1f%%;width:%.1fpx;height:%.1fpx;background:%s;animation-delay:%.2fs;animation-duration:%.2fs;--drift:%.0fpx",
				rand.Float64()*100, size, size*0.6,
				confettiPalette[rand.IntN(len(confettiPalette))],
				rand.Float64()*5, 3+rand.Float64()*4,
				-60+rand.Float64()*120)
			p.CreateAttr("style", style)
		}

	case project.OverlayKindHearts:
		glyphParticles(layer, "heart", "❤", heartsCount)

	case project.OverlayKindStars:
		glyphParticles(layer, "star", "✦", starsCount)

	case project.OverlayKindBubbles:
		for range bubblesCount {
			p := particle(layer, "bubble")
			size := 8 + rand.Float64()*24
			p.CreateAttr("style", fmt.Sprintf("left:%.1f%%;width:%.1fpx;height:%.1fpx;animation-delay:%.2fs;animation-duration:%.2fs",
				rand.Float64()*100, size, size,
				rand.Float64()*6, 4+rand.Float64()*5))
		}

	case project.OverlayKindFireworks:
		bursts := fireworksMinBursts + rand.IntN(fireworksMaxBursts-fireworksMinBursts+1)
		for range bursts {
			cx, cy := 10+rand.Float64()*80, 10+rand.Float64()*50
			delay := rand.Float64() * 4
			rays := fireworksMinRays + rand.IntN(fireworksMaxRays-fireworksMinRays+1)
			for range rays {
				p := particle(layer, "spark")
				dist := 40 + rand.Float64()*80
				angle := rand.Float64() * 360
				p.CreateAttr("style", fmt.Sprintf("left:%.1f%%;top:%.1f%%;background:%s;animation-delay:%.2fs;--angle:%.0fdeg;--dist:%.0fpx",
					cx, cy,
					confettiPalette[rand.IntN(len(confettiPalette))],
					delay, angle, dist))
			}
		}
	}

	return layer
}

func particle(layer *etree.Element, class string) *etree.Element {
	p := layer.CreateElement("span")
	p.CreateAttr("class", "particle "+class)
	return p
}

func glyphParticles(layer *etree.Element, class, glyph string, count int) {
	for range count {
		p := particle(layer, class)
		p.CreateAttr("style", fmt.Sprintf("left:%.1f%%;font-size:%.1fpx;animation-delay:%.2fs;animation-duration:%.2fs",
			rand.Float64()*100, 12+rand.Float64()*18,
			rand.Float64()*6, 5+rand.Float64()*5))
		p.SetText(glyph)
	}
}
