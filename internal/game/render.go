package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pulse-visualization/internal/config"
)

// baseColor is the surface background the fade pass dims toward.
var baseColor = color.RGBA{R: 8, G: 6, B: 18, A: 255}

// renderer draws the population onto a persistent canvas. Each frame starts
// by dimming the previous frame with a translucent rectangle instead of
// clearing it, which is what leaves the faint motion blur behind every
// pulse.
type renderer struct {
	glow *ebiten.Image
}

func newRenderer() *renderer {
	return &renderer{glow: newGlowImage(config.HeadRadius)}
}

// newGlowImage prerenders the radial gradient for the pulse head: a
// near-opaque core falling to a softer mid stop and a transparent rim. The
// sprite is white so it can be tinted per pulse at draw time.
func newGlowImage(radius int) *ebiten.Image {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - float64(radius) + 0.5
			dy := float64(y) - float64(radius) + 0.5
			t := math.Hypot(dx, dy) / float64(radius)
			if t >= 1 {
				continue
			}
			// Mid stop at 0.45 of the radius, 0.4/0.9 of the core alpha.
			var a float64
			if t < 0.45 {
				a = 1 - (1-0.44)*(t/0.45)
			} else {
				a = 0.44 * (1 - (t-0.45)/0.55)
			}
			v := uint8(a * 255)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func (r *renderer) draw(canvas *ebiten.Image, pop *population) {
	if canvas == nil {
		return
	}
	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}

	fade := baseColor
	fade.A = uint8(config.FadeAlpha * 255)
	vector.DrawFilledRect(canvas, 0, 0, float32(w), float32(h), fade, false)

	for _, p := range pop.pulses {
		r.drawPulse(canvas, p)
	}
}

func (r *renderer) drawPulse(canvas *ebiten.Image, p *pulse) {
	if len(p.trail.pts) >= 2 {
		core := hslColor(p.hue, 0.8, 0.7, p.life*0.7)
		strokeTrail(canvas, p.trail, float32(p.thickness), core)

		// Wider, fainter, fully saturated pass under-glows the line.
		halo := hslColor(p.hue, 1.0, 0.7, p.life*0.2)
		strokeTrail(canvas, p.trail, float32(p.thickness+2), halo)

		head := p.trail.head()
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(head.x-config.HeadRadius, head.y-config.HeadRadius)
		op.ColorScale.ScaleWithColor(hslColor(p.hue, 0.8, 0.7, 1))
		op.ColorScale.ScaleAlpha(float32(p.life * 0.9))
		canvas.DrawImage(r.glow, op)
	}

	for _, b := range p.branches {
		if len(b.trail.pts) < 2 {
			continue
		}
		col := hslColor(p.hue, 0.8, 0.7, b.life*0.5)
		strokeTrail(canvas, b.trail, float32(p.thickness*0.5), col)
	}
}

func strokeTrail(dst *ebiten.Image, t *trail, width float32, col color.Color) {
	for i := 1; i < len(t.pts); i++ {
		a, b := t.pts[i-1], t.pts[i]
		vector.StrokeLine(dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), width, col, true)
	}
}
