package game

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pulse-visualization/internal/config"
)

// Game runs the animation loop: Update advances the population once per
// frame, Draw accumulates the pulses onto a persistent canvas and
// composites it additively over the background.
type Game struct {
	pop      *population
	renderer *renderer
	canvas   *ebiten.Image

	width, height int

	// audio
	synth   *crackle
	ctrl    *beep.Ctrl
	audioOn bool

	// background image, blended under the additive canvas
	background *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	paused  bool
	lastErr error
}

func New() *Game {
	g := &Game{
		pop:      newPopulation(rand.New(rand.NewSource(time.Now().UnixNano()))),
		renderer: newRenderer(),
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		prevKey:  map[ebiten.Key]bool{},
	}
	g.pop.populate(config.InitialPulses, float64(g.width), float64(g.height))
	g.startAudio()
	return g
}

func (g *Game) startAudio() {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		g.lastErr = err
		return
	}
	g.synth = newCrackle()
	g.ctrl = &beep.Ctrl{Streamer: g.synth}
	speaker.Play(g.ctrl)
	g.audioOn = true
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openBackgroundDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.paused || g.width <= 0 || g.height <= 0 {
		return nil
	}

	w, h := float64(g.width), float64(g.height)
	g.pop.tick(w, h)
	g.pop.maybeSpawn(w, h)

	if g.synth != nil {
		g.synth.setIntensity(float64(g.pop.branchCount()) / float64(config.MaxPulses*config.MaxBranches))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureCanvas()
	g.renderer.draw(g.canvas, g.pop)

	screen.Fill(baseColor)

	if g.background != nil {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		bw, bh := g.background.Bounds().Dx(), g.background.Bounds().Dy()
		if bw > 0 && bh > 0 {
			op.GeoM.Scale(float64(g.width)/float64(bw), float64(g.height)/float64(bh))
		}
		screen.DrawImage(g.background, op)
	}

	if g.canvas != nil {
		op := &ebiten.DrawImageOptions{}
		// Overlapping sparks brighten instead of occluding.
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(g.canvas, op)
	}

	g.drawButton(screen)

	status := "Running - Space: pause, M: mute, Esc/Q: quit"
	if g.paused {
		status = "Paused - Space to resume"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// ensureCanvas rebuilds the drawing surface when the viewport size changed.
// The accumulated trails are dropped; pulses keep their coordinates, so any
// now outside the new bounds decay out through the normal margin rule.
func (g *Game) ensureCanvas() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.canvas.Fill(baseColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = outsideWidth
		g.height = outsideHeight
	}
	return g.width, g.height
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.applyAudioState()
}

func (g *Game) toggleMute() {
	g.audioOn = !g.audioOn
	g.applyAudioState()
}

func (g *Game) applyAudioState() {
	if g.ctrl == nil {
		return
	}
	speaker.Lock()
	g.ctrl.Paused = g.paused || !g.audioOn
	speaker.Unlock()
}

func (g *Game) openBackgroundDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Background Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadBackground(filename)
}

func (g *Game) loadBackground(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}
	g.background = ebiten.NewImageFromImage(img)
	return nil
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, borderColor, false)

	text := "Open Image"
	textWidth := len(text) * 8 // Approximate character width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight+8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
