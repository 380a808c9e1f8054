package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/pulse-visualization/internal/config"
	"github.com/iburimskiy/pulse-visualization/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Pulse Visualizer - Space: Pause, M: Mute, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
