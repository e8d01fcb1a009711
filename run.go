package foyer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays an FPS/TPS counter in the top-left corner.
	ShowFPS bool
}

// game adapts update/draw callbacks to ebiten.Game.
type game struct {
	cfg    RunConfig
	update func(dt float64) error
	draw   func(screen *ebiten.Image)

	fpsText  string
	fpsAccum float64
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.ShowFPS {
		// Refresh the readout every ~0.5s so it stays readable.
		g.fpsAccum += dt
		if g.fpsAccum >= 0.5 || g.fpsText == "" {
			g.fpsAccum = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	if g.update != nil {
		return g.update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.draw != nil {
		g.draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run creates a window and game loop around the given callbacks. update
// receives the tick delta in seconds; a typical update calls Shell.Update(dt)
// and returns nil. Blocks until the window closes or update returns an error.
//
// For full control, implement ebiten.Game yourself and call Shell.Update
// directly.
func Run(update func(dt float64) error, draw func(screen *ebiten.Image), cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{cfg: cfg, update: update, draw: draw})
}
