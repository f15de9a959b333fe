package gesture

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor color.Color

	// Update runs after touch input was polled and animations advanced.
	Update func() error
	// Draw renders the frame after the screen was cleared.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and drives scene from Ebitengine's game loop: every tick
// it polls touch input into surface, then advances the scene's animations.
// It blocks until the window is closed or Update returns an error.
func Run(scene *Scene, surface *Surface, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runner{
		scene:  scene,
		source: NewEbitenSource(surface),
		cfg:    cfg,
	})
}

type runner struct {
	scene  *Scene
	source *EbitenSource
	cfg    RunConfig
}

func (r *runner) Update() error {
	r.source.Poll()
	r.scene.Update(tickSeconds(ebiten.TPS()))
	if r.cfg.Update != nil {
		return r.cfg.Update()
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	if r.cfg.ClearColor != nil {
		screen.Fill(r.cfg.ClearColor)
	}
	if r.cfg.Draw != nil {
		r.cfg.Draw(screen)
	}
	if r.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			0, r.cfg.Height-32)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}

// tickSeconds converts a ticks-per-second setting to a frame delta. Ebitengine
// reports a non-positive TPS when ticks follow the display rate.
func tickSeconds(tps int) float32 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float32(tps)
}
