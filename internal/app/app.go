//go:build ebiten

package app

import (
	"image/color"
	"time"

	"raytree/internal/core"
	"raytree/internal/render"
	"raytree/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim       core.Sim
	pacer     *core.Pacer
	committed *render.ImageSurface
	transient *render.ImageSurface
	overlay   *ui.Overlay
	hud       *ui.HUD
	hudWidth  int

	background color.Color

	scale int
	seed  int64

	// OnSettled is called once per run when the simulation stops growing.
	OnSettled func(ticks int)
}

// New constructs a Game for the provided simulation. Simulations that draw
// in layers get an offscreen image per layer.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	pal := render.DefaultPalette()
	g := &Game{
		sim:        sim,
		overlay:    ui.NewOverlay(sim, scale),
		hud:        ui.NewHUD(sim, hudWidth),
		hudWidth:   hudWidth,
		background: pal.Background,
		scale:      scale,
		seed:       seed,
	}
	// The window runs at ebiten's TPS, so the pacer only gates the steps.
	g.pacer = core.NewPacer(sim, ebiten.DefaultTPS)
	g.pacer.OnSettled = func(ticks int) {
		if g.OnSettled != nil {
			g.OnSettled(ticks)
		}
	}
	if layered, ok := sim.(core.Layered); ok {
		g.committed = render.NewImageSurface(size.W, size.H, pal.Committed)
		g.transient = render.NewImageSurface(size.W, size.H, pal.Live)
		layered.AttachLayers(g.committed, g.transient)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.pacer.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pacer.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.pacer.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.pacer.StepOnce()
		return nil
	}
	g.pacer.Tick()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.committed != nil {
		g.committed.Blit(screen, g.scale)
		g.transient.Blit(screen, g.scale)
	}
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + max(g.hudWidth, 0), s.H * g.scale
}
