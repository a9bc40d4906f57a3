package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/nbody-trails/simulation"
	"github.com/olivierh59500/nbody-trails/telemetry"
)

// Rendering and input constants
const (
	GStepPerTick   = 0.02 // decades of G per tick while an arrow key is held
	TrailWidth     = 1.0
	OrbitWidth     = 1.0
	PublishTimeout = 50 * time.Millisecond // upper bound on a per-tick publish
)

var orbitColor = color.RGBA{0x40, 0x40, 0x50, 0xff}

// Game is the Ebitengine host around a simulation.World. It only reads the
// world in Draw; every mutation happens in Update.
type Game struct {
	World      *simulation.World
	Width      int
	Height     int
	TPS        int
	Paused     bool
	ShowTrails bool

	screenshotDir     string
	screenshotPending bool
	starfield         *ebiten.Image
	seed              int64
	last              time.Time
	now               func() time.Time
	pub               telemetry.Publisher
	logger            log.Logger
}

// NewGame wires a world to the window.
func NewGame(cfg appConfig, world *simulation.World, pub telemetry.Publisher, logger log.Logger) *Game {
	if pub == nil {
		pub = telemetry.Nop{}
	}
	return &Game{
		World:         world,
		Width:         cfg.Width,
		Height:        cfg.Height,
		TPS:           cfg.TPS,
		ShowTrails:    cfg.ShowTrails,
		screenshotDir: cfg.ScreenshotDir,
		seed:          cfg.Sim.Seed,
		now:           time.Now,
		pub:           pub,
		logger:        log.With(logger, "component", "game"),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()

	dt := g.elapsed()
	if g.Paused {
		return nil
	}
	g.World.Step(dt)
	g.publish()
	return nil
}

// publish hands the world to the publisher without letting a slow broker
// stall the frame.
func (g *Game) publish() {
	ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
	defer cancel()
	if err := g.pub.Publish(ctx, g.World); err != nil {
		level.Warn(g.logger).Log("msg", "publish failed", "err", err)
	}
}

// elapsed returns the wall time since the previous tick, falling back to the
// nominal tick length on the first one.
func (g *Game) elapsed() float64 {
	now := g.now()
	defer func() { g.last = now }()
	if g.last.IsZero() {
		return 1 / float64(g.TPS)
	}
	return now.Sub(g.last).Seconds()
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.World.AddParticle(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.World.LoadSolarSystem(g.center())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.World.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.ShowTrails = !g.ShowTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.screenshotPending = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.World.ScaleG(GStepPerTick)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.World.ScaleG(-GStepPerTick)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) || inpututil.IsKeyJustReleased(ebiten.KeyArrowDown) {
		level.Info(g.logger).Log("msg", "gravity set", "g", g.World.G)
	}
}

func (g *Game) center() r2.Vec {
	return r2.Vec{X: float64(g.Width) / 2, Y: float64(g.Height) / 2}
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if g.starfield == nil || g.starfield.Bounds().Dx() != g.Width || g.starfield.Bounds().Dy() != g.Height {
		g.starfield = newStarfieldImage(g.Width, g.Height, g.seed)
	}
	screen.DrawImage(g.starfield, nil)

	w, h := float64(g.Width), float64(g.Height)
	for _, b := range g.World.Bodies {
		if b.Orbit == nil {
			continue
		}
		if c := g.World.Body(b.Orbit.Center); c != nil {
			vector.StrokeCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(b.Orbit.Radius), OrbitWidth, orbitColor, true)
		}
	}

	if g.ShowTrails {
		for i, b := range g.World.Bodies {
			col := trailColor(b, i)
			pts := b.Trail.Points()
			for j := 1; j < len(pts); j++ {
				prev, curr := pts[j-1], pts[j]
				if !onScreen(prev, w, h, 1) && !onScreen(curr, w, h, 1) {
					continue
				}
				vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(curr.X), float32(curr.Y), TrailWidth, col, true)
			}
		}
	}

	for i, b := range g.World.Bodies {
		if !onScreen(b.Pos, w, h, b.Radius) {
			continue
		}
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), bodyColor(b, i), true)
	}

	// Capture before the HUD so exported images show only the scene.
	if g.screenshotPending {
		g.screenshotPending = false
		if path, err := saveScreenshot(screen, g.screenshotDir, g.now()); err != nil {
			level.Error(g.logger).Log("msg", "screenshot failed", "err", err)
		} else {
			level.Info(g.logger).Log("msg", "screenshot saved", "path", path)
		}
	}

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	state := ""
	if g.Paused {
		state = "  [paused]"
	}
	return fmt.Sprintf("Particles: %d  G: %.4g  TPS: %.0f%s\n"+
		"click: add  S: solar system  R: reset  T: trails  up/down: G  P: screenshot  space: pause",
		g.World.Len(), g.World.G, ebiten.ActualTPS(), state)
}

func onScreen(p r2.Vec, w, h, pad float64) bool {
	return p.X >= -pad && p.X <= w+pad && p.Y >= -pad && p.Y <= h+pad
}

// Layout follows the window so world coordinates stay in screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Game)(nil)
