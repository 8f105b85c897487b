// Package window provides the Ebitengine frontend: the game in a desktop
// window, drawn with filled rectangles at world resolution.
package window

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// sky is the dark gray background.
var sky = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// Reconfigurable is implemented by games that accept a new tuning at runtime.
type Reconfigurable interface {
	SetConfig(cfg config.FlappyConfig)
}

// Options configures the window frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Scale   float64         // Window size relative to the world size
	Watcher *config.Watcher // Optional; enables hot reload
	Logger  *log.Logger     // Optional; discards when nil
}

// App implements ebiten.Game on top of a core.Game.
type App struct {
	game    core.Game
	canvas  imageCanvas
	frame   core.InputFrame
	watcher *config.Watcher
	logger  *log.Logger
}

func newApp(game core.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		game:    game,
		frame:   core.NewInputFrame(),
		watcher: opts.Watcher,
		logger:  logger,
	}
}

// Update runs one fixed-rate tick. Ebitengine calls it TPS times a second.
func (a *App) Update() error {
	a.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.frame.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.frame.Set(core.ActionRestart)
	}

	a.game.Step(a.frame)
	a.frame.Clear()
	return nil
}

// Draw renders the world. It runs at display rate, independent of Update.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.dst = screen
	a.game.Render(&a.canvas)
}

// Layout keeps the logical screen at world size; Ebitengine scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.Bounds()
	return int(w), int(h)
}

// pollReload applies any config the watcher has delivered since the last tick.
func (a *App) pollReload() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-a.watcher.Configs:
		if !ok {
			a.watcher = nil
			return
		}
		g, ok := a.game.(Reconfigurable)
		if !ok {
			a.logger.Warn("game does not support config reload", "game", a.game.ID())
			return
		}
		g.SetConfig(cfg)
		ebiten.SetWindowTitle(a.game.Title())
		a.logger.Info("config reloaded", "path", a.watcher.Path())
	case err, ok := <-a.watcher.Errors:
		if !ok {
			a.watcher = nil
			return
		}
		a.logger.Error("config reload failed", "err", err)
	default:
	}
}

// imageCanvas draws core.Canvas commands onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c *imageCanvas) Clear(col core.Color) {
	c.dst.Fill(palette(col))
}

func (c *imageCanvas) FillRect(r core.RectF, col core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), palette(col), false)
}

func palette(c core.Color) color.Color {
	switch c {
	case core.ColorRed:
		return colornames.Red
	case core.ColorOrange:
		return colornames.Orange
	case core.ColorGray:
		return sky
	default:
		return colornames.Black
	}
}

// Run opens the window and blocks until it is closed.
func Run(game core.Game, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	w, h := game.Bounds()
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	game.Reset(opts.Runtime)
	return ebiten.RunGame(newApp(game, opts))
}
