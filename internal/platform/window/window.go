// Package window runs the game in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
	"github.com/vovakirdan/flappy-arcade/internal/platform/session"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Options configures a Window. Zero values pick defaults.
type Options struct {
	Game      *flappy.Game
	Store     *storage.Store
	Logger    *log.Logger
	Player    string
	SessionID string
	TickRate  int
	Scale     float64
	Title     string
}

// input reports the player's actions for the current tick.
type input interface {
	Primary() bool
	Quit() bool
}

// keyboardMouse reads ebiten's input state.
type keyboardMouse struct{}

func (keyboardMouse) Primary() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (keyboardMouse) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Window implements ebiten.Game for one local player.
type Window struct {
	game    *flappy.Game
	tracker *session.Tracker
	input   input
	painter *painter
	frame   core.InputFrame
	state   core.GameState
}

// New creates a window frontend. It loads fonts but opens no window.
func New(opts Options) (*Window, error) {
	if opts.Game == nil {
		opts.Game = flappy.New(flappy.Options{})
	}
	fs, err := loadFaces()
	if err != nil {
		return nil, err
	}
	return &Window{
		game:    opts.Game,
		tracker: session.New(opts.Store, opts.Logger, opts.Player, opts.SessionID),
		input:   keyboardMouse{},
		painter: newPainter(fs),
		frame:   core.NewInputFrame(),
		state:   opts.Game.State(),
	}, nil
}

// Update advances the game by one tick. ebiten calls it TPS times a second.
func (w *Window) Update() error {
	if w.input.Quit() {
		return ebiten.Termination
	}
	if w.input.Primary() {
		w.frame.Set(core.ActionPrimary)
	}

	result := w.game.Step(w.frame)
	w.state = result.State
	w.tracker.Observe(w.game, result)
	w.frame.Clear()
	return nil
}

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	w.painter.Draw(screen, scene.Build(w.game.Snapshot()))
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(flappy.WorldWidth), int(flappy.WorldHeight)
}

// State returns the game state after the last tick.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(opts Options) error {
	if opts.Player == "" {
		opts.Player = os.Getenv("USER")
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "Flappy Bird Clone"
	}
	rate := core.RuntimeConfig{TickRate: opts.TickRate}.EffectiveTickRate()

	w, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetTPS(rate)
	ebiten.SetWindowSize(int(flappy.WorldWidth*opts.Scale), int(flappy.WorldHeight*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)

	w.tracker.Logger().Info("window ready", "player", opts.Player, "tick_rate", rate, "scale", opts.Scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
