// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through the gaps between tubes
// scrolling in from the right.
package flappy

import (
	"math/rand"

	"github.com/Marconymous/flappy-bird/internal/config"
	"github.com/Marconymous/flappy-bird/internal/core"
	"github.com/Marconymous/flappy-bird/internal/registry"
)

// registryConfig is the configuration used by games created through the registry.
var registryConfig = config.DefaultFlappyConfig()

// SetConfig sets the configuration for games created through the registry.
// The CLI calls it after loading and validating the user's config.
func SetConfig(cfg config.FlappyConfig) {
	registryConfig = cfg
}

// Option customizes a Game.
type Option func(*Game)

// WithRand injects the random source used for tube placement. Reset keeps
// using it instead of reseeding from the runtime config.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithGameOver registers a function called once per lost session with the
// final score.
func WithGameOver(fn func(score int)) Option {
	return func(g *Game) {
		g.onGameOver = fn
	}
}

// Game adapts a Controller to the platform's registry.Game contract.
type Game struct {
	ctrl       *Controller
	rng        *rand.Rand // Injected source, nil when seeded from RuntimeConfig
	onGameOver func(score int)
	paused     bool
}

// New creates a new Flappy Bird game. It panics if cfg is invalid.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}

	g.ctrl = NewController(cfg, g.rng)
	g.ctrl.OnGameOver(g.onGameOver)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a new session. Without an injected random source the tube
// layout is seeded from cfg.Seed, so equal seeds replay equal games.
//
// The controller always answers Reset with TimerResume. registry.Game.Reset
// has no result, so the host owns resumption: it restarts its tick loop after
// calling Reset, and the next Step ticks the new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.rng == nil {
		g.ctrl.Reseed(cfg.Seed)
	}
	g.paused = false
	_ = g.ctrl.Reset() // Always TimerResume
}

// Step applies the frame's input and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl.Phase() == PhaseLost {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.ctrl.Flap()
	}

	signal := g.ctrl.Tick()
	return core.StepResult{
		State: g.State(),
		Ended: signal == TimerStop,
	}
}

// Snapshot returns the current session as drawable shapes.
func (g *Game) Snapshot() Snapshot {
	return g.ctrl.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.Phase() == PhaseLost,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New(registryConfig)
	})
}
