package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Marconymous/flappy-bird/internal/config"
)

// MaxTubes is the number of tubes that may be on the field at once.
const MaxTubes = 2

// TimerSignal tells the host what to do with its tick source after a call.
type TimerSignal int

const (
	TimerContinue TimerSignal = iota // Keep ticking
	TimerStop                        // The session is lost; stop ticking until Reset
	TimerResume                      // A new session started; start ticking again
)

// layout holds the absolute geometry derived from the relative config.
type layout struct {
	fieldW   float64
	fieldH   float64
	groundY  float64 // Top of the ground band
	tubeW    float64 // Tube width, also the gap height
	birdX    float64 // Left edge of the bird
	birdSize float64
	spawnX   float64 // Newest tube x at or below which the next tube spawns
	maxTop   float64 // Exclusive upper bound for a new tube's Top
}

func newLayout(cfg config.FlappyConfig) layout {
	ground := cfg.Field.Height * cfg.Field.GroundMargin
	tubeW := cfg.Field.Width * cfg.Obstacles.TubeWidth
	return layout{
		fieldW:   cfg.Field.Width,
		fieldH:   cfg.Field.Height,
		groundY:  cfg.Field.Height - ground,
		tubeW:    tubeW,
		birdX:    cfg.Field.Width * cfg.Player.X,
		birdSize: cfg.Field.Width * cfg.Player.Size,
		spawnX:   cfg.Field.Width * cfg.Obstacles.SpawnThreshold,
		maxTop:   cfg.Field.Height - ground - tubeW,
	}
}

// Controller owns a Session and advances it one tick at a time.
// It is not safe for concurrent use; hosts serialize Tick, Flap and Reset.
type Controller struct {
	cfg        config.FlappyConfig
	lay        layout
	rng        *rand.Rand
	s          Session
	onGameOver func(score int)
}

// NewController creates a controller and starts its first session.
// It panics if cfg does not validate; a nil rng gets a fixed seed.
func NewController(cfg config.FlappyConfig, rng *rand.Rand) *Controller {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	c := &Controller{
		cfg: cfg,
		lay: newLayout(cfg),
		rng: rng,
	}
	c.Reset()
	return c
}

// OnGameOver registers a function called with the final score each time a
// session is lost.
func (c *Controller) OnGameOver(fn func(score int)) {
	c.onGameOver = fn
}

// Reseed replaces the random source used for tube placement.
func (c *Controller) Reseed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Reset discards the current session and starts a new one with a single tube.
func (c *Controller) Reset() TimerSignal {
	c.s = Session{
		Bird: Bird{
			Y:  c.lay.fieldH / 2,
			VY: c.cfg.Physics.InitialSpeed,
		},
		Tubes: make([]Tube, 0, MaxTubes),
		Phase: PhaseRunning,
	}
	c.spawnTube()
	return TimerResume
}

// Flap sets the bird's velocity to the full flap speed. Repeated flaps do not
// stack. Ignored once the session is lost.
func (c *Controller) Flap() {
	if c.s.Phase != PhaseRunning {
		return
	}
	c.s.Bird.VY = c.cfg.Physics.FlapSpeed
}

// Tick advances the session by one step: tubes, bird physics, collisions,
// then scoring. After the session is lost Tick changes nothing and keeps
// returning TimerStop.
func (c *Controller) Tick() TimerSignal {
	if c.s.Phase != PhaseRunning {
		return TimerStop
	}

	c.s.Tick++
	c.advanceTubes()
	c.integrate()

	if c.collides() {
		c.s.Phase = PhaseLost
		if c.onGameOver != nil {
			c.onGameOver(c.s.Score)
		}
		return TimerStop
	}

	c.awardPoints()
	return TimerContinue
}

// integrate applies gravity and moves the bird.
func (c *Controller) integrate() {
	p := c.cfg.Physics
	b := &c.s.Bird

	if b.VY > -p.TerminalSpeed {
		b.VY = math.Max(b.VY-p.Gravity, -p.TerminalSpeed)
	}
	b.VY = math.Min(b.VY, p.FlapSpeed)
	b.Y -= b.VY
}

// collides reports whether the bird hit the ground, a tube, or the ceiling
// under the lethal policy. Under the bounce policy the ceiling pins the bird
// and pushes it back down.
func (c *Controller) collides() bool {
	b := &c.s.Bird

	if b.Y >= c.lay.groundY {
		return true
	}
	if b.Y <= 0 {
		if c.cfg.Physics.CeilingPolicy != config.CeilingBounce {
			return true
		}
		b.Y = 0
		b.VY = -c.cfg.Physics.CeilingNudge
	}

	for _, t := range c.s.Tubes {
		if !c.inBirdBand(t) {
			continue
		}
		if b.Y <= t.Top || b.Y+c.lay.birdSize >= t.Bottom {
			return true
		}
	}
	return false
}

// inBirdBand reports whether the tube horizontally overlaps the bird.
func (c *Controller) inBirdBand(t Tube) bool {
	return t.X <= c.lay.birdX+c.lay.birdSize && t.X+c.lay.tubeW >= c.lay.birdX
}

// awardPoints scores every tube whose midpoint has passed the bird.
func (c *Controller) awardPoints() {
	for i := range c.s.Tubes {
		t := &c.s.Tubes[i]
		if !t.Scored && t.X+c.lay.tubeW/2 <= c.lay.birdX {
			t.Scored = true
			c.s.Score++
		}
	}
}

// Score returns the current session score.
func (c *Controller) Score() int {
	return c.s.Score
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase {
	return c.s.Phase
}
