package flappy

import (
	"fmt"
	"math"

	"github.com/Marconymous/flappy-bird/internal/core"
)

// TubeView is the drawable form of a tube: two barrier rectangles.
type TubeView struct {
	X      float64
	Width  float64
	Top    core.RectF // Upper barrier, from the top edge down to the gap
	Bottom core.RectF // Lower barrier, from the gap down to the ground
	Scored bool
}

// Snapshot is a read-only projection of a session for rendering and
// determinism checks. All geometry is in field units.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	ScoreText string
	Field     core.RectF
	Ground    core.RectF
	Bird      core.RectF
	BirdVY    float64
	Tubes     []TubeView
}

// Snapshot returns the current session as drawable shapes.
func (c *Controller) Snapshot() Snapshot {
	lay := c.lay
	tubes := make([]TubeView, len(c.s.Tubes))
	for i, t := range c.s.Tubes {
		tubes[i] = TubeView{
			X:      t.X,
			Width:  lay.tubeW,
			Top:    core.NewRectF(t.X, 0, lay.tubeW, t.Top),
			Bottom: core.NewRectF(t.X, t.Bottom, lay.tubeW, math.Max(lay.groundY-t.Bottom, 0)),
			Scored: t.Scored,
		}
	}

	return Snapshot{
		Tick:      c.s.Tick,
		Phase:     c.s.Phase,
		Score:     c.s.Score,
		ScoreText: fmt.Sprintf("Score: %d", c.s.Score),
		Field:     core.NewRectF(0, 0, lay.fieldW, lay.fieldH),
		Ground:    core.NewRectF(0, lay.groundY, lay.fieldW, lay.fieldH-lay.groundY),
		Bird:      core.NewRectF(lay.birdX, c.s.Bird.Y, lay.birdSize, lay.birdSize),
		BirdVY:    c.s.Bird.VY,
		Tubes:     tubes,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Bird.Y)
	h = h*31 + math.Float64bits(snap.BirdVY)

	for _, t := range snap.Tubes {
		h = h*31 + math.Float64bits(t.X)
		h = h*31 + math.Float64bits(t.Top.H)
		h = h*31 + math.Float64bits(t.Bottom.Y)
		if t.Scored {
			h = h*31 + 1
		}
	}

	return h
}
