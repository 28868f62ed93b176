package flappy

// advanceTubes scrolls every tube left, drops the ones that have left the
// field and spawns a new one when the stream needs it. This is the only place
// tubes move, so each tube scrolls exactly once per tick.
func (c *Controller) advanceTubes() {
	for i := range c.s.Tubes {
		c.s.Tubes[i].X -= c.cfg.Physics.ScrollSpeed
	}

	kept := c.s.Tubes[:0]
	for _, t := range c.s.Tubes {
		if t.X+c.lay.tubeW > 0 {
			kept = append(kept, t)
		}
	}
	c.s.Tubes = kept

	if c.needsTube() {
		c.spawnTube()
	}
}

// needsTube reports whether a tube should spawn this tick: there is room
// under MaxTubes and the newest tube has crossed the spawn threshold.
func (c *Controller) needsTube() bool {
	n := len(c.s.Tubes)
	if n >= MaxTubes {
		return false
	}
	if n == 0 {
		return true
	}
	return c.s.Tubes[n-1].X <= c.lay.spawnX
}

// spawnTube appends a tube at the right edge with a random gap placement.
// The gap plus the ground band always fits inside the field.
func (c *Controller) spawnTube() {
	top := c.rng.Float64() * c.lay.maxTop
	c.s.Tubes = append(c.s.Tubes, Tube{
		Top:    top,
		Bottom: top + c.lay.tubeW,
		X:      c.lay.fieldW,
	})
}
