package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ValidationError via errors.Is.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidationError describes a single rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidConfig.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Field.Width <= 0 {
		fail("field.width", "must be positive, got %v", c.Field.Width)
	}
	if c.Field.Height <= 0 {
		fail("field.height", "must be positive, got %v", c.Field.Height)
	}
	if !inOpenUnit(c.Field.GroundMargin) {
		fail("field.ground_margin", "must be in (0, 1), got %v", c.Field.GroundMargin)
	}

	if !inOpenUnit(c.Obstacles.TubeWidth) {
		fail("obstacles.tube_width", "must be in (0, 1) so tubes are narrower than the field, got %v", c.Obstacles.TubeWidth)
	}
	if !inOpenUnit(c.Obstacles.SpawnThreshold) {
		fail("obstacles.spawn_threshold", "must be in (0, 1), got %v", c.Obstacles.SpawnThreshold)
	}

	// The gap is as tall as a tube is wide and must fit above the ground band.
	gap := c.Obstacles.TubeWidth * c.Field.Width
	ground := c.Field.GroundMargin * c.Field.Height
	if c.Field.Height > 0 && gap+ground >= c.Field.Height {
		fail("obstacles.tube_width", "gap of %v plus ground of %v does not fit in height %v", gap, ground, c.Field.Height)
	}

	if c.Player.X < 0 || c.Player.X >= 1 {
		fail("player.x", "must be in [0, 1), got %v", c.Player.X)
	}
	if !inOpenUnit(c.Player.Size) {
		fail("player.size", "must be in (0, 1), got %v", c.Player.Size)
	}

	if c.Physics.Gravity <= 0 {
		fail("physics.gravity", "must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.FlapSpeed <= 0 {
		fail("physics.flap_speed", "must be positive, got %v", c.Physics.FlapSpeed)
	}
	if c.Physics.TerminalSpeed <= 0 {
		fail("physics.terminal_speed", "must be positive, got %v", c.Physics.TerminalSpeed)
	}
	if c.Physics.ScrollSpeed <= 0 {
		fail("physics.scroll_speed", "must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if c.Physics.InitialSpeed > c.Physics.FlapSpeed || c.Physics.InitialSpeed < -c.Physics.TerminalSpeed {
		fail("physics.initial_speed", "must be within [-terminal_speed, flap_speed], got %v", c.Physics.InitialSpeed)
	}
	if c.Physics.CeilingNudge < 0 {
		fail("physics.ceiling_nudge", "must not be negative, got %v", c.Physics.CeilingNudge)
	}
	if c.Physics.CeilingNudge > c.Physics.TerminalSpeed {
		fail("physics.ceiling_nudge", "must not exceed terminal_speed %v, got %v", c.Physics.TerminalSpeed, c.Physics.CeilingNudge)
	}
	if _, err := ParseCeilingPolicy(string(c.Physics.CeilingPolicy)); err != nil {
		fail("physics.ceiling_policy", "%v", err)
	}

	if c.Loop.TickInterval <= 0 {
		fail("loop.tick_interval", "must be positive, got %v", c.Loop.TickInterval)
	}

	return errors.Join(errs...)
}

func inOpenUnit(v float64) bool {
	return v > 0 && v < 1
}
