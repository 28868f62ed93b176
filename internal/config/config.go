// Package config provides YAML-based game configuration loading and
// validation for the arcade platform.
package config

import (
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
// Lengths are in field units; fractions are relative to the field size so the
// simulation does not depend on the terminal resolution.
type FlappyConfig struct {
	Field     FlappyField     `yaml:"field"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Loop      FlappyLoop      `yaml:"loop"`
}

// FlappyField defines the play field dimensions.
type FlappyField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Ground band height as a fraction of Height
}

// FlappyPhysics defines physics parameters for Flappy Bird.
// Velocities use screen-up as positive: a flap sets the bird's velocity to
// FlapSpeed and gravity pulls it toward -TerminalSpeed.
type FlappyPhysics struct {
	Gravity       float64       `yaml:"gravity"`        // Velocity lost per tick
	FlapSpeed     float64       `yaml:"flap_speed"`     // Upward velocity set by a flap
	TerminalSpeed float64       `yaml:"terminal_speed"` // Maximum falling speed
	InitialSpeed  float64       `yaml:"initial_speed"`  // Velocity at session start
	ScrollSpeed   float64       `yaml:"scroll_speed"`   // Tube movement per tick
	CeilingPolicy CeilingPolicy `yaml:"ceiling_policy"`
	CeilingNudge  float64       `yaml:"ceiling_nudge"` // Downward speed after a ceiling bounce
}

// FlappyObstacles defines tube parameters.
type FlappyObstacles struct {
	TubeWidth      float64 `yaml:"tube_width"`      // Tube width (and gap height) as a fraction of field width
	SpawnThreshold float64 `yaml:"spawn_threshold"` // Newest tube x, as a fraction of field width, that triggers the next spawn
}

// FlappyPlayer defines the bird's fixed placement and size.
type FlappyPlayer struct {
	X    float64 `yaml:"x"`    // Horizontal position as a fraction of field width
	Size float64 `yaml:"size"` // Body size as a fraction of field width
}

// FlappyLoop defines the host loop cadence.
type FlappyLoop struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// TickRate returns the number of ticks per second implied by TickInterval.
func (l FlappyLoop) TickRate() int {
	if l.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / l.TickInterval)
}

// CeilingPolicy selects what happens when the bird reaches the top edge.
type CeilingPolicy string

const (
	// CeilingLethal ends the game on ceiling contact.
	CeilingLethal CeilingPolicy = "lethal"
	// CeilingBounce pins the bird to the ceiling and pushes it downward.
	CeilingBounce CeilingPolicy = "bounce"
)

// ParseCeilingPolicy converts a string to a CeilingPolicy.
// An empty string selects CeilingLethal.
func ParseCeilingPolicy(s string) (CeilingPolicy, error) {
	switch CeilingPolicy(s) {
	case "", CeilingLethal:
		return CeilingLethal, nil
	case CeilingBounce:
		return CeilingBounce, nil
	default:
		return "", fmt.Errorf("config: unknown ceiling policy %q (want %q or %q)", s, CeilingLethal, CeilingBounce)
	}
}
