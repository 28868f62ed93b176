package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// The values reproduce the classic 800x600 layout: a 100 unit ground band,
// 150 unit tubes and gaps, and a 20 unit bird in the middle of the field.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:        800,
			Height:       600,
			GroundMargin: 1.0 / 6,
		},
		Physics: FlappyPhysics{
			Gravity:       0.05,
			FlapSpeed:     3,
			TerminalSpeed: 2,
			InitialSpeed:  2,
			ScrollSpeed:   1,
			CeilingPolicy: CeilingLethal,
			CeilingNudge:  0.5,
		},
		Obstacles: FlappyObstacles{
			TubeWidth:      0.1875,
			SpawnThreshold: 0.125,
		},
		Player: FlappyPlayer{
			X:    0.5,
			Size: 0.025,
		},
		Loop: FlappyLoop{
			TickInterval: 5 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
