package flappy

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Bird is the player-controlled body. Its horizontal position is fixed by the
// layout; only the vertical axis is simulated.
type Bird struct {
	Y  float64 // Top of the body, distance from the top edge
	VY float64 // Vertical velocity, positive moves up the screen
}

// Tube is a pair of barriers with a passable gap between Top and Bottom.
type Tube struct {
	Top    float64 // Height of the upper barrier
	Bottom float64 // Y where the lower barrier begins
	X      float64 // Left edge
	Scored bool    // Whether this tube has already awarded its point
}

// Session is the complete simulation state of one run.
// Tubes are kept in spawn order, which is also left-to-right order.
type Session struct {
	Bird  Bird
	Tubes []Tube
	Score int
	Phase Phase
	Tick  uint64 // Ticks simulated since the session started
}
