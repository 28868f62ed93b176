package core

// Color is the foreground color of a screen cell. The terminal host maps
// each value to an ANSI 256-color style.
type Color uint8

// Palette used by the playfield.
const (
	ColorDefault     Color = iota
	ColorGreen             // Tube bodies and ground fill
	ColorYellow            // Bird
	ColorOrange            // Beak
	ColorBrightGreen       // Tube caps and ground edge
	ColorBrightRed         // Overlay titles
	ColorBrightWhite       // Score
)
