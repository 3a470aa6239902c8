package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The tile palette climbs from pale to hot as values grow.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightRed
	ColorBrightMagenta
)

// tilePalette is indexed by log2(value)-1.
var tilePalette = []Color{
	ColorWhite,         // 2
	ColorYellow,        // 4
	ColorOrange,        // 8
	ColorRed,           // 16
	ColorBrightRed,     // 32
	ColorMagenta,       // 64
	ColorBrightMagenta, // 128
	ColorCyan,          // 256
	ColorGreen,         // 512
	ColorBrightYellow,  // 1024
}

// TileColor returns the color used to draw a tile of the given value.
// Values past the palette reuse the hottest color.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	idx := -1
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	if idx < 0 {
		return ColorDefault
	}
	if idx >= len(tilePalette) {
		return tilePalette[len(tilePalette)-1]
	}
	return tilePalette[idx]
}
