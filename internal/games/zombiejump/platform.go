package zombiejump

import "github.com/vovakirdan/zombie-jump/internal/core"

// Kind distinguishes platforms that carry the player from ones that kill.
type Kind int

const (
	KindSafe Kind = iota
	KindLethal
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindLethal {
		return "lethal"
	}
	return "safe"
}

// Glyph returns the rune a platform of this kind is drawn with.
func (k Kind) Glyph() rune {
	if k == KindLethal {
		return LethalChar
	}
	return SafeChar
}

// Color returns the color a platform of this kind is drawn with.
func (k Kind) Color() core.Color {
	if k == KindLethal {
		return core.ColorBrightRed
	}
	return core.ColorGreen
}

// Platform is one slot of the track. X and Y are the top-left cell.
type Platform struct {
	X, Y       int
	Width      int
	Thickness  int
	Kind       Kind
	Generation int // Incremented every time the slot is recycled
}

// Right returns the last column the platform occupies.
func (p Platform) Right() int {
	return p.X + p.Width - 1
}

// Bottom returns the last row the platform occupies.
func (p Platform) Bottom() int {
	return p.Y + p.Thickness - 1
}

// Spans reports whether column x lies within the platform.
func (p Platform) Spans(x int) bool {
	return x >= p.X && x <= p.Right()
}

// Rect returns the platform's cell rectangle.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Thickness)
}

// Player is the one-column zombie. Y is the head row.
type Player struct {
	X, Y   int
	Height int
}

// Feet returns the row of the player's lowest cell.
func (p Player) Feet() int {
	return p.Y + p.Height - 1
}

// platformID identifies a platform instance across recycles.
type platformID struct {
	slot       int
	generation int
}
