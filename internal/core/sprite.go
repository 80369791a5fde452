package core

import "math"

// Sprite is a positioned rectangular bitmap with an optional per-axis
// velocity. The bitmap is stored row-major, W runes per row; spaces are
// transparent when drawn.
type Sprite struct {
	X, Y    float64
	DX, DY  float64
	W, H    int
	Color   Color
	Visible bool
	bitmap  []rune
}

// NewSprite creates a visible sprite at (x, y).
// The bitmap must contain w*h runes; missing cells are treated as blank.
func NewSprite(x, y float64, w, h int, bitmap string) *Sprite {
	return &Sprite{
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Visible: true,
		bitmap:  []rune(bitmap),
	}
}

// Step advances the sprite by its velocity.
func (s *Sprite) Step() {
	s.X += s.DX
	s.Y += s.DY
}

// Cell returns the column and row the sprite's top-left corner occupies.
func (s *Sprite) Cell() (int, int) {
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

// Draw renders the sprite into dst. Invisible sprites draw nothing.
func (s *Sprite) Draw(dst *Screen) {
	if !s.Visible {
		return
	}
	x0, y0 := s.Cell()
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			i := row*s.W + col
			if i >= len(s.bitmap) || s.bitmap[i] == ' ' {
				continue
			}
			dst.SetColored(x0+col, y0+row, s.bitmap[i], s.Color)
		}
	}
}
