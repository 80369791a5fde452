package core

import "testing"

func TestSpriteDraw(t *testing.T) {
	s := NewScreen(10, 10)
	sp := NewSprite(2, 3, 3, 3, "****"+" "+"****")
	sp.Color = ColorGreen
	sp.Draw(s)

	if s.Get(2, 3) != '*' || s.Get(4, 5) != '*' {
		t.Errorf("sprite corners not drawn:\n%s", s.String())
	}
	if s.Get(3, 4) != ' ' {
		t.Error("spaces in the bitmap should be transparent")
	}
	if s.GetCell(2, 3).Color != ColorGreen {
		t.Error("sprite color not applied")
	}
}

func TestSpriteStepAndRounding(t *testing.T) {
	sp := NewSprite(0, 0, 1, 1, "H")
	sp.DX = 0.5

	sp.Step()
	x, _ := sp.Cell()
	if x != 1 { // 0.5 rounds away from zero
		t.Errorf("Cell() x = %d after one half step, expected 1", x)
	}

	sp.Step()
	if sp.X != 1.0 {
		t.Errorf("X = %f, expected 1.0", sp.X)
	}
}

func TestSpriteInvisible(t *testing.T) {
	s := NewScreen(5, 5)
	sp := NewSprite(1, 1, 1, 1, "H")
	sp.Visible = false
	sp.Draw(s)

	if s.Get(1, 1) != ' ' {
		t.Error("invisible sprite should not be drawn")
	}
}
