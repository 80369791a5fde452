package zombiejump

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/zombie-jump/internal/core"
)

const gameOverBitmap = "" +
	" #######  ####### " +
	" #     #  #     # " +
	" #        #       " +
	" #   ###  #   ### " +
	" #     #  #     # " +
	" #######  ####### "

// playerBitmap returns the zombie's one-column bitmap for a given height:
// head, torso rows, legs.
func playerBitmap(height int) string {
	switch height {
	case 1:
		return "O"
	case 2:
		return "O^"
	}
	return "O" + strings.Repeat("T", height-2) + "^"
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for i, p := range g.track.Platforms() {
		if g.track.Visible(i) {
			dst.DrawRect(p.Rect(), p.Kind.Glyph(), p.Kind.Color())
		}
	}

	g.drawHUD(dst)

	if g.session.Phase == PhaseOver {
		g.drawGameOver(dst)
		return
	}

	player := core.NewSprite(float64(g.player.X), float64(g.player.Y), 1, g.player.Height, playerBitmap(g.player.Height))
	player.Color = core.ColorYellow
	player.Draw(dst)

	if g.paused {
		dst.DrawTextCentered(g.fieldH/2, " PAUSED - Press P to continue ")
	}
}

// drawHUD draws lives and elapsed time above the playfield and level,
// score and speed below it. Separator lines overwrite platforms that
// scroll into them.
func (g *Game) drawHUD(dst *core.Screen) {
	w, h := g.fieldW, g.fieldH

	dst.DrawHLine(0, hudTop-1, w, LineChar)
	dst.DrawHLine(0, h-2, w, LineChar)
	dst.DrawHLine(0, 0, w, ' ')
	dst.DrawHLine(0, h-1, w, ' ')

	dst.DrawText(0, 0, fmt.Sprintf("Lives: %d", g.session.Lives))
	elapsed := "Time Elapsed: " + g.session.Clock.String()
	dst.DrawText(w-len(elapsed)-1, 0, elapsed)

	dst.DrawText(0, h-1, fmt.Sprintf("Level: %d with a Score: %d", g.session.Level, g.session.Score))
	label := g.session.Speed.Label()
	dst.DrawTextColored(w-len(label)-1, h-1, label, core.ColorCyan)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	w, h := g.fieldW, g.fieldH

	banner := core.NewSprite(float64((w-16)/2), float64((h-5)/2), 18, 6, gameOverBitmap)
	banner.Color = core.ColorRed
	banner.Draw(dst)

	lost := "No more lives remaining..."
	prompt := "Press 'r' to restart or 'q' to quit."
	dst.DrawText((w-len(lost))/2, h/2+5, lost)
	dst.DrawText((w-len(prompt))/2, h/2+6, prompt)
}
