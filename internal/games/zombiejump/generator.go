package zombiejump

import (
	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
)

// Rand is the random source the generator draws from.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Intn(n int) int
}

// Generator places platforms relative to their predecessor.
//
// Every range is drawn with rejection sampling: a uniform draw from
// [0, range) is repeated until it reaches the minimum.
type Generator struct {
	cfg       config.ZombieConfig
	rng       Rand
	fieldW    int
	fieldH    int
	safeRun   int // Consecutive safe platforms generated so far
	lethalRun int // Consecutive lethal platforms generated so far
}

// NewGenerator creates a generator for a playfield of fieldW x fieldH cells.
func NewGenerator(cfg config.ZombieConfig, rng Rand, fieldW, fieldH int) *Generator {
	return &Generator{
		cfg:    cfg,
		rng:    rng,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// SpawnRow returns the row the first platform of a fresh track sits on.
func (g *Generator) SpawnRow() int {
	return g.fieldH - 4
}

// ResetRuns forgets the safe/lethal run history.
func (g *Generator) ResetRuns() {
	g.safeRun = 0
	g.lethalRun = 0
}

// First creates the first platform of a fresh track: always safe,
// anywhere on the bottom playable row.
func (g *Generator) First(level int) Platform {
	width := g.Width(level)
	g.record(KindSafe)

	return Platform{
		X:         g.rng.Intn(core.Max(g.fieldW-width+1, 1)),
		Y:         g.SpawnRow(),
		Width:     width,
		Thickness: g.cfg.Platforms.Thickness,
		Kind:      KindSafe,
	}
}

// Next creates the platform that follows prev on the track.
// Draw order: kind, width, horizontal gap, side, vertical offset.
func (g *Generator) Next(prev Platform, level int) Platform {
	kind := g.NextKind()
	width := g.Width(level)
	x := g.place(prev, width)

	return Platform{
		X:         x,
		Y:         prev.Y + g.VerticalOffset(),
		Width:     width,
		Thickness: g.cfg.Platforms.Thickness,
		Kind:      kind,
	}
}

// NextKind draws a platform kind, forcing a switch once a run of safe or
// lethal platforms reaches its cap.
func (g *Generator) NextKind() Kind {
	kind := KindSafe
	if g.rng.Intn(2) == 1 {
		kind = KindLethal
	}

	switch {
	case kind == KindSafe && g.safeRun >= g.cfg.Generator.MaxSafeRun:
		kind = KindLethal
	case kind == KindLethal && g.lethalRun >= g.cfg.Generator.MaxLethalRun:
		kind = KindSafe
	}

	g.record(kind)
	return kind
}

func (g *Generator) record(kind Kind) {
	if kind == KindLethal {
		g.lethalRun++
		g.safeRun = 0
		return
	}
	g.safeRun++
	g.lethalRun = 0
}

// Width returns a platform width in cells for the level. Fixed-width
// levels always use the minimum; the others reject draws below it.
// The drawn width is doubled for rendering.
func (g *Generator) Width(level int) int {
	lvl := g.cfg.Level(level)
	base := lvl.MinWidth
	if !lvl.FixedWidth {
		base = g.sample(lvl.MaxWidth, lvl.MinWidth)
	}
	return 2 * base
}

// HorizontalGap returns the number of empty columns between a platform and
// its predecessor.
func (g *Generator) HorizontalGap() int {
	return g.sample(g.cfg.Generator.HorizontalRange, g.cfg.Generator.HorizontalMin)
}

// VerticalOffset returns the number of rows between a platform and its
// predecessor.
func (g *Generator) VerticalOffset() int {
	return g.sample(g.cfg.Generator.VerticalRange, g.cfg.Generator.VerticalMin)
}

// sample draws from [0, n) until the draw is at least min.
func (g *Generator) sample(n, min int) int {
	for {
		v := g.rng.Intn(n)
		if v >= min {
			return v
		}
	}
}

// place picks the new platform's column: gap columns to the left or right
// of prev, on a randomly chosen side. A side that would leave the playfield
// is swapped for the other one. When neither side fits, the platform goes
// against the screen edge with more room.
func (g *Generator) place(prev Platform, width int) int {
	gap := g.HorizontalGap()
	preferRight := g.rng.Intn(2) == 1

	leftX := prev.X - gap - width
	rightX := prev.Right() + 1 + gap
	fitsLeft := leftX >= 0
	fitsRight := rightX+width <= g.fieldW

	switch {
	case fitsLeft && fitsRight:
		if preferRight {
			return rightX
		}
		return leftX
	case fitsRight:
		return rightX
	case fitsLeft:
		return leftX
	}

	roomLeft := prev.X
	roomRight := g.fieldW - (prev.Right() + 1)
	if roomLeft >= roomRight {
		return 0
	}
	return core.Max(g.fieldW-width, 0)
}
