package zombiejump

// Outcome is the result of resolving the player against the track.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLanded
	OutcomeBlockedLeft
	OutcomeBlockedRight
	OutcomeDied
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeBlockedLeft:
		return "blocked_left"
	case OutcomeBlockedRight:
		return "blocked_right"
	case OutcomeDied:
		return "died"
	default:
		return "none"
	}
}

// Resolution describes what a collision does to the player. DX and DY are
// applied together by the caller. Slot is the platform responsible, or -1.
type Resolution struct {
	Outcome Outcome
	Slot    int
	DX, DY  int
}

// Resolve checks the player against every platform. Lethal platforms are
// checked first and win over any safe contact. Among safe platforms the
// lowest slot with a matching rule wins.
func Resolve(pl Player, platforms []Platform) Resolution {
	for i, p := range platforms {
		if p.Kind == KindLethal && touchesLethal(pl, p) {
			return Resolution{Outcome: OutcomeDied, Slot: i}
		}
	}

	for i, p := range platforms {
		if p.Kind != KindSafe {
			continue
		}
		if r, ok := resolveSafe(pl, p); ok {
			r.Slot = i
			return r
		}
	}

	return Resolution{Outcome: OutcomeNone, Slot: -1}
}

// Supported reports whether the player stands directly on a safe platform
// and so is not pulled down by gravity.
func Supported(pl Player, platforms []Platform) bool {
	feet := pl.Feet()
	for _, p := range platforms {
		if p.Kind == KindSafe && p.Spans(pl.X) && feet == p.Y-1 {
			return true
		}
	}
	return false
}

// touchesLethal: feet resting on, or inside, the platform; or the head
// inside it.
func touchesLethal(pl Player, p Platform) bool {
	if !p.Spans(pl.X) {
		return false
	}
	feet := pl.Feet()
	if feet >= p.Y-1 && feet <= p.Bottom() {
		return true
	}
	return pl.Y >= p.Y && pl.Y <= p.Bottom()
}

func resolveSafe(pl Player, p Platform) (Resolution, bool) {
	feet := pl.Feet()

	if p.Spans(pl.X) {
		switch {
		case feet == p.Y-1:
			return Resolution{Outcome: OutcomeLanded}, true
		case feet >= p.Y && feet <= p.Bottom():
			// Sunk into the platform; lift back onto its top.
			return Resolution{Outcome: OutcomeLanded, DY: p.Y - 1 - feet}, true
		}
	}

	inRows := (feet >= p.Y && feet <= p.Bottom()) || (pl.Y >= p.Y && pl.Y <= p.Bottom())
	if !inRows {
		return Resolution{}, false
	}
	switch pl.X {
	case p.X:
		return Resolution{Outcome: OutcomeBlockedLeft, DX: -1}, true
	case p.Right():
		return Resolution{Outcome: OutcomeBlockedRight, DX: 1}, true
	}
	return Resolution{}, false
}
