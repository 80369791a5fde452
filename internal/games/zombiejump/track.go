package zombiejump

// Track is the fixed ring of platform slots scrolling up the playfield.
// Slots are never added or removed; a slot that scrolls off the top is
// regenerated below its ring predecessor.
type Track struct {
	gen       *Generator
	platforms []Platform
	fieldH    int
}

// NewTrack creates a track of count slots. Call Setup before use.
func NewTrack(gen *Generator, count, fieldH int) *Track {
	return &Track{
		gen:       gen,
		platforms: make([]Platform, count),
		fieldH:    fieldH,
	}
}

// Setup fills every slot for a fresh life. Slot 0 sits on the spawn row and
// each following slot is generated below its predecessor.
func (t *Track) Setup(level int) {
	t.gen.ResetRuns()
	for i := range t.platforms {
		if i == 0 {
			t.platforms[i] = t.gen.First(level)
			continue
		}
		t.platforms[i] = t.gen.Next(t.platforms[i-1], level)
	}
}

// ScrollAndRecycle moves every platform up one row and regenerates the
// slots that reached the top. Slots are recycled in index order, so a
// recycled slot may serve as the predecessor of the next one.
// It returns the recycled slot indices.
func (t *Track) ScrollAndRecycle(level int) []int {
	for i := range t.platforms {
		t.platforms[i].Y--
	}

	var recycled []int
	for i := range t.platforms {
		if t.platforms[i].Y > 0 {
			continue
		}
		next := t.gen.Next(t.platforms[t.prev(i)], level)
		next.Generation = t.platforms[i].Generation + 1
		t.platforms[i] = next
		recycled = append(recycled, i)
	}
	return recycled
}

// prev returns the ring predecessor of slot i.
func (t *Track) prev(i int) int {
	n := len(t.platforms)
	return (i - 1 + n) % n
}

// Platforms returns the slots in index order. The slice is owned by the
// track and must not be modified.
func (t *Track) Platforms() []Platform {
	return t.platforms
}

// At returns the platform in slot i.
func (t *Track) At(i int) Platform {
	return t.platforms[i]
}

// Len returns the number of slots.
func (t *Track) Len() int {
	return len(t.platforms)
}

// Visible reports whether slot i is inside the drawable rows. Platforms
// outside them still take part in collisions.
func (t *Track) Visible(i int) bool {
	p := t.platforms[i]
	return p.Y > 0 && p.Y < t.fieldH-2
}
