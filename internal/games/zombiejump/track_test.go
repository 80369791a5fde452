package zombiejump

import (
	"testing"

	"github.com/vovakirdan/zombie-jump/internal/config"
)

func newTestTrack(seed int64, level int) *Track {
	cfg := config.DefaultZombieConfig()
	gen := NewGenerator(cfg, seeded(seed), 70, 49)
	tr := NewTrack(gen, cfg.Platforms.Count, 49)
	tr.Setup(level)
	return tr
}

func TestTrackSetup(t *testing.T) {
	tr := newTestTrack(3, 1)

	if tr.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", tr.Len())
	}
	if p := tr.At(0); p.Kind != KindSafe || p.Y != 45 {
		t.Errorf("slot 0 = %+v, want safe platform on row 45", p)
	}
	for i := 1; i < tr.Len(); i++ {
		dy := tr.At(i).Y - tr.At(i-1).Y
		if dy < 5 || dy >= 8 {
			t.Errorf("slot %d is %d rows below slot %d", i, dy, i-1)
		}
	}
}

func TestScrollMovesEveryPlatform(t *testing.T) {
	tr := newTestTrack(3, 2)

	before := make([]int, tr.Len())
	for i, p := range tr.Platforms() {
		before[i] = p.Y
	}

	if recycled := tr.ScrollAndRecycle(2); len(recycled) != 0 {
		t.Fatalf("unexpected recycle of %v", recycled)
	}
	for i, p := range tr.Platforms() {
		if p.Y != before[i]-1 {
			t.Errorf("slot %d: Y = %d, want %d", i, p.Y, before[i]-1)
		}
	}
}

func TestRecycleTopPlatform(t *testing.T) {
	tr := newTestTrack(11, 1)
	top := tr.At(0).Y

	// Slot 0 reaches row 0 on scroll number top.
	for i := 1; i < top; i++ {
		if recycled := tr.ScrollAndRecycle(1); len(recycled) != 0 {
			t.Fatalf("scroll %d: recycled %v before slot 0 left the screen", i, recycled)
		}
	}

	recycled := tr.ScrollAndRecycle(1)
	if len(recycled) != 1 || recycled[0] != 0 {
		t.Fatalf("recycled = %v, want [0]", recycled)
	}

	p, prev := tr.At(0), tr.At(tr.Len()-1)
	if p.Generation != 1 {
		t.Errorf("generation = %d, want 1", p.Generation)
	}
	if dy := p.Y - prev.Y; dy < 5 || dy >= 8 {
		t.Errorf("recycled slot is %d rows below its predecessor", dy)
	}
	if p.X < 0 || p.Right() > 69 {
		t.Errorf("recycled platform [%d, %d] off screen", p.X, p.Right())
	}
}

func TestTrackLongRun(t *testing.T) {
	for level := 1; level <= 3; level++ {
		tr := newTestTrack(int64(level)*97, level)
		recycles := 0

		for tick := 0; tick < 3000; tick++ {
			recycles += len(tr.ScrollAndRecycle(level))

			// Exactly one ring pair (bottom slot to top slot) goes backwards.
			ordered := 0
			for i := 0; i < tr.Len(); i++ {
				dy := tr.At(i).Y - tr.At(tr.prev(i)).Y
				if dy >= 5 && dy < 8 {
					ordered++
				}
			}
			if ordered != tr.Len()-1 {
				t.Fatalf("level %d tick %d: %d ordered ring pairs, want %d", level, tick, ordered, tr.Len()-1)
			}

			for i, p := range tr.Platforms() {
				if p.Y <= 0 {
					t.Fatalf("level %d tick %d: slot %d left at row %d", level, tick, i, p.Y)
				}
				if p.X < 0 || p.Right() > 69 {
					t.Fatalf("level %d tick %d: slot %d spans [%d, %d]", level, tick, i, p.X, p.Right())
				}
			}
		}

		if recycles == 0 {
			t.Errorf("level %d: no platform recycled in 3000 scrolls", level)
		}
	}
}

func TestTrackVisible(t *testing.T) {
	tr := newTestTrack(1, 1)

	tests := []struct {
		y    int
		want bool
	}{
		{0, false},
		{1, true},
		{46, true},
		{47, false},
		{60, false},
	}

	for _, tt := range tests {
		tr.platforms[0].Y = tt.y
		if got := tr.Visible(0); got != tt.want {
			t.Errorf("Visible at row %d = %v, want %v", tt.y, got, tt.want)
		}
	}
}
