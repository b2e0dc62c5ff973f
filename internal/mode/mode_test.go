package mode

import (
	"testing"
	"time"

	"glowgrid/internal/grid"
	"glowgrid/internal/palette"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testRig(w, h int) (grid.Grid, grid.Frame, grid.Frame) {
	g := grid.New(w, h, grid.LayoutRow)
	return g, grid.NewFrame(g), grid.NewFrame(g)
}

func TestTimingGate(t *testing.T) {
	g, live, scratch := testRig(4, 4)
	clock := newFakeClock()
	b := NewBase(g, live, scratch, 100*time.Millisecond)
	b.SetClock(clock.now)

	if !b.timeToUpdate() {
		t.Fatal("fresh mode should be eligible immediately")
	}
	if b.timeToUpdate() {
		t.Error("gate passed with no elapsed time")
	}
	clock.advance(99 * time.Millisecond)
	if b.timeToUpdate() {
		t.Error("gate passed before the interval elapsed")
	}
	clock.advance(1 * time.Millisecond)
	if !b.timeToUpdate() {
		t.Error("gate blocked after the interval elapsed")
	}

	// ResetGate makes a long-idle mode render on its next tick.
	clock.advance(time.Millisecond)
	b.ResetGate()
	if !b.timeToUpdate() {
		t.Error("gate blocked after reset")
	}
}

func TestNextPaletteCycles(t *testing.T) {
	g, live, scratch := testRig(2, 2)
	b := NewBase(g, live, scratch, time.Second)
	for i := 0; i < len(palette.Catalog); i++ {
		if b.PaletteIndex() != i {
			t.Fatalf("palette index = %d, want %d", b.PaletteIndex(), i)
		}
		b.NextPalette()
	}
	if b.PaletteIndex() != 0 {
		t.Errorf("palette did not wrap: %d", b.PaletteIndex())
	}
}

func TestClearDisplay(t *testing.T) {
	g, live, scratch := testRig(3, 3)
	live[4] = grid.RGB{R: 1}
	b := NewBase(g, live, scratch, time.Second)
	b.ClearDisplay()
	for i := range live {
		if !live[i].IsBlack() {
			t.Fatal("ClearDisplay left a lit pixel")
		}
	}
}

func TestRegistryBuildsAllModes(t *testing.T) {
	g, live, scratch := testRig(8, 8)
	r := NewRegistry()
	modes := r.Build(g, live, scratch)
	if len(modes) != len(r.Names()) {
		t.Fatalf("built %d modes for %d names", len(modes), len(r.Names()))
	}
	for i, m := range modes {
		if m.Name() != r.Names()[i] {
			t.Errorf("mode %d = %s, want %s", i, m.Name(), r.Names()[i])
		}
		m.Init() // must not panic on a fresh instance
	}
	if _, err := r.Get("nope", g, live, scratch); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestUpdateRespectsInterval(t *testing.T) {
	g, live, scratch := testRig(8, 8)
	clock := newFakeClock()
	for _, m := range NewRegistry().Build(g, live, scratch) {
		setClock(m, clock.now)
		setSeed(m, 1)
		m.Init()
		m.Update()
		before := append(grid.Frame(nil), live...)
		if m.Update() {
			t.Errorf("%s: Update reported a frame with no elapsed time", m.Name())
		}
		for i := range live {
			if live[i] != before[i] {
				t.Fatalf("%s: gated Update mutated the buffer", m.Name())
			}
		}
		clock.advance(time.Second)
	}
}

// setClock and setSeed reach the embedded Base of any registered mode.
func setClock(m Mode, now func() time.Time) {
	m.(interface{ SetClock(func() time.Time) }).SetClock(now)
}

func setSeed(m Mode, seed int64) {
	m.(interface{ SetSeed(int64) }).SetSeed(seed)
}
