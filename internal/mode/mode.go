// Package mode implements the display mode framework: a shared Base carrying
// the buffers, timing gate and palette selection, plus the animation
// algorithms themselves. Exactly one mode renders at a time; the engine
// owns selection.
package mode

import (
	"math/rand"
	"time"

	"glowgrid/internal/grid"
	"glowgrid/internal/palette"
)

// Mode is the contract every display mode implements. Init resets
// mode-private state and is safe to call again on every activation. Update
// advances the simulation by one step and repaints the live frame, returning
// false when the mode's frame interval has not yet elapsed. ClearDisplay,
// NextPalette, SetPalette and SetBlend are provided by the embedded Base.
type Mode interface {
	Name() string
	Init()
	Update() bool
	ClearDisplay()
	NextPalette()
	SetPalette(int)
	SetBlend(palette.Blend)
}

// Base is the state every mode shares: the live and scratch frames, the
// matrix geometry, the frame-interval gate and the palette selection. Modes
// embed it by value and reach pixels only through Grid indexing.
type Base struct {
	Grid    grid.Grid
	Live    grid.Frame
	Scratch grid.Frame

	interval   time.Duration
	lastUpdate time.Time
	palIndex   int
	blend      palette.Blend
	now        func() time.Time
	rng        *rand.Rand
}

// NewBase wires the shared buffers. The interval is the mode's default frame
// interval; modes override it in their constructors.
func NewBase(g grid.Grid, live, scratch grid.Frame, interval time.Duration) Base {
	return Base{
		Grid:     g,
		Live:     live,
		Scratch:  scratch,
		interval: interval,
		blend:    palette.BlendLinear,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// timeToUpdate is the frame gate: it returns false while the configured
// interval has not elapsed, and otherwise stamps the frame time. A freshly
// activated mode (zero lastUpdate) is always eligible.
func (b *Base) timeToUpdate() bool {
	n := b.now()
	if !b.lastUpdate.IsZero() && n.Sub(b.lastUpdate) < b.interval {
		return false
	}
	b.lastUpdate = n
	return true
}

// ResetGate makes the mode eligible on its next Update regardless of how
// long it sat inactive.
func (b *Base) ResetGate() { b.lastUpdate = time.Time{} }

// ClearDisplay blanks the live frame, used on mode switches so the previous
// mode leaves no artifacts.
func (b *Base) ClearDisplay() { b.Live.Clear() }

// NextPalette advances cyclically through the palette catalog.
func (b *Base) NextPalette() { b.palIndex = (b.palIndex + 1) % len(palette.Catalog) }

func (b *Base) SetPalette(i int) {
	if i >= 0 && i < len(palette.Catalog) {
		b.palIndex = i
	}
}

func (b *Base) PaletteIndex() int             { return b.palIndex }
func (b *Base) SetBlend(bl palette.Blend)     { b.blend = bl }
func (b *Base) Blend() palette.Blend          { return b.blend }
func (b *Base) SetInterval(d time.Duration)   { b.interval = d }
func (b *Base) Interval() time.Duration       { return b.interval }
func (b *Base) SetClock(now func() time.Time) { b.now = now }
func (b *Base) SetSeed(seed int64)            { b.rng = rand.New(rand.NewSource(seed)) }

// colorAt looks up the active palette at index, scaled to brightness.
func (b *Base) colorAt(index, brightness uint8) grid.RGB {
	return palette.Catalog[b.palIndex].Color(index, brightness, b.blend)
}
