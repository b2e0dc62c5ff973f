package mode

import (
	"time"

	"glowgrid/internal/grid"
)

const (
	twinkleInterval   = 30 * time.Millisecond
	twinkleBrightness = 96

	// Per-tick toggle odds, tuned so roughly 15% of cells are lit at
	// steady state: fill = (1/oddsOn) / (1/oddsOn + 1/oddsOff).
	twinkleOddsOn  = 40
	twinkleOddsOff = 7
)

// Twinkle toggles each cell independently: dark cells ignite with a small
// probability and a random palette color, lit cells extinguish with the
// complementary odds.
type Twinkle struct {
	Base
}

func NewTwinkle(b Base) *Twinkle {
	if b.interval == 0 {
		b.interval = twinkleInterval
	}
	return &Twinkle{Base: b}
}

func (m *Twinkle) Name() string { return "twinkle" }

func (m *Twinkle) Init() {
	m.ClearDisplay()
	m.ResetGate()
}

// IsLit reports whether buffer cell i currently holds a non-black pixel.
func (m *Twinkle) IsLit(i int) bool { return !m.Live[i].IsBlack() }

func (m *Twinkle) Update() bool {
	if !m.timeToUpdate() {
		return false
	}
	changed := false
	for i := range m.Live {
		if m.IsLit(i) {
			if m.rng.Intn(twinkleOddsOff) == 0 {
				m.Live[i] = grid.RGB{}
				changed = true
			}
		} else if m.rng.Intn(twinkleOddsOn) == 0 {
			m.Live[i] = m.litColor()
			changed = true
		}
	}
	return changed
}

// litColor draws a random palette color, retrying past black stops (the lava
// palette starts at black) so a freshly lit cell always reads as lit.
func (m *Twinkle) litColor() grid.RGB {
	for try := 0; try < 8; try++ {
		c := m.colorAt(uint8(m.rng.Intn(256)), twinkleBrightness)
		if !c.IsBlack() {
			return c
		}
	}
	return grid.RGB{R: twinkleBrightness, G: twinkleBrightness, B: twinkleBrightness}
}
