package mode

import (
	"time"

	"glowgrid/internal/grid"
)

const (
	wormInterval   = 50 * time.Millisecond
	wormLength     = 7
	wormBrightness = 128
	wormColorStep  = 4 // palette offset between segment cells
)

// Worm walks a fixed-length segment along the flattened buffer, front first,
// reversing direction at either end. The palette index creeps forward every
// tick so the segment cycles through the gradient as it travels.
type Worm struct {
	Base
	front      int
	dir        int
	colorIndex uint8
}

func NewWorm(b Base) *Worm {
	if b.interval == 0 {
		b.interval = wormInterval
	}
	return &Worm{Base: b}
}

func (m *Worm) Name() string { return "worm" }

func (m *Worm) Init() {
	m.front = wormLength
	m.dir = 1
	m.colorIndex = 0
	m.ClearDisplay()
	m.ResetGate()
}

func (m *Worm) Update() bool {
	if !m.timeToUpdate() {
		return false
	}
	last := len(m.Live) - 1

	m.front += m.dir
	if m.front >= last {
		m.front = last
		m.dir = -1
	} else if m.front <= 0 {
		m.front = 0
		m.dir = 1
	}

	tail := m.front - wormLength + 1
	if tail < 0 {
		tail = 0
	}
	for i := range m.Live {
		if i >= tail && i <= m.front {
			offset := uint8(m.front-i) * wormColorStep
			m.Live[i] = m.colorAt(m.colorIndex+offset, wormBrightness)
		} else {
			m.Live[i] = grid.RGB{}
		}
	}
	m.colorIndex++
	return true
}
