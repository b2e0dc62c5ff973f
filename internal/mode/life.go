package mode

import (
	"time"

	"glowgrid/internal/grid"
)

const (
	lifeInterval     = 120 * time.Millisecond
	lifeBrightness   = 40
	lifeSeedDensity  = 4 // one in N cells alive after a seed
	lifeReseedFrames = 8
)

// Life runs Conway's Game of Life on a toroidal board: live cell = lit
// pixel. Generations are computed into the scratch frame before committing
// so neighbor counts never read half-updated state. A board that stops
// changing (still life or all dead) is reseeded after a grace period.
type Life struct {
	Base
	generation  int
	stagnant    int
	reseedAfter int
}

func NewLife(b Base) *Life {
	if b.interval == 0 {
		b.interval = lifeInterval
	}
	return &Life{Base: b, reseedAfter: lifeReseedFrames}
}

func (m *Life) Name() string { return "life" }

// SetReseedAfter configures how many stagnant generations pass before the
// board reseeds. 0 disables reseeding.
func (m *Life) SetReseedAfter(n int) { m.reseedAfter = n }

func (m *Life) Generation() int { return m.generation }

func (m *Life) Init() {
	m.generation = 0
	m.stagnant = 0
	m.seed()
	m.ResetGate()
}

func (m *Life) seed() {
	for i := range m.Live {
		m.Live[i] = grid.RGB{}
		if m.rng.Intn(lifeSeedDensity) == 0 {
			m.Live[i] = m.colorAt(uint8(m.rng.Intn(256)), lifeBrightness)
		}
	}
}

func (m *Life) Update() bool {
	if !m.timeToUpdate() {
		return false
	}

	changed := m.step()
	m.generation++

	if changed {
		m.stagnant = 0
		return true
	}
	m.stagnant++
	if m.reseedAfter > 0 && m.stagnant >= m.reseedAfter {
		m.seed()
		m.stagnant = 0
		return true
	}
	return false
}

// step computes the next generation into Scratch, commits it to Live and
// reports whether any cell changed. Survivors keep their color; births draw
// a fresh palette color.
func (m *Life) step() bool {
	g := m.Grid
	changed := false
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			alive := !m.Live[i].IsBlack()
			n := m.neighbors(x, y)
			switch {
			case alive && (n == 2 || n == 3):
				m.Scratch[i] = m.Live[i]
			case !alive && n == 3:
				m.Scratch[i] = m.colorAt(uint8(m.rng.Intn(256)), lifeBrightness)
				changed = true
			default:
				m.Scratch[i] = grid.RGB{}
				if alive {
					changed = true
				}
			}
		}
	}
	m.Scratch.CopyTo(m.Live)
	return changed
}

// neighbors counts live cells in the 8-neighborhood with toroidal wrap.
func (m *Life) neighbors(x, y int) int {
	g := m.Grid
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.Width) % g.Width
			ny := (y + dy + g.Height) % g.Height
			if !m.Live[g.Index(nx, ny)].IsBlack() {
				count++
			}
		}
	}
	return count
}
