package mode

import "time"

const (
	linesInterval   = 150 * time.Millisecond
	linesBrightness = 128
	linesColorStep  = 16 // palette advance on every bounce
)

// Lines sweeps one horizontal and one vertical line across the matrix, each
// bouncing independently between the edges. The column is drawn last, so it
// wins the crossing pixel.
type Lines struct {
	Base
	row, col       int
	rowInc, colInc int
	rowColor       uint8
	colColor       uint8
}

func NewLines(b Base) *Lines {
	if b.interval == 0 {
		b.interval = linesInterval
	}
	return &Lines{Base: b}
}

func (m *Lines) Name() string { return "lines" }

func (m *Lines) Init() {
	// a 1-row or 1-column matrix clamps the start to its only line
	m.row = min(1, m.Grid.Height-1)
	m.col = min(1, m.Grid.Width-1)
	m.rowInc, m.colInc = 1, 1
	m.rowColor, m.colColor = 0, 128
	m.ClearDisplay()
	m.ResetGate()
}

func (m *Lines) Update() bool {
	if !m.timeToUpdate() {
		return false
	}
	g := m.Grid
	m.Live.Clear()

	rc := m.colorAt(m.rowColor, linesBrightness)
	for x := 0; x < g.Width; x++ {
		m.Live[g.Index(x, m.row)] = rc
	}
	cc := m.colorAt(m.colColor, linesBrightness)
	for y := 0; y < g.Height; y++ {
		m.Live[g.Index(m.col, y)] = cc
	}

	m.row += m.rowInc
	if m.row <= 0 {
		m.row = 0
		m.rowInc = 1
		m.rowColor += linesColorStep
	} else if m.row >= g.Height-1 {
		m.row = g.Height - 1
		m.rowInc = -1
		m.rowColor += linesColorStep
	}

	m.col += m.colInc
	if m.col <= 0 {
		m.col = 0
		m.colInc = 1
		m.colColor += linesColorStep
	} else if m.col >= g.Width-1 {
		m.col = g.Width - 1
		m.colInc = -1
		m.colColor += linesColorStep
	}
	return true
}
