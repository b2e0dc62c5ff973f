package mode

import (
	"time"

	"glowgrid/internal/font"
	"glowgrid/internal/grid"
	"glowgrid/internal/textq"
)

const textInterval = 200 * time.Millisecond

// Text scrolls queued strings across the matrix one column per tick. It
// holds the flattened column bitmap of the unit being rendered plus the
// bounded queue of pending units; the queue survives Init so text pushed
// while another mode is active is not lost.
type Text struct {
	Base
	queue   *textq.Queue
	columns []byte
	colPtr  int
	color   grid.RGB
	loaded  bool

	incoming []grid.RGB
}

func NewText(b Base, q *textq.Queue) *Text {
	if b.interval == 0 {
		b.interval = textInterval
	}
	if q == nil {
		q = &textq.Queue{}
	}
	return &Text{Base: b, queue: q}
}

func (m *Text) Name() string { return "text" }

// Init drops the unit currently being rendered but keeps the queue.
func (m *Text) Init() {
	m.columns = nil
	m.colPtr = 0
	m.loaded = false
	m.incoming = make([]grid.RGB, m.Grid.Height)
	m.ResetGate()
}

// Enqueue adds a unit to the pending queue; false means the queue was full
// (or the text invalid) and nothing was stored.
func (m *Text) Enqueue(text string, repeat, colorIndex uint8) bool {
	return m.queue.Push(text, repeat, colorIndex)
}

// Displaying reports whether a string is mid-scroll or units are pending.
// The engine uses it to preempt the selected automatic mode.
func (m *Text) Displaying() bool { return m.loaded || !m.queue.Empty() }

// QueueLen exposes the pending unit count for status displays.
func (m *Text) QueueLen() int { return m.queue.Len() }

func (m *Text) Update() bool {
	if !m.timeToUpdate() {
		return false
	}
	if !m.loaded && !m.loadNext() {
		return false
	}

	col := byte(0)
	if m.colPtr < len(m.columns) {
		col = m.columns[m.colPtr]
	}
	m.paintColumn(col)
	m.Grid.ShiftLeft(m.Live, m.incoming)
	m.colPtr++

	// keep shifting blanks until the tail clears the right edge
	if m.colPtr >= len(m.columns)+m.Grid.Width {
		m.columns = nil
		m.colPtr = 0
		m.loaded = false
	}
	return true
}

func (m *Text) loadNext() bool {
	u, ok := m.queue.Pop()
	if !ok {
		return false
	}
	m.columns = font.Columns(u.Text)
	m.colPtr = 0
	m.color = m.colorAt(u.ColorIndex, 255)
	m.loaded = true
	if m.incoming == nil {
		m.incoming = make([]grid.RGB, m.Grid.Height)
	}
	return true
}

// paintColumn rasterizes one glyph column into the incoming edge, centered
// vertically when the matrix is taller than the font.
func (m *Text) paintColumn(bits byte) {
	for y := range m.incoming {
		m.incoming[y] = grid.RGB{}
	}
	yOff := (m.Grid.Height - font.GlyphRows) / 2
	if yOff < 0 {
		yOff = 0
	}
	for row := 0; row < font.GlyphRows; row++ {
		y := yOff + row
		if y >= m.Grid.Height {
			break
		}
		if bits&(1<<uint(row)) != 0 {
			m.incoming[y] = m.color
		}
	}
}
