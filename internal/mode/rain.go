package mode

import (
	"time"

	"glowgrid/internal/grid"
)

const (
	rainInterval   = 60 * time.Millisecond
	rainBrightness = 64
	rainPixelStep  = 3 // palette offset between neighboring drops
)

// Rain scrolls the whole frame downward one row per tick, seeding the top
// row from the palette at a slowly advancing color offset.
type Rain struct {
	Base
	colorIndex uint8
	incoming   []grid.RGB
}

func NewRain(b Base) *Rain {
	if b.interval == 0 {
		b.interval = rainInterval
	}
	return &Rain{Base: b}
}

func (r *Rain) Name() string { return "rain" }

func (r *Rain) Init() {
	r.colorIndex = 0
	r.incoming = make([]grid.RGB, r.Grid.Width)
	r.ResetGate()
}

func (r *Rain) Update() bool {
	if !r.timeToUpdate() {
		return false
	}
	ci := r.colorIndex
	for x := range r.incoming {
		r.incoming[x] = r.colorAt(ci, rainBrightness)
		ci += rainPixelStep
	}
	r.Grid.ShiftDown(r.Live, r.incoming)
	r.colorIndex++ // wraps over the cyclic palette
	return true
}
