package mode

import "time"

const (
	bounceInterval  = 50 * time.Millisecond
	bounceParticles = 6
	bounceMinSpeed  = 2.0 // pixels/second
	bounceMaxSpeed  = 8.0
)

type particle struct {
	x, y   float64
	vx, vy float64
	color  uint8
}

// Bounce integrates a small set of particles with float positions and
// velocities, reflecting them off the matrix edges.
type Bounce struct {
	Base
	particles [bounceParticles]particle
	lastTick  time.Time
}

func NewBounce(b Base) *Bounce {
	if b.interval == 0 {
		b.interval = bounceInterval
	}
	return &Bounce{Base: b}
}

func (m *Bounce) Name() string { return "bounce" }

func (m *Bounce) Init() {
	for i := range m.particles {
		m.particles[i] = particle{
			x:     m.rng.Float64() * float64(m.Grid.Width),
			y:     m.rng.Float64() * float64(m.Grid.Height),
			vx:    m.randSpeed(),
			vy:    m.randSpeed(),
			color: uint8(m.rng.Intn(256)),
		}
	}
	m.lastTick = time.Time{}
	m.ResetGate()
}

func (m *Bounce) randSpeed() float64 {
	v := bounceMinSpeed + m.rng.Float64()*(bounceMaxSpeed-bounceMinSpeed)
	if m.rng.Intn(2) == 0 {
		return -v
	}
	return v
}

func (m *Bounce) Update() bool {
	if !m.timeToUpdate() {
		return false
	}
	now := m.now()
	dt := m.interval.Seconds()
	if !m.lastTick.IsZero() {
		if e := now.Sub(m.lastTick); e < time.Second {
			dt = e.Seconds()
		}
		// a resumed mode integrates one nominal step, not the whole gap
	}
	m.lastTick = now

	for i := range m.particles {
		m.particles[i].advance(dt, float64(m.Grid.Width), float64(m.Grid.Height))
	}

	m.Live.Clear()
	for _, p := range m.particles {
		if idx, ok := m.Grid.SafeIndex(int(p.x), int(p.y)); ok {
			m.Live[idx] = m.colorAt(p.color, 255)
		}
	}
	return true
}

// advance integrates one step and reflects at the walls, clamping the
// position back inside [0, dim) so a particle can never escape.
func (p *particle) advance(dt, w, h float64) {
	p.x += p.vx * dt
	p.y += p.vy * dt
	if p.x < 0 {
		p.x = 0
		p.vx = -p.vx
	} else if p.x >= w {
		p.x = w - 0.001
		p.vx = -p.vx
	}
	if p.y < 0 {
		p.y = 0
		p.vy = -p.vy
	} else if p.y >= h {
		p.y = h - 0.001
		p.vy = -p.vy
	}
}
