package mode

import (
	"testing"
	"time"
)

func TestParticleReflects(t *testing.T) {
	p := particle{x: 7.5, y: 2, vx: 4, vy: 0}
	p.advance(0.5, 8, 8) // would reach x=9.5

	if p.vx != -4 {
		t.Errorf("vx = %v, want sign flipped exactly once", p.vx)
	}
	if p.x < 0 || p.x >= 8 {
		t.Errorf("x = %v escaped [0,8)", p.x)
	}

	p.advance(0.1, 8, 8)
	if p.vx != -4 {
		t.Errorf("vx flipped again without a wall: %v", p.vx)
	}
}

func TestParticleStaysInBounds(t *testing.T) {
	p := particle{x: 1, y: 1, vx: 5.3, vy: -3.7}
	for i := 0; i < 1000; i++ {
		p.advance(0.05, 8, 8)
		if p.x < 0 || p.x >= 8 || p.y < 0 || p.y >= 8 {
			t.Fatalf("particle escaped at step %d: (%v, %v)", i, p.x, p.y)
		}
	}
}

func TestBounceRendersParticles(t *testing.T) {
	g, live, scratch := testRig(8, 8)
	clock := newFakeClock()
	m := NewBounce(NewBase(g, live, scratch, 0))
	m.SetClock(clock.now)
	m.SetSeed(7)
	m.Init()

	for i := 0; i < 5; i++ {
		clock.advance(100 * time.Millisecond)
		if !m.Update() {
			t.Fatalf("update %d did not render", i)
		}
	}

	lit := 0
	for i := range live {
		if !live[i].IsBlack() {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no particle rendered")
	}
	if lit > bounceParticles {
		t.Errorf("%d pixels lit, more than %d particles", lit, bounceParticles)
	}
}
