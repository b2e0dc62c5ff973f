// Package textq is the bounded ring of pending text units feeding the
// scrolling text mode. Capacity is fixed; a push against a full ring fails
// with no side effect, so the caller keeps running and the message is
// dropped.
package textq

// Capacity is the fixed ring size. MaxTextLen bounds a single unit's text.
const (
	Capacity   = 64
	MaxTextLen = 256
)

// Unit is one queued string with its remaining display count and the
// palette index used to color it. Repeat 0 marks a spent unit.
type Unit struct {
	Text       string
	Repeat     uint8
	ColorIndex uint8
}

// Queue is a fixed-capacity FIFO ring. One slot stays unused to tell full
// from empty, so at most Capacity-1 units are live at once.
type Queue struct {
	units [Capacity]Unit
	first int
	last  int
}

// Push appends a unit. It fails, leaving the queue unchanged, when the ring
// is full, the text is empty, or the text exceeds MaxTextLen.
func (q *Queue) Push(text string, repeat, colorIndex uint8) bool {
	if q.Full() || text == "" || len(text) > MaxTextLen {
		return false
	}
	q.units[q.last] = Unit{Text: text, Repeat: repeat, ColorIndex: colorIndex}
	q.last = (q.last + 1) % Capacity
	return true
}

// Pop removes and returns the head unit. A unit with repeats left is
// immediately re-enqueued at the tail with its count decremented, so a unit
// pushed with repeat n produces exactly n pops.
func (q *Queue) Pop() (Unit, bool) {
	q.skipSpent()
	if q.last == q.first {
		return Unit{}, false
	}
	u := q.units[q.first]
	q.first = (q.first + 1) % Capacity
	if u.Repeat > 1 {
		q.Push(u.Text, u.Repeat-1, u.ColorIndex)
	}
	return u, true
}

// Empty reports whether any live unit remains.
func (q *Queue) Empty() bool {
	q.skipSpent()
	return q.last == q.first
}

// Full reports whether a push would fail.
func (q *Queue) Full() bool {
	return (q.last+1)%Capacity == q.first
}

// Len counts queued units, spent head entries excluded.
func (q *Queue) Len() int {
	q.skipSpent()
	return (q.last - q.first + Capacity) % Capacity
}

// skipSpent advances the head past exhausted units. Every read path runs
// this first so repeat-0 entries can never surface.
func (q *Queue) skipSpent() {
	for q.first != q.last && q.units[q.first].Repeat == 0 {
		q.first = (q.first + 1) % Capacity
	}
}
