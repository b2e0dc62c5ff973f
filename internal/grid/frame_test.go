package grid

import "testing"

func row(cs ...uint8) []RGB {
	out := make([]RGB, len(cs))
	for i, c := range cs {
		out[i] = RGB{R: c}
	}
	return out
}

func TestShiftDown(t *testing.T) {
	g := New(3, 3, LayoutRow)
	f := NewFrame(g)
	f[g.Index(0, 0)] = RGB{R: 10}
	f[g.Index(2, 1)] = RGB{R: 20}

	g.ShiftDown(f, row(1, 2, 3))

	if got := f[g.Index(0, 1)]; got != (RGB{R: 10}) {
		t.Errorf("pixel did not move down: %v", got)
	}
	if got := f[g.Index(2, 2)]; got != (RGB{R: 20}) {
		t.Errorf("pixel did not move down: %v", got)
	}
	for x := 0; x < 3; x++ {
		if got := f[g.Index(x, 0)]; got != (RGB{R: uint8(x + 1)}) {
			t.Errorf("top row[%d] = %v, want incoming", x, got)
		}
	}
}

func TestShiftUpDropsTopRow(t *testing.T) {
	g := New(2, 2, LayoutRow)
	f := NewFrame(g)
	f[g.Index(0, 0)] = RGB{R: 9}
	f[g.Index(1, 1)] = RGB{G: 9}

	g.ShiftUp(f, nil)

	if got := f[g.Index(1, 0)]; got != (RGB{G: 9}) {
		t.Errorf("pixel did not move up: %v", got)
	}
	if !f[g.Index(0, 1)].IsBlack() || !f[g.Index(1, 1)].IsBlack() {
		t.Error("bottom row not filled with black")
	}
}

func TestShiftLeftSerpentine(t *testing.T) {
	// Shifts must respect the physical layout, not raw buffer order.
	g := New(3, 2, LayoutSerpentine)
	f := NewFrame(g)
	f[g.Index(2, 1)] = RGB{B: 7}

	g.ShiftLeft(f, row(1, 2))

	if got := f[g.Index(1, 1)]; got != (RGB{B: 7}) {
		t.Errorf("pixel did not move left: %v", got)
	}
	if got := f[g.Index(2, 0)]; got != (RGB{R: 1}) {
		t.Errorf("incoming column wrong at top: %v", got)
	}
	if got := f[g.Index(2, 1)]; got != (RGB{R: 2}) {
		t.Errorf("incoming column wrong at bottom: %v", got)
	}
}

func TestShiftRight(t *testing.T) {
	g := New(3, 1, LayoutRow)
	f := Frame(row(1, 2, 3))

	g.ShiftRight(f, row(9))

	want := row(9, 1, 2)
	for i := range want {
		if f[i] != want[i] {
			t.Fatalf("frame = %v, want %v", f, want)
		}
	}
}

func TestShiftPercent(t *testing.T) {
	g := New(1, 2, LayoutRow)
	f := NewFrame(g)
	f[g.Index(0, 0)] = RGB{R: 200}

	g.ShiftPercentDown(f, 50, nil)

	got := f[g.Index(0, 1)]
	if got.R < 90 || got.R > 110 {
		t.Errorf("50%% shift should half-blend, got R=%d", got.R)
	}
	if f[g.Index(0, 0)].R < 90 || f[g.Index(0, 0)].R > 110 {
		t.Errorf("top row should fade toward incoming black, got R=%d", f[g.Index(0, 0)].R)
	}

	// 100 percent equals a whole-cell shift.
	f2 := NewFrame(g)
	f2[g.Index(0, 0)] = RGB{R: 200}
	g.ShiftPercentDown(f2, 100, nil)
	if f2[g.Index(0, 1)] != (RGB{R: 200}) || !f2[g.Index(0, 0)].IsBlack() {
		t.Errorf("100%% shift != ShiftDown: %v", f2)
	}
}

func TestClearAndCopy(t *testing.T) {
	g := New(4, 4, LayoutRow)
	f := NewFrame(g)
	for i := range f {
		f[i] = RGB{R: uint8(i)}
	}
	dst := NewFrame(g)
	f.CopyTo(dst)
	for i := range f {
		if dst[i] != f[i] {
			t.Fatal("copy mismatch")
		}
	}
	f.Clear()
	for i := range f {
		if !f[i].IsBlack() {
			t.Fatal("clear left a lit pixel")
		}
	}
	if dst[1].IsBlack() {
		t.Error("clear must not touch the copy")
	}
}

func TestScale(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 0}
	half := c.Scale(128)
	if half.R != 128 || half.G != 64 || half.B != 0 {
		t.Errorf("scale(128) = %v", half)
	}
	if got := c.Scale(255); got != c {
		t.Errorf("scale(255) changed color: %v", got)
	}
	if got := c.Scale(0); !got.IsBlack() {
		t.Errorf("scale(0) not black: %v", got)
	}
}
