package grid

import "fmt"

// RGB is one pixel, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// IsBlack reports whether the pixel is fully off.
func (c RGB) IsBlack() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// Scale dims the pixel, mapping brightness 255 to the original color.
func (c RGB) Scale(brightness uint8) RGB {
	b := int(brightness)
	return RGB{
		R: uint8(int(c.R) * b / 255),
		G: uint8(int(c.G) * b / 255),
		B: uint8(int(c.B) * b / 255),
	}
}

// Hex formats the pixel as "#rrggbb".
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Lerp blends a toward b; t=0 yields a, t=255 yields b.
func Lerp(a, b RGB, t uint8) RGB {
	mix := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*int(t)/255)
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Frame is one full pixel buffer, length Grid.Size(), addressed via Grid.Index.
type Frame []RGB

func NewFrame(g Grid) Frame { return make(Frame, g.Size()) }

// Clear sets every pixel to black.
func (f Frame) Clear() {
	for i := range f {
		f[i] = RGB{}
	}
}

// CopyTo copies the frame into dst. The two frames must have equal length.
func (f Frame) CopyTo(dst Frame) { copy(dst, f) }

// ShiftDown moves every row one step toward the bottom. incoming fills the
// top row; nil fills with black. incoming must hold Width pixels when set.
func (g Grid) ShiftDown(f Frame, incoming []RGB) {
	for y := g.Height - 1; y > 0; y-- {
		for x := 0; x < g.Width; x++ {
			f[g.Index(x, y)] = f[g.Index(x, y-1)]
		}
	}
	for x := 0; x < g.Width; x++ {
		f[g.Index(x, 0)] = pick(incoming, x)
	}
}

// ShiftUp moves every row one step toward the top, filling the bottom row
// from incoming (black when nil).
func (g Grid) ShiftUp(f Frame, incoming []RGB) {
	for y := 0; y < g.Height-1; y++ {
		for x := 0; x < g.Width; x++ {
			f[g.Index(x, y)] = f[g.Index(x, y+1)]
		}
	}
	for x := 0; x < g.Width; x++ {
		f[g.Index(x, g.Height-1)] = pick(incoming, x)
	}
}

// ShiftLeft moves every column one step left. incoming fills the rightmost
// column top to bottom; nil fills with black. incoming must hold Height
// pixels when set.
func (g Grid) ShiftLeft(f Frame, incoming []RGB) {
	for x := 0; x < g.Width-1; x++ {
		for y := 0; y < g.Height; y++ {
			f[g.Index(x, y)] = f[g.Index(x+1, y)]
		}
	}
	for y := 0; y < g.Height; y++ {
		f[g.Index(g.Width-1, y)] = pick(incoming, y)
	}
}

// ShiftRight moves every column one step right, filling the leftmost column
// from incoming (black when nil).
func (g Grid) ShiftRight(f Frame, incoming []RGB) {
	for x := g.Width - 1; x > 0; x-- {
		for y := 0; y < g.Height; y++ {
			f[g.Index(x, y)] = f[g.Index(x-1, y)]
		}
	}
	for y := 0; y < g.Height; y++ {
		f[g.Index(0, y)] = pick(incoming, y)
	}
}

// ShiftPercentDown blends each pixel toward the one that a full ShiftDown
// would put there. percent 0 leaves the frame untouched, percent 100 equals
// ShiftDown. Used for sub-frame smooth scrolling.
func (g Grid) ShiftPercentDown(f Frame, percent int, incoming []RGB) {
	t := percentByte(percent)
	for y := g.Height - 1; y > 0; y-- {
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			f[i] = Lerp(f[i], f[g.Index(x, y-1)], t)
		}
	}
	for x := 0; x < g.Width; x++ {
		i := g.Index(x, 0)
		f[i] = Lerp(f[i], pick(incoming, x), t)
	}
}

// ShiftPercentLeft is the horizontal counterpart of ShiftPercentDown; the
// incoming column enters from the right edge.
func (g Grid) ShiftPercentLeft(f Frame, percent int, incoming []RGB) {
	t := percentByte(percent)
	for x := 0; x < g.Width-1; x++ {
		for y := 0; y < g.Height; y++ {
			i := g.Index(x, y)
			f[i] = Lerp(f[i], f[g.Index(x+1, y)], t)
		}
	}
	for y := 0; y < g.Height; y++ {
		i := g.Index(g.Width-1, y)
		f[i] = Lerp(f[i], pick(incoming, y), t)
	}
}

func pick(line []RGB, i int) RGB {
	if line == nil || i >= len(line) {
		return RGB{}
	}
	return line[i]
}

func percentByte(percent int) uint8 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return 255
	}
	return uint8(percent * 255 / 100)
}
