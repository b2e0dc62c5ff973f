// Package grid maps 2D matrix coordinates onto the 1D pixel buffer and
// provides the buffer shift/copy/clear primitives shared by all display modes.
package grid

import "fmt"

// Layout describes how the physical LED strip snakes through the matrix.
type Layout int

const (
	// LayoutRow is plain row-major wiring: every row runs left to right.
	LayoutRow Layout = iota
	// LayoutSerpentine reverses the direction of every odd row, matching
	// the usual zig-zag wiring of WS2812 matrix panels.
	LayoutSerpentine
)

func (l Layout) String() string {
	switch l {
	case LayoutRow:
		return "row"
	case LayoutSerpentine:
		return "serpentine"
	}
	return "unknown"
}

func ParseLayout(s string) (Layout, error) {
	switch s {
	case "row":
		return LayoutRow, nil
	case "serpentine":
		return LayoutSerpentine, nil
	}
	return 0, fmt.Errorf("unknown layout: %s", s)
}

// Grid is the geometry of one matrix. It carries no pixel data; frames are
// allocated separately so the live and scratch buffers can share one Grid.
type Grid struct {
	Width  int
	Height int
	Layout Layout
}

func New(width, height int, layout Layout) Grid {
	return Grid{Width: width, Height: height, Layout: layout}
}

// Size returns the number of pixels in the matrix.
func (g Grid) Size() int { return g.Width * g.Height }

// Index maps (x, y) to a buffer position. Coordinates are not checked;
// callers that cannot guarantee bounds must use SafeIndex instead.
func (g Grid) Index(x, y int) int {
	if g.Layout == LayoutSerpentine && y%2 == 1 {
		return y*g.Width + (g.Width - 1 - x)
	}
	return y*g.Width + x
}

// SafeIndex is the bounds-checked variant of Index. The second return is
// false when (x, y) lies outside the matrix.
func (g Grid) SafeIndex(x, y int) (int, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, false
	}
	return g.Index(x, y), true
}
