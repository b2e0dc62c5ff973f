package export

import (
	"strings"
	"testing"

	"glowgrid/internal/grid"
)

func TestWriteSVG(t *testing.T) {
	g := grid.New(4, 2, grid.LayoutRow)
	f := grid.NewFrame(g)
	f[g.Index(0, 0)] = grid.RGB{R: 255}
	f[g.Index(3, 1)] = grid.RGB{G: 128}

	var sb strings.Builder
	if err := WriteSVG(&sb, g, f, 16); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, `<?xml`) || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not a complete SVG document")
	}
	if got := strings.Count(out, "<rect"); got != 3 { // backplate + 2 lit cells
		t.Errorf("found %d rects, want 3", got)
	}
	if !strings.Contains(out, "#ff0000") {
		t.Error("missing red cell color")
	}
	if !strings.Contains(out, `width="64" height="32"`) {
		t.Error("wrong canvas size")
	}
}

func TestWriteSVGSkipsDarkCells(t *testing.T) {
	g := grid.New(3, 3, grid.LayoutRow)
	var sb strings.Builder
	if err := WriteSVG(&sb, g, grid.NewFrame(g), 8); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(sb.String(), "<rect"); got != 1 {
		t.Errorf("dark frame produced %d rects, want backplate only", got)
	}
}
