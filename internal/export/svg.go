// Package export writes frame snapshots to portable formats.
package export

import (
	"fmt"
	"io"

	"glowgrid/internal/grid"
)

// WriteSVG renders a frame as an SVG grid of rounded rects, one per LED,
// cell pixels wide each, over a dark backplate.
func WriteSVG(w io.Writer, g grid.Grid, f grid.Frame, cell int) error {
	if cell < 1 {
		cell = 16
	}
	width := g.Width * cell
	height := g.Height * cell

	if _, err := fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height); err != nil {
		return err
	}

	pad := cell / 8
	side := cell - 2*pad
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := f[g.Index(x, y)]
			if c.IsBlack() {
				continue
			}
			if _, err := fmt.Fprintf(w,
				"<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" rx=\"%d\" fill=\"%s\"/>\n",
				x*cell+pad, y*cell+pad, side, side, pad, c.Hex()); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}
