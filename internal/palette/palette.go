// Package palette holds the fixed catalog of color gradients shared by the
// display modes. A palette is 16 stops spread over a cyclic 0-255 index
// space; lookups either step between stops or blend linearly, wrapping the
// last stop back to the first.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"glowgrid/internal/grid"
)

// Blend selects how Color interpolates between adjacent stops. The zero
// value is linear blending, the device default.
type Blend int

const (
	BlendLinear Blend = iota
	BlendNone
)

func (b Blend) String() string {
	if b == BlendLinear {
		return "linear"
	}
	return "stepped"
}

func ParseBlend(s string) (Blend, error) {
	switch s {
	case "stepped", "none":
		return BlendNone, nil
	case "linear":
		return BlendLinear, nil
	}
	return 0, fmt.Errorf("unknown blend: %s", s)
}

const numStops = 16

type Palette struct {
	Name  string
	Stops [numStops]grid.RGB
}

// Color maps index (0-255, cyclic) to a pixel. Each stop covers 16 indexes;
// with BlendLinear the position inside that span lerps toward the next stop.
// brightness 255 returns the palette color unscaled.
func (p Palette) Color(index, brightness uint8, blend Blend) grid.RGB {
	hi := index >> 4
	lo := index & 0x0f
	c := p.Stops[hi]
	if blend == BlendLinear && lo != 0 {
		next := p.Stops[(hi+1)%numStops]
		c = grid.Lerp(c, next, lo*17) // lo/16 scaled onto 0-255
	}
	return c.Scale(brightness)
}

// Catalog is the process-wide list of palettes, in selection order.
var Catalog = []Palette{
	{Name: "rainbow", Stops: gradient(
		"#ff0000", "#ff7f00", "#ffff00", "#7fff00",
		"#00ff00", "#00ff7f", "#00ffff", "#007fff",
		"#0000ff", "#7f00ff", "#ff00ff", "#ff007f",
	)},
	{Name: "cloud", Stops: gradient(
		"#00008b", "#191970", "#4169e1", "#6495ed",
		"#87ceeb", "#b0e0e6", "#e6f2ff", "#8bb8e8",
	)},
	{Name: "party", Stops: gradient(
		"#5500ab", "#84007c", "#b5004b", "#e5001b",
		"#e81700", "#b84700", "#ab7700", "#abab00",
		"#ab5500", "#dd2200", "#f2000e", "#c2003e",
	)},
	{Name: "ocean", Stops: gradient(
		"#000c24", "#00244c", "#005a85", "#008c9e",
		"#00b4a0", "#2ee69a", "#0a7e7e", "#003c56",
	)},
	{Name: "lava", Stops: gradient(
		"#000000", "#330000", "#800000", "#c42500",
		"#ff4d00", "#ff8c00", "#ffd700", "#ffffff",
	)},
}

// ByName returns the catalog position of the named palette.
func ByName(name string) (int, error) {
	for i, p := range Catalog {
		if p.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown palette: %s", name)
}

func Names() []string {
	names := make([]string, len(Catalog))
	for i, p := range Catalog {
		names[i] = p.Name
	}
	return names
}

// gradient spreads keyframe colors evenly around the cyclic stop ring, the
// last keyframe blending back into the first.
func gradient(keys ...string) [numStops]grid.RGB {
	var stops [numStops]grid.RGB
	n := len(keys)
	for i := range stops {
		pos := float64(i) / numStops * float64(n)
		k := int(pos)
		frac := pos - float64(k)
		a := mustHex(keys[k%n])
		b := mustHex(keys[(k+1)%n])
		c := a.BlendRgb(b, frac)
		r, g, bl := c.RGB255()
		stops[i] = grid.RGB{R: r, G: g, B: bl}
	}
	return stops
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad palette keyframe %q: %v", s, err))
	}
	return c
}
