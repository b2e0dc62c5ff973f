package mode

import (
	"fmt"

	"glowgrid/internal/grid"
)

// Factory builds a mode over an already-wired Base. The engine constructs
// one Base per mode so each carries its own gate and palette selection while
// sharing the live and scratch frames.
type Factory func(b Base) Mode

// Registry is the closed, ordered set of automatic display modes. The
// scrolling text mode is not listed here; it is input-driven and owned
// directly by the engine.
type Registry struct {
	names     []string
	factories map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.register("rain", func(b Base) Mode { return NewRain(b) })
	r.register("bounce", func(b Base) Mode { return NewBounce(b) })
	r.register("life", func(b Base) Mode { return NewLife(b) })
	r.register("twinkle", func(b Base) Mode { return NewTwinkle(b) })
	r.register("worm", func(b Base) Mode { return NewWorm(b) })
	r.register("lines", func(b Base) Mode { return NewLines(b) })
	return r
}

func (r *Registry) register(name string, f Factory) {
	r.names = append(r.names, name)
	r.factories[name] = f
}

// Build instantiates every registered mode in order, each over a fresh Base
// sharing the given frames.
func (r *Registry) Build(g grid.Grid, live, scratch grid.Frame) []Mode {
	modes := make([]Mode, 0, len(r.names))
	for _, name := range r.names {
		modes = append(modes, r.factories[name](NewBase(g, live, scratch, 0)))
	}
	return modes
}

// Get builds a single mode by name.
func (r *Registry) Get(name string, g grid.Grid, live, scratch grid.Frame) (Mode, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown mode: %s", name)
	}
	return f(NewBase(g, live, scratch, 0)), nil
}

func (r *Registry) Names() []string { return append([]string(nil), r.names...) }
