// Package engine runs the cooperative animation loop: it owns the frames,
// the mode set and the text queue, advances exactly one mode per tick, and
// translates input lines into text units or control commands.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"glowgrid/internal/grid"
	"glowgrid/internal/mode"
	"glowgrid/internal/palette"
	"glowgrid/internal/textq"
)

// CommandPrefix marks an input line as a control command rather than text
// to display.
const CommandPrefix = "::"

// Options tunes engine construction. Zero values fall back to defaults.
type Options struct {
	// Mode is the initially selected automatic mode name.
	Mode string
	// Palette is the starting palette catalog index.
	Palette int
	// Blend selects the palette lookup; the zero value is linear blending.
	Blend palette.Blend
	// TextRepeat is the repeat count given to plain input text.
	TextRepeat uint8
	// LifeReseedAfter configures the Game of Life stagnation reseed:
	// positive sets the grace period, negative disables, 0 keeps the default.
	LifeReseedAfter int
	// Intervals overrides per-mode frame intervals, keyed by mode name.
	Intervals map[string]time.Duration
	// Clock replaces time.Now, for deterministic stepping.
	Clock func() time.Time
	// Seed fixes the RNG of the stochastic modes when non-zero.
	Seed int64
}

// Engine drives one matrix. Single-threaded by design: callers serialize
// Step and input handling on one goroutine, mirroring the polled device
// loop this models.
type Engine struct {
	grid    grid.Grid
	live    grid.Frame
	scratch grid.Frame

	modes  []mode.Mode
	active int

	text       *mode.Text
	queue      *textq.Queue
	textActive bool

	paletteIdx int
	blend      palette.Blend
	repeat     uint8
}

func New(g grid.Grid, opts Options) (*Engine, error) {
	if opts.TextRepeat == 0 {
		opts.TextRepeat = 3
	}

	e := &Engine{
		grid:       g,
		live:       grid.NewFrame(g),
		scratch:    grid.NewFrame(g),
		queue:      &textq.Queue{},
		paletteIdx: opts.Palette,
		blend:      opts.Blend,
		repeat:     opts.TextRepeat,
	}

	reg := mode.NewRegistry()
	e.modes = reg.Build(g, e.live, e.scratch)
	e.text = mode.NewText(mode.NewBase(g, e.live, e.scratch, 0), e.queue)

	for _, m := range e.allModes() {
		m.SetPalette(e.paletteIdx)
		m.SetBlend(e.blend)
		if d, ok := opts.Intervals[m.Name()]; ok {
			setInterval(m, d)
		}
		if opts.Clock != nil {
			setClock(m, opts.Clock)
		}
		if opts.Seed != 0 {
			setSeed(m, opts.Seed)
		}
		if l, ok := m.(*mode.Life); ok {
			switch {
			case opts.LifeReseedAfter > 0:
				l.SetReseedAfter(opts.LifeReseedAfter)
			case opts.LifeReseedAfter < 0: // negative disables reseeding
				l.SetReseedAfter(0)
			}
		}
	}
	e.text.Init()

	start := 0
	if opts.Mode != "" {
		i, err := e.modeIndex(opts.Mode)
		if err != nil {
			return nil, err
		}
		start = i
	}
	e.activate(start)
	return e, nil
}

// Step advances the display by at most one frame: the text mode while it has
// work, the selected automatic mode otherwise. It reports whether the live
// frame changed.
func (e *Engine) Step() bool {
	if e.text.Displaying() {
		if !e.textActive {
			e.textActive = true
			e.text.ClearDisplay()
			e.text.ResetGate()
		}
		return e.text.Update()
	}
	if e.textActive {
		e.textActive = false
		e.activate(e.active) // re-enter the interrupted mode cleanly
	}
	return e.modes[e.active].Update()
}

// Frame is the live pixel buffer. Sinks must treat it as read-only.
func (e *Engine) Frame() grid.Frame { return e.live }

func (e *Engine) Grid() grid.Grid { return e.grid }

// ActiveName names the mode currently rendering, "text" while preempted.
func (e *Engine) ActiveName() string {
	if e.textActive {
		return e.text.Name()
	}
	return e.modes[e.active].Name()
}

// SelectedName names the chosen automatic mode, ignoring text preemption.
func (e *Engine) SelectedName() string { return e.modes[e.active].Name() }

func (e *Engine) ModeNames() []string {
	names := make([]string, len(e.modes))
	for i, m := range e.modes {
		names[i] = m.Name()
	}
	return names
}

// NextMode advances to the next automatic mode.
func (e *Engine) NextMode() { e.activate((e.active + 1) % len(e.modes)) }

// SetMode selects an automatic mode by name.
func (e *Engine) SetMode(name string) error {
	i, err := e.modeIndex(name)
	if err != nil {
		return err
	}
	e.activate(i)
	return nil
}

// NextPalette moves every mode to the next palette in the catalog.
func (e *Engine) NextPalette() {
	e.setPalette((e.paletteIdx + 1) % len(palette.Catalog))
}

// SetPalette selects a palette by catalog name for every mode.
func (e *Engine) SetPalette(name string) error {
	i, err := palette.ByName(name)
	if err != nil {
		return err
	}
	e.setPalette(i)
	return nil
}

func (e *Engine) PaletteName() string { return palette.Catalog[e.paletteIdx].Name }

// ToggleBlend flips between stepped and linear palette lookups.
func (e *Engine) ToggleBlend() {
	if e.blend == palette.BlendLinear {
		e.blend = palette.BlendNone
	} else {
		e.blend = palette.BlendLinear
	}
	for _, m := range e.allModes() {
		m.SetBlend(e.blend)
	}
}

func (e *Engine) Blend() palette.Blend { return e.blend }

// PushText queues a string for the scrolling text mode. False means the
// bounded queue was full (or the text invalid) and the unit was dropped.
func (e *Engine) PushText(text string, repeat, colorIndex uint8) bool {
	return e.queue.Push(text, repeat, colorIndex)
}

// QueueLen reports pending text units, for status displays.
func (e *Engine) QueueLen() int { return e.queue.Len() }

// Clear blanks the display without touching mode state.
func (e *Engine) Clear() { e.live.Clear() }

// HandleInput processes one raw input line. Lines starting with the command
// prefix carry a case-insensitive control token; anything else is queued as
// display text. Empty input is a no-op.
func (e *Engine) HandleInput(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, CommandPrefix) {
		if !e.PushText(line, e.repeat, 0) {
			return fmt.Errorf("text queue full")
		}
		return nil
	}

	fields := strings.Fields(line[len(CommandPrefix):])
	if len(fields) == 0 {
		return fmt.Errorf("empty command")
	}
	arg := strings.Join(fields[1:], " ")
	switch strings.ToLower(fields[0]) {
	case "mode":
		if arg == "" {
			e.NextMode()
			return nil
		}
		return e.SetMode(strings.ToLower(arg))
	case "palette":
		if arg == "" {
			e.NextPalette()
			return nil
		}
		return e.SetPalette(strings.ToLower(arg))
	case "blend":
		e.ToggleBlend()
		return nil
	case "clear":
		e.Clear()
		return nil
	case "text":
		if arg == "" {
			return fmt.Errorf("text command needs an argument")
		}
		if !e.PushText(arg, e.repeat, 0) {
			return fmt.Errorf("text queue full")
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", fields[0])
}

// Feed splits a raw transport stream into lines and hands each to
// HandleInput. Per-line failures are absorbed, matching the device's
// keep-running error posture; only transport read errors surface.
func (e *Engine) Feed(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		_ = e.HandleInput(sc.Text())
	}
	return sc.Err()
}

// activate switches the rendering mode: clear the old mode's pixels, reset
// private state, and make the gate fire on the next tick.
func (e *Engine) activate(i int) {
	e.active = i
	m := e.modes[i]
	m.ClearDisplay()
	m.Init()
}

func (e *Engine) setPalette(i int) {
	e.paletteIdx = i
	for _, m := range e.allModes() {
		m.SetPalette(i)
	}
}

func (e *Engine) modeIndex(name string) (int, error) {
	for i, m := range e.modes {
		if m.Name() == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %s", name)
}

func (e *Engine) allModes() []mode.Mode {
	return append(append([]mode.Mode(nil), e.modes...), e.text)
}

func setInterval(m mode.Mode, d time.Duration) {
	m.(interface{ SetInterval(time.Duration) }).SetInterval(d)
}

func setClock(m mode.Mode, now func() time.Time) {
	m.(interface{ SetClock(func() time.Time) }).SetClock(now)
}

func setSeed(m mode.Mode, seed int64) {
	m.(interface{ SetSeed(int64) }).SetSeed(seed)
}
