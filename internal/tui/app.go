// Package tui is the terminal front end: it plays the role the LED driver
// and the serial link play on the real device, pumping engine ticks at the
// configured refresh rate and feeding typed input back in.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glowgrid/internal/engine"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)

type model struct {
	eng *engine.Engine
	fps int

	typing bool
	input  string
	status string
	paused bool
}

// Run drives the engine in a bubbletea program until the user quits.
func Run(eng *engine.Engine, fps int) error {
	if fps < 1 {
		fps = 30
	}
	m := model{eng: eng, fps: fps}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.eng.Step()
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.Type {
		case tea.KeyEnter:
			m.status = ""
			if err := m.eng.HandleInput(m.input); err != nil {
				m.status = err.Error()
			}
			m.typing = false
			m.input = ""
		case tea.KeyEscape:
			m.typing = false
			m.input = ""
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.input += string(msg.Runes)
			if msg.Type == tea.KeySpace {
				m.input += " "
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "m":
		m.eng.NextMode()
	case "p":
		m.eng.NextPalette()
	case "b":
		m.eng.ToggleBlend()
	case "c":
		m.eng.Clear()
	case " ":
		m.paused = !m.paused
	case "/":
		m.typing = true
		m.input = ""
		m.status = ""
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("glowgrid"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.renderMatrix()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.typing {
		b.WriteString(promptStyle.Render("> " + m.input + "█"))
	} else {
		b.WriteString(hintStyle.Render("m mode · p palette · b blend · c clear · space pause · / type · q quit"))
	}
	if m.status != "" {
		b.WriteString("  " + errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// renderMatrix draws every LED as a two-column block in its true color.
func (m model) renderMatrix() string {
	g := m.eng.Grid()
	f := m.eng.Frame()
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < g.Width; x++ {
			c := f[g.Index(x, y)]
			if c.IsBlack() {
				b.WriteString(hintStyle.Render("··"))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██"))
		}
	}
	return b.String()
}

func (m model) renderStatus() string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	parts := []string{
		labelStyle.Render("mode ") + valueStyle.Render(m.eng.ActiveName()),
		labelStyle.Render("palette ") + valueStyle.Render(m.eng.PaletteName()),
		labelStyle.Render("blend ") + valueStyle.Render(m.eng.Blend().String()),
		labelStyle.Render("queue ") + valueStyle.Render(fmt.Sprintf("%d", m.eng.QueueLen())),
		labelStyle.Render(state),
	}
	return strings.Join(parts, labelStyle.Render(" · "))
}
