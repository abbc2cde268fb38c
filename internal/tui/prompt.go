// Package tui is the interactive design prompt.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var methodInfo = map[inlet.Method]string{
	inlet.MethodMachPair: "freestream and exit Mach",
	inlet.MethodRecovery: "exit Mach and pressure recovery",
}

// param is one editable scalar of the design.
type param struct {
	name  string
	value float64
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateRunning
	stateResult
)

type designMsg struct {
	inlet *inlet.Inlet
	err   error
}

type Model struct {
	state   state
	cursor  int
	methods []inlet.Method
	method  inlet.Method

	params      []param
	paramCursor int
	editing     bool
	editBuf     string

	base     inlet.DesignConfig
	designer *inlet.Designer
	ctx      context.Context
	theme    viz.Theme

	result *inlet.Inlet
	err    error

	width  int
	height int
}

// NewModel starts at the method menu. base supplies every setting the
// prompt does not edit.
func NewModel(ctx context.Context, d *inlet.Designer, base inlet.DesignConfig, theme viz.Theme) Model {
	return Model{
		state:    stateMenu,
		methods:  []inlet.Method{inlet.MethodMachPair, inlet.MethodRecovery},
		base:     base,
		designer: d,
		ctx:      ctx,
		theme:    theme,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case designMsg:
		m.result, m.err = msg.inlet, msg.err
		m.state = stateResult
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.methods)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.method = m.methods[m.cursor]
		m.params = m.paramsFor(m.method)
		m.paramCursor = 0
		m.state = stateConfig
	}
	return m, nil
}

func (m Model) paramsFor(method inlet.Method) []param {
	if method == inlet.MethodRecovery {
		return []param{
			{"exit mach", m.base.ExitMach},
			{"recovery", m.base.Recovery},
		}
	}
	return []param{
		{"freestream mach", m.base.FreestreamMach},
		{"exit mach", m.base.ExitMach},
	}
}

func (m Model) configKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.params[m.paramCursor].value = v
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				c := s[0]
				if (c >= '0' && c <= '9') || c == '.' {
					m.editBuf += s
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.params[m.paramCursor].value, 'f', -1, 64)
	case "left", "h":
		m.params[m.paramCursor].value -= m.increment()
	case "right", "l":
		m.params[m.paramCursor].value += m.increment()
	case "s":
		m.state = stateRunning
		m.result, m.err = nil, nil
		return m, m.design(m.Config())
	}
	return m, nil
}

func (m Model) increment() float64 {
	if m.params[m.paramCursor].name == "recovery" {
		return 0.01
	}
	return 0.1
}

func (m Model) resultKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "c", "enter":
		m.state = stateConfig
	case "m":
		m.state = stateMenu
	}
	return m, nil
}

// Config returns the design the prompt would run.
func (m Model) Config() inlet.DesignConfig {
	cfg := m.base
	cfg.Method = m.method
	for _, p := range m.params {
		switch p.name {
		case "freestream mach":
			cfg.FreestreamMach = p.value
		case "exit mach":
			cfg.ExitMach = p.value
		case "recovery":
			cfg.Recovery = p.value
		}
	}
	return cfg
}

func (m Model) design(cfg inlet.DesignConfig) tea.Cmd {
	return func() tea.Msg {
		in, err := m.designer.Design(m.ctx, cfg)
		return designMsg{inlet: in, err: err}
	}
}

// Result returns the last design and its error.
func (m Model) Result() (*inlet.Inlet, error) {
	return m.result, m.err
}

func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateRunning:
		return "\n      " + cyan.Render("designing...") + "\n"
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("b u s e m a n n") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, method := range m.methods {
		desc := methodInfo[method]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", method)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", method)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   q quit") + "\n")

	return b.String()
}

func (m Model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(string(m.method)) + "  " + dim.Render(methodInfo[m.method]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, p := range m.params {
		val := fmt.Sprintf("%8.3f", p.value)
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", p.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", p.name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s design  esc back") + "\n")

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("      " + red.Render("design failed: "+m.err.Error()) + "\n")
	} else {
		b.WriteString(viz.Report(m.result, m.theme) + "\n\n")
		width := m.width - 12
		if width < 20 {
			width = 20
		}
		if plot, err := viz.ContourPlot(m.result.Contour, width, 8); err == nil {
			b.WriteString(plot + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter edit   m methods   q quit") + "\n")
	return b.String()
}

// Run shows the prompt until the user quits and returns the last design.
func Run(ctx context.Context, d *inlet.Designer, base inlet.DesignConfig, theme viz.Theme) (*inlet.Inlet, error) {
	p := tea.NewProgram(NewModel(ctx, d, base, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Result()
}
