package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/dopawave/internal/visualizer"
	"github.com/olivier-w/dopawave/internal/wave"
)

const (
	// Virtual pixel size of one terminal cell; the generator works in pixels.
	cellW = 8
	cellH = 16

	// Lines of chrome around the chart: blank, header, blank, two border
	// lines, blank, buttons, blank, status, blank, help, trailing newline.
	chromeLines = 12

	minChartCols = 10
	minChartRows = 4

	defaultFPS = 60
)

// Config selects the initial state of the chart page.
type Config struct {
	Pattern  wave.Pattern
	FPS      int
	Renderer string
}

// Model is the Bubbletea model for the dopawave page.
type Model struct {
	driver   *wave.Driver
	selected wave.Pattern
	points   []wave.Point

	modes  []visualizer.Renderer
	mode   int
	reveal *visualizer.Reveal

	keys     keyMap
	help     help.Model
	progress progress.Model

	interval time.Duration
	seq      int
	frames   int
	paused   bool
	quitting bool

	width  int
	height int
}

// New creates the page model.
func New(cfg Config) Model {
	fps := cfg.FPS
	if fps < 1 {
		fps = defaultFPS
	}

	modes := visualizer.Modes()
	mode := 0
	for i, r := range modes {
		if r.Name() == cfg.Renderer {
			mode = i
		}
	}

	p := progress.New(
		progress.WithScaledGradient("#2878C8", "#FF4696"),
		progress.WithoutPercentage(),
	)
	p.Width = 20

	return Model{
		driver:   wave.NewDriver(cfg.Pattern),
		selected: cfg.Pattern,
		modes:    modes,
		mode:     mode,
		reveal:   visualizer.NewReveal(fps),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: p,
		interval: time.Second / time.Duration(fps),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval, m.seq), tea.SetWindowTitle(windowTitle(m.selected)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		_, rows := m.chartSize()
		if msg.Y != buttonsLine(rows) {
			return m, nil
		}
		_, spans := renderButtons(m.selected)
		if p, ok := hitButton(spans, msg.X); ok {
			return m.selectPattern(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if msg.Width <= 0 || msg.Height <= 0 {
			return m, nil
		}
		cols, rows := m.chartSize()
		m.driver.Resize(float64(cols*cellW), float64(rows*cellH))
		log.Printf("resize %dx%d chart %dx%d", msg.Width, msg.Height, cols, rows)
		return m, nil

	case frameMsg:
		if m.quitting || m.paused || msg.seq != m.seq {
			return m, nil
		}
		m.step()
		return m, frameCmd(m.interval, m.seq)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pattern):
		idx, _ := patternKey(msg)
		patterns := wave.Patterns()
		if idx >= len(patterns) {
			return m, nil
		}
		return m.selectPattern(patterns[idx])

	case key.Matches(msg, m.keys.Next):
		return m.selectPattern(m.selected.Next())

	case key.Matches(msg, m.keys.Prev):
		return m.selectPattern(m.selected.Prev())

	case key.Matches(msg, m.keys.Renderer):
		m.mode = (m.mode + 1) % len(m.modes)
		m.reveal.Restart()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			return m, nil
		}
		// Start a fresh tick chain; any frame already in flight is stale.
		m.seq++
		return m, frameCmd(m.interval, m.seq)
	}
	return m, nil
}

// selectPattern changes the externally selected pattern. The driver notices
// the change and resets the transition on its next frame.
func (m Model) selectPattern(p wave.Pattern) (Model, tea.Cmd) {
	if p == m.selected {
		return m, nil
	}
	log.Printf("pattern %s -> %s", m.selected, p)
	m.selected = p
	return m, tea.SetWindowTitle(windowTitle(p))
}

func (m *Model) step() {
	m.points = m.driver.Frame(m.selected)
	m.frames++
	m.reveal.Step()

	cols, rows := m.chartSize()
	w, h := m.driver.Size()
	r := m.modes[m.mode]
	m.reveal.Apply(r)
	r.Update(m.points, w, h, cols, rows)
}

// chartSize returns the chart's cell grid. Before the terminal reports its
// size the driver's default viewport is used.
func (m Model) chartSize() (cols, rows int) {
	if m.width <= 0 || m.height <= 0 {
		return int(wave.DefaultWidth) / cellW, int(wave.DefaultHeight) / cellH
	}
	return max(minChartCols, m.width-indent*2-2), max(minChartRows, m.height-chromeLines)
}

// buttonsLine is the screen row of the pattern buttons for a chart of the
// given height.
func buttonsLine(rows int) int {
	return 3 + rows + 2 + 1
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.chartSize()
	chart := m.modes[m.mode].View()
	if chart == "" {
		chart = blankChart(cols, rows)
	}
	box := chartStyle.Width(cols).Height(rows).Render(chart)

	buttons, _ := renderButtons(m.selected)
	bar := m.progress.ViewAs(m.driver.Last().Blend)
	w, _ := m.driver.Size()
	status := renderStatus(m.driver.Last(), w, bar, m.modes[m.mode].Name(), m.paused)

	lines := "\n"
	lines += "  " + headerStyle.Render("dopawave") + "  " + titleStyle.Render("This is your dopamine") + "\n"
	lines += "\n"
	lines += indentLines(box, indent) + "\n"
	lines += "\n"
	lines += "  " + buttons + "\n"
	lines += "\n"
	lines += "  " + status + "\n"
	lines += "\n"
	lines += "  " + helpStyle.Render(m.help.View(m.keys)) + "\n"

	if m.height > 0 {
		if pad := m.height - lipgloss.Height(lines); pad > 0 {
			for range pad {
				lines += "\n"
			}
		}
	}
	return lines
}

func blankChart(cols, rows int) string {
	return lipgloss.NewStyle().Width(cols).Height(rows).Render("")
}

func windowTitle(p wave.Pattern) string {
	return "dopawave · " + p.String()
}
