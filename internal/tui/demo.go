package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/easing"
	"github.com/san-kum/glide/internal/frame"
	"github.com/san-kum/glide/internal/logging"
	"github.com/san-kum/glide/internal/reactive"
	"github.com/san-kum/glide/internal/tween"
	"github.com/san-kum/glide/internal/viz"
)

const (
	frameInterval = 16 * time.Millisecond
	historyLen    = 60
	trackStep     = 0.2
)

type choice[T any] struct {
	name  string
	value T
}

var (
	easings = []choice[string]{
		{"smooth", "cubic-in-out"},
		{"linear", "linear"},
		{"overshoot", "back-in-out"},
		{"elastic", "elastic-in-out"},
		{"bounce", "bounce-out"},
	}
	durations = []choice[time.Duration]{
		{"normal", 500 * time.Millisecond},
		{"slow", 1500 * time.Millisecond},
		{"fast", 200 * time.Millisecond},
	}
	modes   = []anim.Mode{anim.Start, anim.ReplaceOrStart, anim.ReplaceOrSnap, anim.Snap}
	colours = []choice[colorful.Color]{
		{"red", colorful.Color{R: 1}},
		{"green", colorful.Color{G: 1}},
		{"blue", colorful.Color{B: 1}},
		{"amber", colorful.Color{R: 1, G: 0.75}},
	}
	texts = []string{
		"",
		"Hello World",
		"It is a truth universally acknowledged",
		"Lorem ipsum dolor sit amet",
	}
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the live demo: a marker on a track, a colour swatch and a line of
// text, each animated by its own output on one shared scheduler.
type Model struct {
	theme    viz.Theme
	platform *frame.Deferred
	sched    *frame.Scheduler

	position *reactive.Signal[float64]
	colour   *reactive.Signal[int]
	text     *reactive.Signal[int]

	mode     int
	easing   int
	duration int

	pos    *anim.Output[float64, float64]
	swatch *anim.Output[colorful.Color, colorful.Color]
	line   *anim.Output[string, string]

	history []float64
	frames  int
	width   int
}

func NewModel(theme viz.Theme, log logging.Logger) *Model {
	m := &Model{
		theme:    theme,
		platform: frame.NewDeferred(),
		position: reactive.NewComparableSignal(0.0),
		colour:   reactive.NewComparableSignal(0),
		text:     reactive.NewComparableSignal(1),
		history:  make([]float64, 0, historyLen),
		width:    80,
	}
	m.sched = frame.New(m.platform, frame.WithLogger(log))

	m.pos = anim.NewNumber(m.sched, func() anim.Target[float64] {
		return anim.To(m.position.Get(), m.options(modes[m.mode])...)
	}, m.position)

	blend, _ := tween.Color(tween.HSV)
	m.swatch = anim.New(m.sched, func() anim.Target[colorful.Color] {
		return anim.To(colours[m.colour.Get()].value, m.options(anim.Start)...)
	}, blend, tween.ColorDiff, m.colour)

	m.line = anim.New[string, string](m.sched, func() anim.Target[string] {
		return anim.To(texts[m.text.Get()], m.options(anim.Start)...)
	}, tween.Splice, tween.Keep[string], m.text)

	m.pos.Watch(m.record)
	return m
}

func (m *Model) options(mode anim.Mode) []anim.Option {
	return []anim.Option{
		anim.WithDuration(durations[m.duration].value),
		anim.WithEasing(easing.MustLookup(easings[m.easing].value)),
		anim.WithMode(mode),
	}
}

func (m *Model) record() {
	m.history = append(m.history, m.pos.Value())
	if len(m.history) > historyLen {
		m.history = m.history[1:]
	}
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.frames += m.platform.Flush(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit
	case "left", "h":
		m.position.Update(func(v float64) float64 { return max(0, v-trackStep) })
	case "right", "l":
		m.position.Update(func(v float64) float64 { return min(1, v+trackStep) })
	case "1", "2", "3", "4", "5":
		m.position.Set(float64(msg.String()[0]-'1') / 4)
	case "c":
		m.colour.Update(func(i int) int { return (i + 1) % len(colours) })
	case "t":
		m.text.Update(func(i int) int { return (i + 1) % len(texts) })
	case "m":
		m.mode = (m.mode + 1) % len(modes)
	case "e":
		m.easing = (m.easing + 1) % len(easings)
	case "d":
		m.duration = (m.duration + 1) % len(durations)
	}
	return m, nil
}

// Close disposes the outputs and the scheduler.
func (m *Model) Close() {
	m.pos.Dispose()
	m.swatch.Dispose()
	m.line.Dispose()
	m.sched.Dispose()
}

func (m *Model) View() string {
	title := viz.Title(m.theme)
	label := viz.Label(m.theme)
	trackWidth := max(m.width-12, 20)

	var b strings.Builder
	b.WriteString("\n  " + viz.GradientText("g l i d e", colours[0].value, colours[2].value) + "\n\n")

	b.WriteString("  " + title.Render("position") + "  " + viz.StatusBadge(m.theme, m.pos.Status()) +
		label.Render(fmt.Sprintf("  %d records", m.pos.Records())) + "\n")
	b.WriteString("  " + viz.Track(m.pos.Value(), trackWidth) + "\n")
	b.WriteString("  " + label.Render(viz.Sparkline(m.history, historyLen)) + "\n\n")

	swatch := lipgloss.NewStyle().Background(viz.Hex(m.swatch.Value())).Render(strings.Repeat(" ", 12))
	b.WriteString("  " + title.Render("colour") + "    " + swatch + label.Render("  "+colours[m.colour.Get()].name) + "\n\n")

	b.WriteString("  " + title.Render("text") + "\n")
	b.WriteString(viz.Panel(m.theme).Width(trackWidth).Render(m.line.Value()) + "\n\n")

	b.WriteString(label.Render(fmt.Sprintf("  mode %-16s easing %-10s duration %-7s frames %d",
		modes[m.mode], easings[m.easing].name, durations[m.duration].name, m.frames)) + "\n")
	b.WriteString(viz.KeyHint(m.theme).Render("  ←→/1-5 move  c colour  t text  m mode  e easing  d duration  q quit") + "\n")
	return b.String()
}

// Run starts the demo in the alternate screen.
func Run(theme viz.Theme, log logging.Logger) error {
	p := tea.NewProgram(NewModel(theme, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
