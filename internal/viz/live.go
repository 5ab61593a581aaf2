package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/aerosim/internal/sim"
)

const (
	historyLen  = 60
	minFPS      = 1
	maxFPS      = 120
	defaultFPS  = 20
	sceneCols   = 24
	sceneRows   = 8
	sparkHeight = 4
	sparkWidth  = 30
)

// Frame is one replayed sample.
type Frame struct {
	Step  int
	Time  float64
	X     float64
	V     float64
	Angle float64 // degrees; wing only
}

type TickMsg time.Time

// Live replays recorded frames at a fixed frame rate. It never integrates;
// the run is complete before the model starts.
type Live struct {
	title  string
	wing   bool
	frames []Frame

	frame  int
	fps    int
	paused bool

	minX, maxX float64
	history    []float64
	canvas     *Canvas
}

func NewFreeFallLive(r *sim.FreeFallResult) *Live {
	frames := make([]Frame, len(r.Records))
	for i, rec := range r.Records {
		frames[i] = Frame{Step: rec.Step, Time: rec.Time, X: rec.Position, V: rec.Velocity}
	}
	return newLive("free fall ("+r.Integrator+")", false, frames)
}

func NewWingLive(r *sim.WingResult) *Live {
	frames := make([]Frame, len(r.Records))
	for i, rec := range r.Records {
		frames[i] = Frame{Step: i, Time: rec.Time, X: rec.Position, V: rec.Velocity, Angle: rec.AngleDeg}
	}
	return newLive("wing ("+r.Integrator+")", true, frames)
}

func newLive(title string, wing bool, frames []Frame) *Live {
	l := &Live{
		title:  title,
		wing:   wing,
		frames: frames,
		fps:    defaultFPS,
		canvas: NewCanvas(sceneCols, sceneRows),
		minX:   math.Inf(1),
		maxX:   math.Inf(-1),
	}
	for _, f := range frames {
		l.minX = math.Min(l.minX, f.X)
		l.maxX = math.Max(l.maxX, f.X)
	}
	if !(l.maxX > l.minX) {
		l.minX, l.maxX = l.minX-1, l.maxX+1
	}
	l.reset()
	return l
}

// SetFPS sets the replay rate, clamped to [1, 120].
func (l *Live) SetFPS(fps int) {
	l.fps = min(max(fps, minFPS), maxFPS)
}

func (l *Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(l.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (l *Live) Init() tea.Cmd {
	return l.tick()
}

func (l *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.paused = !l.paused
		case "r":
			l.reset()
		case "+", "=":
			l.fps = min(l.fps*2, maxFPS)
		case "-":
			l.fps = max(l.fps/2, minFPS)
		}
	case TickMsg:
		if !l.paused {
			l.advance()
		}
		return l, l.tick()
	}
	return l, nil
}

func (l *Live) reset() {
	l.frame = 0
	l.history = l.history[:0]
	if len(l.frames) > 0 {
		l.history = append(l.history, l.frames[0].V)
	}
}

func (l *Live) advance() {
	if l.frame+1 >= len(l.frames) {
		return
	}
	l.frame++
	l.history = append(l.history, l.frames[l.frame].V)
	if len(l.history) > historyLen {
		l.history = l.history[1:]
	}
}

// Done reports whether the replay has reached the last frame.
func (l *Live) Done() bool {
	return l.frame >= len(l.frames)-1
}

func (l *Live) Current() Frame {
	if len(l.frames) == 0 {
		return Frame{}
	}
	return l.frames[l.frame]
}

func (l *Live) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(l.title)) + "\n")

	f := l.Current()
	stats := []string{
		row("frame", fmt.Sprintf("%d/%d", l.frame, max(len(l.frames)-1, 0))),
		row("t", fmt.Sprintf("%.3f s", f.Time)),
		row("z", fmt.Sprintf("%.5g", f.X)),
		row("v", fmt.Sprintf("%.5g", f.V)),
	}
	if l.wing {
		stats = append(stats, row("angle of attack", fmt.Sprintf("%.3f deg", f.Angle)))
	}
	stats = append(stats, row("fps", fmt.Sprintf("%d", l.fps)))

	status := statusStyle.Render("RUNNING")
	switch {
	case l.paused:
		status = pausedStyle.Render("PAUSED")
	case l.Done():
		status = statusStyle.Render("DONE")
	}
	stats = append(stats, "", status)

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(l.scene()),
		"  ",
		strings.Join(stats, "\n"),
	))

	if len(l.history) >= 2 {
		s.WriteString("\n" + graphStyle.Render(Plot(l.history, "v", sparkHeight, sparkWidth)))
	}
	s.WriteString(helpStyle.Render("\nspace: pause  r: restart  +/-: speed  q: quit"))
	return s.String()
}

// scene draws the sphere's depth or the wing chord on the braille canvas.
func (l *Live) scene() string {
	c := l.canvas
	c.Clear()
	f := l.Current()

	if l.wing {
		c.SetViewport(-1, 1, l.minX, l.maxX)
		rad := f.Angle * math.Pi / 180
		dx, dy := 0.8*math.Cos(rad), 0.8*math.Sin(rad)
		c.Line(-dx, f.X+dy, dx, f.X-dy)
		return c.String()
	}

	// depth grows downward
	c.SetViewport(-1, 1, -l.maxX, -l.minX)
	c.Line(-1, -l.minX, 1, -l.minX)
	y := -f.X
	r := (l.maxX - l.minX) / 20
	for i := 0; i < 16; i++ {
		a0 := float64(i) * math.Pi / 8
		a1 := float64(i+1) * math.Pi / 8
		c.Line(0.1*math.Cos(a0), y+r*math.Sin(a0), 0.1*math.Cos(a1), y+r*math.Sin(a1))
	}
	return c.String()
}
