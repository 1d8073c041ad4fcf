// Package tui hosts the fade grid in a terminal with Bubble Tea. Terminal
// cells are converted to pixels so the grid is sized the same way it would
// be in a browser window.
package tui

import (
	"sync"
	"time"

	"github.com/andres-erbsen/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/fadegrid/internal/config"
	"github.com/san-kum/fadegrid/internal/fade"
	"github.com/san-kum/fadegrid/internal/layout"
)

const (
	eventBuffer = 64
	// rows taken by the title line and the key hints
	chromeRows = 2
	// the frame border takes one cell on each side
	borderCells = 2
	overlayFade = 200 * time.Millisecond
)

type (
	TickMsg  time.Time
	eventMsg fade.Event
)

type Options struct {
	Widget  *fade.Widget
	Clock   clock.Clock
	Layout  config.LayoutConfig
	Theme   string
	Message string
	FPS     int
	Logger  logrus.FieldLogger
}

// overlayFader animates the overlay text between opacities.
type overlayFader struct {
	from, to float64
	since    time.Time
}

func (o overlayFader) at(now time.Time) float64 {
	if o.since.IsZero() {
		return o.to
	}
	p := float64(now.Sub(o.since)) / float64(overlayFade)
	return o.from + (o.to-o.from)*layout.EaseOut.At(clamp01(p))
}

// Model adapts a fade.Widget to the Bubble Tea update loop.
type Model struct {
	widget      *fade.Widget
	clk         clock.Clock
	log         logrus.FieldLogger
	events      chan fade.Event
	unsubscribe func()
	closeOnce   *sync.Once

	layout  config.LayoutConfig
	theme   Theme
	message string
	fps     int

	width, height int
	mounted       bool
	closed        bool
	overlay       overlayFader
	showHelp      bool
}

// NewModel subscribes to the widget. The widget is mounted on the first
// window size message, which Bubble Tea sends at startup.
func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Logger = l
	}
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	def := config.DefaultConfig().Layout
	if opts.Layout.TileSize <= 0 {
		opts.Layout.TileSize = def.TileSize
	}
	if opts.Layout.Padding <= 0 {
		opts.Layout.Padding = def.Padding
	}
	if opts.Layout.CellWidth <= 0 {
		opts.Layout.CellWidth = def.CellWidth
	}
	if opts.Layout.CellHeight <= 0 {
		opts.Layout.CellHeight = def.CellHeight
	}

	log := opts.Logger.WithField("component", "tui")
	events := make(chan fade.Event, eventBuffer)
	unsubscribe := opts.Widget.Subscribe(func(ev fade.Event) {
		select {
		case events <- ev:
		default:
			log.WithField("event", ev.Kind).Warn("event buffer full, dropping")
		}
	})

	return Model{
		widget:      opts.Widget,
		clk:         opts.Clock,
		log:         log,
		events:      events,
		unsubscribe: unsubscribe,
		closeOnce:   &sync.Once{},
		layout:      opts.Layout,
		theme:       GetTheme(opts.Theme),
		message:     opts.Message,
		fps:         opts.FPS,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// waitForEvent delivers one widget event to Update; Update re-arms it.
func (m Model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		pw, ph := m.viewportPixels()
		if !m.mounted {
			m.widget.Mount(pw, ph)
			m.mounted = true
		} else {
			m.widget.Resize(pw, ph)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Close()
			m.closed = true
			return m, tea.Quit
		case "t":
			m.theme = nextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil
	case eventMsg:
		ev := fade.Event(msg)
		if target, ok := fade.OverlayOpacity(ev); ok {
			now := m.clk.Now()
			m.overlay = overlayFader{from: m.overlay.at(now), to: target, since: now}
		}
		m.log.WithFields(logrus.Fields{"event": ev.Kind, "cols": ev.Grid.Cols, "rows": ev.Grid.Rows}).Debug("widget event")
		return m, m.waitForEvent()
	case TickMsg:
		if m.closed {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// Close unmounts the widget, drops the subscription and closes the event
// channel so a pending waitForEvent returns. It is safe to call more than
// once, from any copy of the model.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		m.widget.Unmount()
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		// Unmount waits out any dispatch in flight, so nothing sends after this
		close(m.events)
	})
}

// viewportPixels is the area inside the frame, in pixels.
func (m Model) viewportPixels() (int, int) {
	cols := m.width - borderCells
	rows := m.height - chromeRows - borderCells
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols * m.layout.CellWidth, rows * m.layout.CellHeight
}

// Run starts the terminal host and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
