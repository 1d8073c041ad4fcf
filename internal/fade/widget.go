// Package fade drives the fade-in tile grid: it sizes the grid for the
// viewport, debounces resizes, and reveals tiles after the entrance delay.
package fade

import (
	"sync"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/fadegrid/internal/layout"
)

const (
	DefaultStagger    = 50 * time.Millisecond
	DefaultScaleStart = 0.5
	DefaultDebounce   = 250 * time.Millisecond
)

type State int

const (
	Idle State = iota
	Resizing
)

func (s State) String() string {
	if s == Resizing {
		return "resizing"
	}
	return "idle"
}

// Timing is fixed for the lifetime of a widget.
type Timing struct {
	Delay      time.Duration
	Stagger    time.Duration
	ScaleStart float64
}

// withDefaults only fills in zero values; negative values are kept as given.
func (t Timing) withDefaults() Timing {
	if t.Stagger == 0 {
		t.Stagger = DefaultStagger
	}
	if t.ScaleStart == 0 {
		t.ScaleStart = DefaultScaleStart
	}
	return t
}

type Options struct {
	Timing   Timing
	Clock    clock.Clock
	TileSize int
	Padding  int
	Debounce time.Duration
	Logger   logrus.FieldLogger
}

type listener struct {
	id int
	fn func(Event)
}

// Widget is the grid state machine. All methods are safe for concurrent
// use; timer callbacks run on the clock's goroutines.
type Widget struct {
	// held across a transition and its dispatch so listeners see events in order
	emitMu sync.Mutex
	mu     sync.Mutex

	clk      clock.Clock
	log      logrus.FieldLogger
	timing   Timing
	tileSize int
	padding  int
	debounce time.Duration
	wave     time.Duration

	mounted   bool
	unmounted bool
	state     State
	visible   bool
	visibleAt time.Time
	settledAt time.Time
	grid      layout.Grid
	width     int
	height    int

	// gen invalidates timer callbacks that were superseded or outlived Unmount
	gen      uint64
	settle   *clock.Timer
	entrance *clock.Timer

	listeners []listener
	nextID    int
}

// New builds an unmounted widget. The wave period is fixed here from the
// clock's current time of day.
func New(opts Options) *Widget {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Logger = l
	}
	if opts.TileSize <= 0 {
		opts.TileSize = layout.DefaultTileSize
	}
	if opts.Padding <= 0 {
		opts.Padding = layout.DefaultPadding
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	w := &Widget{
		clk:      opts.Clock,
		log:      opts.Logger.WithField("component", "fade"),
		timing:   opts.Timing.withDefaults(),
		tileSize: opts.TileSize,
		padding:  opts.Padding,
		debounce: opts.Debounce,
		wave:     layout.WaveDuration(opts.Clock.Now()),
		state:    Resizing,
	}
	w.log.WithField("wave", w.wave).Debug("widget created")
	return w
}

// Subscribe registers fn for every event the widget emits and returns a
// function that removes it. Events emitted with nobody subscribed are
// dropped.
func (w *Widget) Subscribe(fn func(Event)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted {
		return func() {}
	}
	w.nextID++
	id := w.nextID
	w.listeners = append(w.listeners, listener{id: id, fn: fn})
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, l := range w.listeners {
			if l.id == id {
				w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// Mount computes the first grid immediately, without waiting for the
// debounce window, and starts the entrance timer. Mounting twice is a no-op.
func (w *Widget) Mount(width, height int) {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	if w.mounted || w.unmounted {
		w.mu.Unlock()
		return
	}
	w.mounted = true
	now := w.clk.Now()
	w.width, w.height = width, height
	events := []Event{w.settleLocked(now)}

	if w.timing.Delay <= 0 {
		w.visible = true
		w.visibleAt = now
		events = append(events, Event{Kind: Visible, Grid: w.grid, At: now})
	} else {
		w.entrance = w.clk.AfterFunc(w.timing.Delay, w.reveal)
	}
	w.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"cols":   w.grid.Cols,
		"rows":   w.grid.Rows,
	}).Debug("mounted")
	w.mu.Unlock()

	w.dispatch(events)
}

// Resize records the new viewport and restarts the debounce window. The grid
// is only recomputed once the window passes with no further resizes.
func (w *Widget) Resize(width, height int) {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	if !w.mounted || w.unmounted {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height
	w.state = Resizing
	w.gen++
	if w.settle != nil {
		w.settle.Stop()
	}
	gen := w.gen
	w.settle = w.clk.AfterFunc(w.debounce, func() { w.settleAfter(gen) })
	ev := Event{Kind: LayoutUnsettled, Grid: w.grid, At: w.clk.Now()}
	w.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("resize")
	w.mu.Unlock()

	w.dispatch([]Event{ev})
}

// Unmount stops both timers and drops all listeners. Nothing is emitted
// afterwards, even by a timer that already fired.
func (w *Widget) Unmount() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted {
		return
	}
	w.unmounted = true
	w.gen++
	if w.settle != nil {
		w.settle.Stop()
		w.settle = nil
	}
	if w.entrance != nil {
		w.entrance.Stop()
		w.entrance = nil
	}
	w.listeners = nil
	w.log.Debug("unmounted")
}

func (w *Widget) settleAfter(gen uint64) {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	if w.unmounted || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.settle = nil
	ev := w.settleLocked(w.clk.Now())
	w.log.WithFields(logrus.Fields{"cols": w.grid.Cols, "rows": w.grid.Rows}).Debug("layout settled")
	w.mu.Unlock()

	w.dispatch([]Event{ev})
}

func (w *Widget) settleLocked(now time.Time) Event {
	w.grid = layout.ComputeGrid(w.width, w.height, w.tileSize, w.padding)
	w.state = Idle
	w.settledAt = now
	return Event{Kind: LayoutSettled, Grid: w.grid, At: now}
}

// reveal is not tied to a generation: resizes never cancel it, only Unmount.
func (w *Widget) reveal() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	if w.unmounted || w.visible {
		w.mu.Unlock()
		return
	}
	now := w.clk.Now()
	w.visible = true
	w.visibleAt = now
	w.entrance = nil
	ev := Event{Kind: Visible, Grid: w.grid, At: now}
	w.log.Debug("visible")
	w.mu.Unlock()

	w.dispatch([]Event{ev})
}

func (w *Widget) dispatch(events []Event) {
	w.mu.Lock()
	ls := make([]listener, len(w.listeners))
	copy(ls, w.listeners)
	w.mu.Unlock()

	for _, ev := range events {
		for _, l := range ls {
			l.fn(ev)
		}
	}
}

func (w *Widget) Grid() layout.Grid {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *Widget) WaveDuration() time.Duration { return w.wave }

func (w *Widget) Timing() Timing { return w.timing }
