package fade

import (
	"time"

	"github.com/san-kum/fadegrid/internal/layout"
)

type TileState struct {
	Index   int
	Col     int
	Row     int
	Opacity float64
	Scale   float64
}

// Frame is everything a renderer needs to draw the grid at one instant.
type Frame struct {
	Grid     layout.Grid
	State    State
	Visible  bool
	Wave     time.Duration
	Animated bool
	Tiles    []TileState
}

// Schedule returns the per-tile timelines for this widget.
func (w *Widget) Schedule() layout.Schedule {
	return layout.Schedule{
		Stagger:    w.timing.Stagger,
		ScaleStart: w.timing.ScaleStart,
		Wave:       w.wave,
	}
}

// Frame samples every tile at now. Tiles are suppressed (transparent, no
// animation) while resizing or before the entrance delay. Animations restart
// from whichever came last: the reveal or the latest settle.
func (w *Widget) Frame(now time.Time) Frame {
	w.mu.Lock()
	f := Frame{
		Grid:    w.grid,
		State:   w.state,
		Visible: w.visible,
		Wave:    w.wave,
	}
	start := w.visibleAt
	if w.settledAt.After(start) {
		start = w.settledAt
	}
	w.mu.Unlock()

	f.Animated = f.Visible && f.State == Idle
	sched := w.Schedule()
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	f.Tiles = make([]TileState, f.Grid.Tiles())
	for i := range f.Tiles {
		col, row := f.Grid.Position(i)
		t := TileState{Index: i, Col: col, Row: row, Scale: 1}
		if f.Animated {
			s := sched.At(i, elapsed)
			t.Opacity, t.Scale = s.Opacity, s.Scale
		}
		f.Tiles[i] = t
	}
	return f
}
