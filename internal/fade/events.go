package fade

import (
	"time"

	"github.com/san-kum/fadegrid/internal/layout"
)

type EventKind int

const (
	// LayoutSettled: a new grid is in place and the overlay may show again.
	LayoutSettled EventKind = iota + 1
	// LayoutUnsettled: a resize started; hosts should hide the grid and overlay.
	LayoutUnsettled
	// Visible: the entrance delay has passed.
	Visible
)

func (k EventKind) String() string {
	switch k {
	case LayoutSettled:
		return "layout_settled"
	case LayoutUnsettled:
		return "layout_unsettled"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

// Event carries the grid as it stood when the event was emitted.
type Event struct {
	Kind EventKind
	Grid layout.Grid
	At   time.Time
}

// OverlayOpacity is the opacity an overlay should take in response to ev,
// and false for events that do not affect it.
func OverlayOpacity(ev Event) (float64, bool) {
	switch ev.Kind {
	case LayoutSettled:
		return 1, true
	case LayoutUnsettled:
		return 0, true
	}
	return 0, false
}
