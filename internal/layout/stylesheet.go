package layout

import (
	"fmt"
	"strconv"
	"time"
)

// OverlayID is the element id the stylesheet's transition rule targets.
const OverlayID = "spooky-div"

const stylesheet = `#%[1]s {
  transition: opacity 200ms ease-out;
}
@keyframes scaleIn {
  from {
    opacity: 0;
    transform: scale(%[2]s);
  }
  to {
    opacity: 1;
    transform: scale(1);
  }
}
@keyframes wave {
  0%%, 100%% {
    transform: scale(1);
  }
  50%% {
    transform: scale(%[3]s);
  }
}
`

// Stylesheet renders the keyframes a browser host needs to play the
// entrance and wave animations.
func Stylesheet(scaleStart float64) string {
	return fmt.Sprintf(stylesheet, OverlayID, formatNumber(scaleStart), formatNumber(WavePeak))
}

// TileAnimation renders the CSS animation shorthand for tile i.
func (s Schedule) TileAnimation(i int) string {
	return fmt.Sprintf("scaleIn %dms ease-out forwards %sms, wave %dms cubic-bezier(0.4, 0, 0.2, 1) infinite %sms",
		EntranceDuration.Milliseconds(),
		formatMillis(s.EntranceDelay(i)),
		s.Wave.Milliseconds(),
		formatMillis(s.WaveDelay(i)),
	)
}

func formatMillis(d time.Duration) string {
	return formatNumber(float64(d.Microseconds()) / 1000)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
