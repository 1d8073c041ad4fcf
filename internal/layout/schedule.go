package layout

import "time"

// EntranceDuration is how long a single tile takes to scale in.
const EntranceDuration = 500 * time.Millisecond

// Schedule derives per-tile animation timelines. Nothing here is stateful:
// a tile's look is a function of its index and the time since the grid
// started animating.
type Schedule struct {
	Stagger    time.Duration
	ScaleStart float64
	Wave       time.Duration
}

// Sample is the rendered look of one tile at an instant.
type Sample struct {
	Opacity float64
	Scale   float64
}

func (s Schedule) EntranceDelay(i int) time.Duration {
	return time.Duration(i) * s.Stagger
}

func (s Schedule) WaveDelay(i int) time.Duration {
	return time.Duration(i) * (s.Wave / WavePhaseDivisor)
}

// At samples tile i, elapsed after its animations were applied. The
// entrance animation owns opacity and keeps its end state; the wave, once
// past its delay, takes over the scale.
func (s Schedule) At(i int, elapsed time.Duration) Sample {
	out := Sample{Opacity: 0, Scale: 1}

	start := s.EntranceDelay(i)
	switch {
	case elapsed < start:
	case elapsed >= start+EntranceDuration:
		out.Opacity = 1
	default:
		p := EaseOut.At(float64(elapsed-start) / float64(EntranceDuration))
		out.Opacity = p
		out.Scale = s.ScaleStart + (1-s.ScaleStart)*p
	}

	if s.Wave > 0 {
		if delay := s.WaveDelay(i); elapsed >= delay {
			period := elapsed - delay
			out.Scale = WaveScale(float64(period%s.Wave) / float64(s.Wave))
		}
	}
	return out
}
