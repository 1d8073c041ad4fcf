package layout

import "time"

const (
	minWave = 1000 * time.Millisecond
	// wave period cycles every 150 minutes of the day
	waveCycleMinutes = 150
	waveMsPerMinute  = 60
	// WavePhaseDivisor splits the wave period into per-tile phase offsets.
	WavePhaseDivisor = 50
	// WavePeak is the scale reached halfway through a wave.
	WavePeak = 1.2
)

// WaveDuration derives the ambient wave period from the time of day.
// Anything from 1s up to just under 9s is possible; the value repeats every
// two and a half hours.
func WaveDuration(t time.Time) time.Duration {
	minutes := t.Hour()*60 + t.Minute()
	d := time.Duration((minutes%waveCycleMinutes)*waveMsPerMinute) * time.Millisecond
	if d < minWave {
		return minWave
	}
	return d
}

// WaveScale samples the wave keyframes (1 -> 1.2 -> 1) at a point in the
// period. The easing curve applies to each half separately.
func WaveScale(progress float64) float64 {
	progress = progress - float64(int(progress))
	if progress < 0.5 {
		return 1 + (WavePeak-1)*WaveEasing.At(progress/0.5)
	}
	return WavePeak - (WavePeak-1)*WaveEasing.At((progress-0.5)/0.5)
}
