// Package clock paces beats independently of the render frame rate.
// Beat cadence is wall-clock driven so visual intensity stays stable
// under frame-rate jitter.
package clock

import "time"

// Source produces beat and sub-beat pulses when polled.
type Source interface {
	// Poll reports whether a beat and/or sub-beat elapsed since the last
	// poll. At most one beat fires per poll: intervals missed while the
	// caller was stalled are dropped, not caught up.
	Poll(now time.Time) (beat, subBeat bool)
	BeatCount() int
}

// Beat is a fixed-tempo simulated beat source. It fires a beat whenever
// the elapsed time since the last fire reaches the interval, and a
// sub-beat analogously when sub-beats are enabled.
type Beat struct {
	beatInterval    time.Duration
	subBeatInterval time.Duration

	lastBeat    time.Time
	lastSubBeat time.Time
	beatCount   int
	started     bool
}

// New creates a fixed-tempo source. A zero subBeatInterval disables
// sub-beats entirely.
func New(beatInterval, subBeatInterval time.Duration) *Beat {
	return &Beat{
		beatInterval:    beatInterval,
		subBeatInterval: subBeatInterval,
	}
}

func (b *Beat) Poll(now time.Time) (beat, subBeat bool) {
	if !b.started {
		b.lastBeat = now
		b.lastSubBeat = now
		b.started = true
		return false, false
	}

	if now.Sub(b.lastBeat) >= b.beatInterval {
		b.lastBeat = now
		b.beatCount++
		beat = true
	}

	if b.subBeatInterval > 0 && now.Sub(b.lastSubBeat) >= b.subBeatInterval {
		b.lastSubBeat = now
		subBeat = true
	}

	return beat, subBeat
}

func (b *Beat) BeatCount() int { return b.beatCount }
