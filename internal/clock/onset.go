package clock

import "time"

// Onset is a beat source synced to precomputed onset times from audio
// analysis instead of a fixed tempo. Sub-beats are still wall-clock
// driven so sparkles keep flowing between onsets.
type Onset struct {
	onsets          []time.Duration // offsets from playback start, ascending
	subBeatInterval time.Duration

	start       time.Time
	lastSubBeat time.Time
	next        int
	fired       int
	started     bool
}

func NewOnset(onsets []time.Duration, subBeatInterval time.Duration) *Onset {
	return &Onset{onsets: onsets, subBeatInterval: subBeatInterval}
}

func (o *Onset) Poll(now time.Time) (beat, subBeat bool) {
	if !o.started {
		o.start = now
		o.lastSubBeat = now
		o.started = true
		return false, false
	}

	elapsed := now.Sub(o.start)
	if o.next < len(o.onsets) && elapsed >= o.onsets[o.next] {
		// skip past any onsets missed during a stall, firing only once
		for o.next < len(o.onsets) && elapsed >= o.onsets[o.next] {
			o.next++
		}
		o.fired++
		beat = true
	}

	if o.subBeatInterval > 0 && now.Sub(o.lastSubBeat) >= o.subBeatInterval {
		o.lastSubBeat = now
		subBeat = true
	}

	return beat, subBeat
}

func (o *Onset) BeatCount() int { return o.fired }
