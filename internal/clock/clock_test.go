package clock

import (
	"testing"
	"time"
)

func TestBeatCadence(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 0)

	if beat, _ := c.Poll(base); beat {
		t.Error("first poll must only initialize, not fire")
	}

	// 100ms polls across 2.0 simulated seconds
	beats := 0
	for i := 1; i <= 20; i++ {
		beat, _ := c.Poll(base.Add(time.Duration(i) * 100 * time.Millisecond))
		if beat {
			beats++
		}
	}

	if beats != 4 {
		t.Errorf("expected 4 beats over 2.0s at 0.5s interval, got %d", beats)
	}
	if c.BeatCount() != 4 {
		t.Errorf("expected beat count 4, got %d", c.BeatCount())
	}
}

func TestBeatDropsMissedIntervals(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 0)
	c.Poll(base)

	// stall spanning three intervals fires exactly once
	beat, _ := c.Poll(base.Add(1600 * time.Millisecond))
	if !beat {
		t.Fatal("expected a beat after the stall")
	}
	if c.BeatCount() != 1 {
		t.Errorf("expected beat count 1 after stall, got %d", c.BeatCount())
	}

	// cadence resets from the stalled poll, not the schedule
	if beat, _ := c.Poll(base.Add(1700 * time.Millisecond)); beat {
		t.Error("expected no beat 100ms after the previous fire")
	}
	if beat, _ := c.Poll(base.Add(2100 * time.Millisecond)); !beat {
		t.Error("expected a beat 500ms after the previous fire")
	}
}

func TestBeatCountMonotonic(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 125*time.Millisecond)
	c.Poll(base)

	prev := 0
	for i := 1; i <= 100; i++ {
		c.Poll(base.Add(time.Duration(i) * 33 * time.Millisecond))
		if c.BeatCount() < prev {
			t.Fatalf("beat count decreased: %d -> %d", prev, c.BeatCount())
		}
		if c.BeatCount() > prev+1 {
			t.Fatalf("beat count jumped by more than one: %d -> %d", prev, c.BeatCount())
		}
		prev = c.BeatCount()
	}
}

func TestSubBeats(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 125*time.Millisecond)
	c.Poll(base)

	subs := 0
	for i := 1; i <= 8; i++ {
		_, sub := c.Poll(base.Add(time.Duration(i) * 125 * time.Millisecond))
		if sub {
			subs++
		}
	}
	if subs != 8 {
		t.Errorf("expected 8 sub-beats over 1.0s at 125ms interval, got %d", subs)
	}
}

func TestSubBeatsDisabled(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 0)
	c.Poll(base)

	for i := 1; i <= 40; i++ {
		if _, sub := c.Poll(base.Add(time.Duration(i) * 50 * time.Millisecond)); sub {
			t.Fatal("sub-beats must never fire with a zero interval")
		}
	}
}

func TestBeatAndSubBeatCoincide(t *testing.T) {
	base := time.Unix(100, 0)
	c := New(500*time.Millisecond, 125*time.Millisecond)
	c.Poll(base)

	beat, sub := c.Poll(base.Add(500 * time.Millisecond))
	if !beat || !sub {
		t.Errorf("expected both beat and sub-beat at 500ms, got beat=%v sub=%v", beat, sub)
	}
}

func TestOnsetFiresAtOnsetTimes(t *testing.T) {
	base := time.Unix(100, 0)
	o := NewOnset([]time.Duration{
		200 * time.Millisecond,
		600 * time.Millisecond,
		900 * time.Millisecond,
	}, 0)
	o.Poll(base)

	if beat, _ := o.Poll(base.Add(100 * time.Millisecond)); beat {
		t.Error("expected no beat before the first onset")
	}
	if beat, _ := o.Poll(base.Add(250 * time.Millisecond)); !beat {
		t.Error("expected a beat past the first onset")
	}
	if o.BeatCount() != 1 {
		t.Errorf("expected beat count 1, got %d", o.BeatCount())
	}
}

func TestOnsetSkipsMissedOnsets(t *testing.T) {
	base := time.Unix(100, 0)
	o := NewOnset([]time.Duration{
		200 * time.Millisecond,
		600 * time.Millisecond,
		900 * time.Millisecond,
	}, 0)
	o.Poll(base)
	o.Poll(base.Add(250 * time.Millisecond))

	// stall past the remaining two onsets fires exactly once
	beat, _ := o.Poll(base.Add(2 * time.Second))
	if !beat {
		t.Fatal("expected a beat after the stall")
	}
	if o.BeatCount() != 2 {
		t.Errorf("expected beat count 2 after skipping, got %d", o.BeatCount())
	}

	if beat, _ := o.Poll(base.Add(3 * time.Second)); beat {
		t.Error("expected no beat once all onsets are consumed")
	}
}
