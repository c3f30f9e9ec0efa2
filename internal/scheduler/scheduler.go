// Package scheduler drives one visualization session: it polls the beat
// source, routes beats to the spawner, enforces the mode's concurrency
// cap, and ages effects out through the lifetime tracker. All state is
// held here explicitly and touched from the render loop only.
package scheduler

import (
	"time"

	"github.com/san-kum/beatviz/internal/clock"
	"github.com/san-kum/beatviz/internal/effect"
	"github.com/san-kum/beatviz/internal/mode"
	"github.com/san-kum/beatviz/internal/spawner"
	"github.com/san-kum/beatviz/internal/tracker"
)

// BeatRecord is one row of the per-session beat log, persisted by the
// session store after the loop ends.
type BeatRecord struct {
	Offset    time.Duration
	Intensity float64
	Spawned   int
}

type Scheduler struct {
	params  mode.Params
	source  clock.Source
	spawn   *spawner.Spawner
	tracked *tracker.Tracker

	schemeIdx int
	intensity float64

	start    time.Time
	started  bool
	spawned  int
	beatLog  []BeatRecord
	lastBeat time.Time
}

// TickResult reports what one scheduler tick did.
type TickResult struct {
	BeatFired    bool
	SubBeatFired bool
	BeatCount    int
	Live         []tracker.Entry
}

func New(p mode.Params, source clock.Source, spawn *spawner.Spawner) *Scheduler {
	return &Scheduler{
		params:    p,
		source:    source,
		spawn:     spawn,
		tracked:   tracker.New(),
		intensity: p.IntensityBase,
	}
}

// Tick advances the session by one frame: expire, poll, spawn.
func (s *Scheduler) Tick(now time.Time, frame int) TickResult {
	if !s.started {
		s.start = now
		s.started = true
	}

	live := s.tracked.Advance(frame)

	beat, subBeat := s.source.Poll(now)
	res := TickResult{BeatFired: beat, SubBeatFired: subBeat, BeatCount: s.source.BeatCount(), Live: live}

	if beat {
		s.lastBeat = now
		count := s.source.BeatCount()
		if s.params.RotationPeriod > 0 && count%s.params.RotationPeriod == 0 {
			s.schemeIdx = (s.schemeIdx + 1) % len(effect.Schemes)
		}
		s.intensity = s.spawn.Intensity()

		added := s.admit(s.spawn.OnBeat(count, s.intensity, s.Scheme()), frame)
		s.beatLog = append(s.beatLog, BeatRecord{
			Offset:    now.Sub(s.start),
			Intensity: s.intensity,
			Spawned:   added,
		})
	}

	if subBeat {
		s.admit(s.spawn.OnSubBeat(s.intensity), frame)
	}

	if beat || subBeat {
		res.Live = s.tracked.Advance(frame)
	}
	return res
}

// admit materializes requests and adds them to the tracker while the
// mode's cap allows; excess requests are dropped so concurrently tracked
// effects never exceed the maximum.
func (s *Scheduler) admit(reqs []effect.Request, frame int) int {
	added := 0
	for _, req := range reqs {
		if s.tracked.Len() >= s.params.MaxEffects {
			break
		}
		r := effect.Materialize(req, s.params.FlashStep, s.intensity*0.7, s.Scheme())
		s.tracked.Add(r, frame, req.Lifetime)
		added++
	}
	s.spawned += added
	return added
}

// Scheme returns the active color scheme.
func (s *Scheduler) Scheme() effect.Scheme {
	return effect.Schemes[s.schemeIdx%len(effect.Schemes)]
}

func (s *Scheduler) SchemeIndex() int      { return s.schemeIdx }
func (s *Scheduler) Intensity() float64    { return s.intensity }
func (s *Scheduler) BeatCount() int        { return s.source.BeatCount() }
func (s *Scheduler) ActiveEffects() int    { return s.tracked.Len() }
func (s *Scheduler) TotalSpawned() int     { return s.spawned }
func (s *Scheduler) LastBeat() time.Time   { return s.lastBeat }
func (s *Scheduler) BeatLog() []BeatRecord { return s.beatLog }
