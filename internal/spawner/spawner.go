// Package spawner decides how many and which effects to create on each
// beat. Selection is a single categorical draw from the mode's weight
// table; the RNG is injected so tests can replay exact spawn sequences.
package spawner

import (
	"math/rand"

	"github.com/san-kum/beatviz/internal/effect"
	"github.com/san-kum/beatviz/internal/mode"
)

type Spawner struct {
	params mode.Params
	rng    *rand.Rand
	kinds  []effect.Kind // weight table flattened for one categorical draw
	total  int

	width, height int
}

var callouts = []string{"BOOM!", "BANG!", "WOW!", "CRAZY!", "INSANE!", "WILD!", "SICK!"}

// standard mode keeps the tamer half of the phrase list
var calloutsStandard = callouts[:3]

func New(p mode.Params, w, h int, rng *rand.Rand) *Spawner {
	s := &Spawner{params: p, rng: rng, width: w, height: h}
	// flatten in kind order, not map order, so equal seeds replay equal draws
	for k := effect.KindFirework; k <= effect.KindSparkle; k++ {
		for i := 0; i < p.KindWeights[k]; i++ {
			s.kinds = append(s.kinds, k)
		}
	}
	s.total = len(s.kinds)
	return s
}

// Resize updates the spawn area after a terminal resize.
func (s *Spawner) Resize(w, h int) {
	s.width, s.height = w, h
}

// Intensity draws the per-beat intensity in [0,1]: base plus mode jitter.
func (s *Spawner) Intensity() float64 {
	if s.params.IntensityJitter == 0 {
		return s.params.IntensityBase
	}
	return s.params.IntensityBase + s.rng.Float64()*s.params.IntensityJitter
}

// pickKind is the single categorical draw over the mode's weight table.
func (s *Spawner) pickKind() effect.Kind {
	if s.total == 0 {
		return effect.KindFirework
	}
	return s.kinds[s.rng.Intn(s.total)]
}

// OnBeat generates the burst for one beat. The count scales with
// intensity and is capped per spawn point; the overall concurrency cap
// is the caller's job.
func (s *Spawner) OnBeat(beatCount int, intensity float64, scheme effect.Scheme) []effect.Request {
	var reqs []effect.Request

	for point := 0; point < s.params.SpawnPoints; point++ {
		x := 5 + s.rng.Intn(max(1, s.width-10))
		y := 5 + s.rng.Intn(max(1, s.height-10))

		n := int(intensity*float64(s.params.CountScale)) + s.params.CountMin
		if n > s.params.CountCap {
			n = s.params.CountCap
		}

		for i := 0; i < n; i++ {
			for k := 0; k < s.params.KindsPerPoint; k++ {
				kind := s.pickKind()
				req := effect.Request{
					Kind:     kind,
					X:        x + s.rng.Intn(7) - 3,
					Y:        y + s.rng.Intn(5) - 2,
					Color:    scheme[s.rng.Intn(len(scheme))],
					Lifetime: s.params.Lifetime,
					Seed:     s.rng.Int63(),
				}
				if kind == effect.KindText {
					req = s.fillText(req)
				}
				reqs = append(reqs, req)
			}
		}
	}

	reqs = append(reqs, s.beatOverlays(beatCount, scheme)...)
	return reqs
}

// beatOverlays are the periodic policies layered on top of the burst:
// a full-screen flash every 2nd beat and a text callout every 4th beat
// (both disabled in simple mode).
func (s *Spawner) beatOverlays(beatCount int, scheme effect.Scheme) []effect.Request {
	var reqs []effect.Request

	if s.params.FlashEveryBeat > 0 && beatCount%s.params.FlashEveryBeat == 0 {
		reqs = append(reqs, effect.Request{
			Kind:     effect.KindFlash,
			Lifetime: 4,
			Seed:     s.rng.Int63(),
		})
	}

	if s.params.TextEveryBeat > 0 && beatCount%s.params.TextEveryBeat == 0 {
		req := effect.Request{
			Kind:     effect.KindText,
			X:        s.rng.Intn(max(1, s.width-30)),
			Y:        5 + s.rng.Intn(max(1, s.height-15)),
			Lifetime: 12,
			Seed:     s.rng.Int63(),
		}
		reqs = append(reqs, s.fillText(req))
	}

	if s.params.ArtEnabled && s.rng.Float64() < 0.5 {
		reqs = append(reqs, effect.Request{
			Kind:     effect.KindArt,
			X:        s.rng.Intn(max(1, s.width-20)),
			Y:        s.rng.Intn(max(1, s.height-10)),
			Color:    scheme[s.rng.Intn(len(scheme))],
			Lifetime: 10,
			Seed:     s.rng.Int63(),
		})
	}

	return reqs
}

func (s *Spawner) fillText(req effect.Request) effect.Request {
	phrases := callouts
	if s.params.KindsPerPoint == 1 {
		phrases = calloutsStandard
	}
	req.Text = phrases[s.rng.Intn(len(phrases))]
	req.Color = effect.TextColors[s.rng.Intn(len(effect.TextColors))]
	return req
}

// OnSubBeat generates the continuous low-level sparkle field between
// beats. Simple mode has no sub-beats, so this never runs there.
func (s *Spawner) OnSubBeat(intensity float64) []effect.Request {
	n := int(intensity * float64(s.params.SparkleDensity))
	reqs := make([]effect.Request, 0, n)
	for i := 0; i < n; i++ {
		reqs = append(reqs, effect.Request{
			Kind:     effect.KindSparkle,
			X:        s.rng.Intn(max(1, s.width)),
			Y:        s.rng.Intn(max(1, s.height)),
			Color:    effect.SparkColors[s.rng.Intn(len(effect.SparkColors))],
			Lifetime: 3,
			Seed:     s.rng.Int63(),
		})
	}
	return reqs
}
