// Package metrics computes summary statistics over a session's beat
// log. Each metric observes records one at a time so the set can grow
// without reshaping the loop that feeds them.
package metrics

import (
	"math"

	"github.com/san-kum/beatviz/internal/scheduler"
)

// Metric accumulates one statistic over a stream of beat records.
type Metric interface {
	Name() string
	Observe(rec scheduler.BeatRecord)
	Value() float64
	Reset()
}

// MeanIntensity averages the per-beat intensity draw.
type MeanIntensity struct {
	total   float64
	samples int
}

func NewMeanIntensity() *MeanIntensity { return &MeanIntensity{} }

func (m *MeanIntensity) Name() string { return "mean_intensity" }

func (m *MeanIntensity) Observe(rec scheduler.BeatRecord) {
	m.total += rec.Intensity
	m.samples++
}

func (m *MeanIntensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanIntensity) Reset() {
	m.total = 0
	m.samples = 0
}

// SpawnRate is effects spawned per second of session time.
type SpawnRate struct {
	spawned    int
	lastOffset float64
}

func NewSpawnRate() *SpawnRate { return &SpawnRate{} }

func (m *SpawnRate) Name() string { return "spawn_rate" }

func (m *SpawnRate) Observe(rec scheduler.BeatRecord) {
	m.spawned += rec.Spawned
	if s := rec.Offset.Seconds(); s > m.lastOffset {
		m.lastOffset = s
	}
}

func (m *SpawnRate) Value() float64 {
	if m.lastOffset == 0 {
		return 0
	}
	return float64(m.spawned) / m.lastOffset
}

func (m *SpawnRate) Reset() {
	m.spawned = 0
	m.lastOffset = 0
}

// TempoJitter is the relative standard deviation of inter-beat
// intervals. A fixed-tempo session scores near zero; onset-synced
// sessions score higher the looser the track's timing.
type TempoJitter struct {
	prev      float64
	intervals []float64
	samples   int
}

func NewTempoJitter() *TempoJitter { return &TempoJitter{} }

func (m *TempoJitter) Name() string { return "tempo_jitter" }

func (m *TempoJitter) Observe(rec scheduler.BeatRecord) {
	s := rec.Offset.Seconds()
	if m.samples > 0 {
		m.intervals = append(m.intervals, s-m.prev)
	}
	m.prev = s
	m.samples++
}

func (m *TempoJitter) Value() float64 {
	if len(m.intervals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range m.intervals {
		mean += v
	}
	mean /= float64(len(m.intervals))
	if mean == 0 {
		return 0
	}

	varSum := 0.0
	for _, v := range m.intervals {
		d := v - mean
		varSum += d * d
	}
	return math.Sqrt(varSum/float64(len(m.intervals))) / mean
}

func (m *TempoJitter) Reset() {
	m.prev = 0
	m.intervals = nil
	m.samples = 0
}

// Compute runs the standard metric set over a finished beat log.
func Compute(beats []scheduler.BeatRecord) map[string]float64 {
	set := []Metric{
		NewMeanIntensity(),
		NewSpawnRate(),
		NewTempoJitter(),
	}

	out := make(map[string]float64, len(set))
	for _, m := range set {
		for _, rec := range beats {
			m.Observe(rec)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
