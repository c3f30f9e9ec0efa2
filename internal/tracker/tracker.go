// Package tracker owns the collection of active transient effects and
// expires them by frame-counted lifetime.
package tracker

import "github.com/san-kum/beatviz/internal/effect"

// Entry is one tracked transient effect.
type Entry struct {
	Effect   effect.Renderable
	Birth    int // frame index at spawn
	Lifetime int // frames the effect stays live
}

// Age returns how many frames the entry has been alive at the given frame.
func (e Entry) Age(frame int) int { return frame - e.Birth }

// Tracker keeps entries in insertion order; ordering only affects draw
// layering. Advance is the sole place entries are removed — an entry
// that expires is never revisited.
type Tracker struct {
	entries []Entry
}

func New() *Tracker {
	return &Tracker{entries: make([]Entry, 0, 64)}
}

// Add appends unconditionally. The concurrency cap is enforced by the
// scheduler before calling Add, not here.
func (t *Tracker) Add(r effect.Renderable, birth, lifetime int) {
	t.entries = append(t.entries, Entry{Effect: r, Birth: birth, Lifetime: lifetime})
}

// Len reports how many effects are currently tracked.
func (t *Tracker) Len() int { return len(t.entries) }

// Advance drops entries whose lifetime has elapsed at the given frame and
// returns the survivors in insertion order.
func (t *Tracker) Advance(frame int) []Entry {
	live := t.entries[:0]
	for _, e := range t.entries {
		if frame-e.Birth < e.Lifetime {
			live = append(live, e)
		}
	}
	t.entries = live
	return t.entries
}
