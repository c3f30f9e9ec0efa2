package effect

import "math/rand"

// Background is a persistent effect that lives for the whole session and
// advances once per frame, unlike transient effects which are aged out.
type Background interface {
	Advance()
	Draw(g *Grid)
}

// Rain is a matrix-style falling character background.
type Rain struct {
	width, height int
	heads         []int // row of each column's head, -1 when dormant
	lengths       []int
	rng           *rand.Rand
}

var rainChars = []rune("abcdefghijklmnopqrstuvwxyz0123456789$+*")

func NewRain(w, h int, rng *rand.Rand) *Rain {
	r := &Rain{width: w, height: h, heads: make([]int, w), lengths: make([]int, w), rng: rng}
	for i := range r.heads {
		r.heads[i] = -1
	}
	return r
}

func (r *Rain) Advance() {
	for x := 0; x < r.width; x++ {
		if r.heads[x] < 0 {
			if r.rng.Float64() < 0.02 {
				r.heads[x] = 0
				r.lengths[x] = 4 + r.rng.Intn(8)
			}
			continue
		}
		r.heads[x]++
		if r.heads[x]-r.lengths[x] > r.height {
			r.heads[x] = -1
		}
	}
}

func (r *Rain) Draw(g *Grid) {
	for x := 0; x < r.width; x++ {
		head := r.heads[x]
		if head < 0 {
			continue
		}
		for i := 0; i < r.lengths[x]; i++ {
			y := head - i
			if y < 0 || y >= r.height {
				continue
			}
			color := "#115511"
			if i == 0 {
				color = "#aaffaa"
			} else if i < 3 {
				color = "#33aa33"
			}
			g.Set(x, y, rainChars[r.rng.Intn(len(rainChars))], color)
		}
	}
}

// Stars is a twinkling starfield used by insane mode.
type Stars struct {
	xs, ys []int
	phase  []int
	rng    *rand.Rand
	tick   int
}

func NewStars(w, h, count int, rng *rand.Rand) *Stars {
	s := &Stars{
		xs:    make([]int, count),
		ys:    make([]int, count),
		phase: make([]int, count),
		rng:   rng,
	}
	for i := 0; i < count; i++ {
		s.xs[i] = rng.Intn(w)
		s.ys[i] = rng.Intn(h)
		s.phase[i] = rng.Intn(8)
	}
	return s
}

func (s *Stars) Advance() { s.tick++ }

func (s *Stars) Draw(g *Grid) {
	for i := range s.xs {
		switch (s.tick + s.phase[i]) % 8 {
		case 0, 1:
			g.Set(s.xs[i], s.ys[i], '.', "#888888")
		case 2, 3, 6, 7:
			g.Set(s.xs[i], s.ys[i], '+', "#cccccc")
		default:
			g.Set(s.xs[i], s.ys[i], '*', "#ffffff")
		}
	}
}
