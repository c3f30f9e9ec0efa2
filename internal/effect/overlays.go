package effect

import (
	"math/rand"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Flash scatters block characters across the whole grid for a few frames.
type Flash struct {
	seed    int64
	step    int
	density float64
	colors  Scheme
}

var flashChars = []rune{'█', '▓', '▒', '░', '*', '#'}

func NewFlash(req Request, step int, density float64, scheme Scheme) *Flash {
	if step < 2 {
		step = 2
	}
	return &Flash{seed: req.Seed, step: step, density: density, colors: scheme}
}

func (f *Flash) Draw(g *Grid, age int) {
	// same seed every frame keeps the pattern stable while it flickers out
	rng := rand.New(rand.NewSource(f.seed + int64(age/2)))
	ch := flashChars[rng.Intn(len(flashChars))]
	for y := 0; y < g.Height; y += f.step {
		for x := 0; x < g.Width; x += f.step + 1 {
			if rng.Float64() < f.density {
				g.Set(x, y, ch, f.colors[rng.Intn(len(f.colors))])
			}
		}
	}
}

// Text is a figlet-style callout word drawn at a fixed position.
type Text struct {
	x, y  int
	color string
	lines []string
}

func NewText(req Request) *Text {
	fig := figure.NewFigure(req.Text, "", true)
	rows := fig.Slicify()
	if len(rows) == 0 {
		rows = []string{req.Text}
	}
	return &Text{x: req.X, y: req.Y, color: req.Color, lines: rows}
}

func (t *Text) Draw(g *Grid, age int) {
	for i, line := range t.lines {
		if t.y+i >= g.Height-2 {
			break
		}
		g.SetString(t.x, t.y+i, line, t.color)
	}
}

// Art draws one of the fixed ascii patterns.
type Art struct {
	x, y  int
	color string
	lines []string
}

var artPatterns = []string{
	`
   ___
  /   \
 /     \
/_______\`,
	`
 ◆◇◆
◇◆◇◆◇
 ◆◇◆`,
	`
  ★
 ★ ★
★   ★
 ★ ★
  ★`,
	`
   ▲
  ▲ ▲
 ▲   ▲
▲ ▲ ▲ ▲`,
}

func NewArt(req Request) *Art {
	rng := rand.New(rand.NewSource(req.Seed))
	pattern := artPatterns[rng.Intn(len(artPatterns))]
	return &Art{
		x:     req.X,
		y:     req.Y,
		color: req.Color,
		lines: strings.Split(strings.Trim(pattern, "\n"), "\n"),
	}
}

func (a *Art) Draw(g *Grid, age int) {
	for i, line := range a.lines {
		if a.y+i >= g.Height-2 {
			break
		}
		g.SetString(a.x, a.y+i, line, a.color)
	}
}

// Sparkle twinkles a handful of dots around a point.
type Sparkle struct {
	x, y  int
	seed  int64
	color string
}

var sparkChars = []rune{'*', '+', '.', '·', '°', '×'}

func NewSparkle(req Request) *Sparkle {
	return &Sparkle{x: req.X, y: req.Y, seed: req.Seed, color: req.Color}
}

func (s *Sparkle) Draw(g *Grid, age int) {
	rng := rand.New(rand.NewSource(s.seed))
	n := 2 + rng.Intn(3)
	for i := 0; i < n; i++ {
		dx := rng.Intn(5) - 2
		dy := rng.Intn(3) - 1
		// individual dots blink on and off as the sparkle ages
		if (age+i)%3 == 0 {
			continue
		}
		g.Set(s.x+dx, s.y+dy, sparkChars[rng.Intn(len(sparkChars))], s.color)
	}
}

// Materialize turns a spawn request into a drawable effect. Flash density
// and stride come from the mode, so the renderer passes them through.
func Materialize(req Request, flashStep int, flashDensity float64, scheme Scheme) Renderable {
	switch req.Kind {
	case KindFlash:
		return NewFlash(req, flashStep, flashDensity, scheme)
	case KindText:
		return NewText(req)
	case KindArt:
		return NewArt(req)
	case KindSparkle:
		return NewSparkle(req)
	default:
		return NewFirework(req)
	}
}
