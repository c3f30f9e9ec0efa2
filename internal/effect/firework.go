package effect

import (
	"math"
	"math/rand"
)

// Renderable is a transient effect that can draw itself at a given age,
// measured in frames since birth. The lifetime tracker decides when a
// renderable stops being drawn; renderables themselves are stateless
// between frames beyond their construction-time randomness.
type Renderable interface {
	Draw(g *Grid, age int)
}

// fireworkShape selects the particle trajectory family.
type fireworkShape int

const (
	shapeRing fireworkShape = iota
	shapeStar
	shapeSerpent
	shapePalm
	numShapes
)

type particle struct {
	angle float64
	speed float64
	char  rune
}

// Firework is a burst of particles expanding from a center point.
// The shape and particle layout are fixed at construction from the
// request seed, so replaying the same seed gives the same burst.
type Firework struct {
	x, y      int
	color     string
	shape     fireworkShape
	particles []particle
	lifetime  int
}

var fireworkChars = []rune{'*', '+', 'o', '.', '×'}

func NewFirework(req Request) *Firework {
	rng := rand.New(rand.NewSource(req.Seed))
	shape := fireworkShape(rng.Intn(int(numShapes)))

	count := 8 + rng.Intn(8)
	if shape == shapeStar {
		count = 5 + rng.Intn(3)
	}

	parts := make([]particle, count)
	for i := range parts {
		angle := 2 * math.Pi * float64(i) / float64(count)
		if shape == shapeSerpent {
			angle += rng.Float64() * 0.8
		}
		parts[i] = particle{
			angle: angle,
			speed: 0.4 + rng.Float64()*0.5,
			char:  fireworkChars[rng.Intn(len(fireworkChars))],
		}
	}

	return &Firework{
		x:         req.X,
		y:         req.Y,
		color:     req.Color,
		shape:     shape,
		particles: parts,
		lifetime:  req.Lifetime,
	}
}

func (f *Firework) Draw(g *Grid, age int) {
	t := float64(age)
	for _, p := range f.particles {
		r := p.speed * t
		dx := r * math.Cos(p.angle)
		dy := r * math.Sin(p.angle) * 0.5 // terminal cells are taller than wide

		switch f.shape {
		case shapePalm:
			// arcs bend downward under gravity
			dy += 0.02 * t * t
		case shapeSerpent:
			dx += math.Sin(t*0.5+p.angle) * 1.5
		case shapeStar:
			// star points pulse in and out
			r = p.speed * t * (0.7 + 0.3*math.Abs(math.Sin(t*0.3)))
			dx = r * math.Cos(p.angle)
			dy = r * math.Sin(p.angle) * 0.5
		}

		ch := p.char
		// fade to dots near end of life
		if f.lifetime > 0 && age > f.lifetime*2/3 {
			ch = '.'
		}
		g.Set(f.x+int(dx), f.y+int(dy), ch, f.color)
	}
	if age < 3 {
		g.Set(f.x, f.y, '@', f.color)
	}
}
