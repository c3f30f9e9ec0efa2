package effect

import "fmt"

// Kind identifies a category of transient effect.
type Kind int

const (
	KindFirework Kind = iota
	KindFlash
	KindText
	KindArt
	KindSparkle
)

func (k Kind) String() string {
	switch k {
	case KindFirework:
		return "firework"
	case KindFlash:
		return "flash"
	case KindText:
		return "text"
	case KindArt:
		return "art"
	case KindSparkle:
		return "sparkle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request describes an effect the spawner wants created. The renderer
// materializes it into a Renderable and hands it to the lifetime tracker.
type Request struct {
	Kind     Kind
	X, Y     int
	Color    string // lipgloss color value from the active scheme
	Lifetime int    // frames
	Seed     int64  // per-effect randomness so shapes differ
	Text     string // callout word, text kind only
}
