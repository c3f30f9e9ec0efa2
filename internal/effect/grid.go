package effect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grid is a character frame buffer. Each cell holds a rune and the
// lipgloss color it is drawn with. All transient and persistent effects
// composite onto one grid per frame; the renderer presents it as a string.
type Grid struct {
	Width, Height int
	runes         [][]rune
	colors        [][]string
}

func NewGrid(w, h int) *Grid {
	g := &Grid{
		Width:  w,
		Height: h,
		runes:  make([][]rune, h),
		colors: make([][]string, h),
	}
	for y := 0; y < h; y++ {
		g.runes[y] = make([]rune, w)
		g.colors[y] = make([]string, w)
		for x := 0; x < w; x++ {
			g.runes[y][x] = ' '
		}
	}
	return g
}

// Set places a single colored rune; out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, r rune, color string) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.runes[y][x] = r
	g.colors[y][x] = color
}

// SetString writes a horizontal run of text starting at (x, y).
func (g *Grid) SetString(x, y int, s string, color string) {
	for i, r := range []rune(s) {
		g.Set(x+i, y, r, color)
	}
}

// At returns the rune at a cell, or space when out of bounds.
func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return ' '
	}
	return g.runes[y][x]
}

// Clear resets every cell to an uncolored space.
func (g *Grid) Clear() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.runes[y][x] = ' '
			g.colors[y][x] = ""
		}
	}
}

// String renders the grid with ANSI colors, one line per row. Runs of
// identically colored cells are styled together to keep the output small.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		x := 0
		for x < g.Width {
			color := g.colors[y][x]
			start := x
			for x < g.Width && g.colors[y][x] == color {
				x++
			}
			run := string(g.runes[y][start:x])
			if color == "" {
				b.WriteString(run)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(run))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
