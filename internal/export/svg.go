// Package export renders a saved session's beat log as a standalone SVG
// chart, for sharing a session outside the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/beatviz/internal/scheduler"
)

// BeatChartSVG plots beat intensity over session time as a polyline,
// with a marker per beat sized by how many effects it spawned.
func BeatChartSVG(beats []scheduler.BeatRecord, width, height int) string {
	if len(beats) < 2 {
		return ""
	}

	maxOffset := beats[len(beats)-1].Offset.Seconds()
	if maxOffset == 0 {
		maxOffset = 1
	}

	maxSpawned := 1
	for _, b := range beats {
		if b.Spawned > maxSpawned {
			maxSpawned = b.Spawned
		}
	}

	// 10% padding keeps markers off the chart edges
	pad := float64(height) * 0.1
	plotH := float64(height) - 2*pad

	px := func(b scheduler.BeatRecord) (float64, float64) {
		x := b.Offset.Seconds() / maxOffset * float64(width)
		y := pad + (1-b.Intensity)*plotH
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i, b := range beats {
		x, y := px(b)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n<g fill=\"#ffff00\">\n")

	for _, b := range beats {
		x, y := px(b)
		r := 1.5 + 3.0*float64(b.Spawned)/float64(maxSpawned)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, x, y, r))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
