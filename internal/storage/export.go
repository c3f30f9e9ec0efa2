package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/beatviz/internal/scheduler"
)

type sessionExport struct {
	Meta  SessionMetadata `json:"session"`
	Beats []beatExport    `json:"beats"`
}

type beatExport struct {
	Offset    float64 `json:"offset_s"`
	Intensity float64 `json:"intensity"`
	Spawned   int     `json:"spawned"`
}

// ExportJSONStdout writes a session with its full beat log to stdout.
func ExportJSONStdout(meta *SessionMetadata, beats []scheduler.BeatRecord) error {
	out := sessionExport{Meta: *meta, Beats: make([]beatExport, 0, len(beats))}
	for _, b := range beats {
		out.Beats = append(out.Beats, beatExport{
			Offset:    b.Offset.Seconds(),
			Intensity: b.Intensity,
			Spawned:   b.Spawned,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
