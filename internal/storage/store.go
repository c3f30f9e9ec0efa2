// Package storage persists visualization sessions under a data
// directory: one subdirectory per session with JSON metadata and a CSV
// beat log.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/beatviz/internal/scheduler"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID         string        `json:"id"`
	AudioFile  string        `json:"audio_file"`
	Mode       string        `json:"mode"`
	Timestamp  time.Time     `json:"timestamp"`
	Seed       int64         `json:"seed"`
	Duration   time.Duration `json:"duration"`
	BeatCount  int           `json:"beat_count"`
	Spawned    int           `json:"effects_spawned"`
	Synced     bool          `json:"synced"`
	TempoBPM   float64       `json:"tempo_bpm,omitempty"`
}

// Save writes one finished session: metadata.json plus beats.csv with a
// row per beat (offset seconds, intensity, effects spawned).
func (s *Store) Save(meta SessionMetadata, beats []scheduler.BeatRecord) (string, error) {
	sessionID := fmt.Sprintf("%s_%d", meta.Mode, time.Now().Unix())
	meta.ID = sessionID
	sessionDir := filepath.Join(s.baseDir, sessionID)

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(sessionDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(sessionDir, "beats.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"offset", "intensity", "spawned"}); err != nil {
		return "", err
	}
	for _, b := range beats {
		row := []string{
			strconv.FormatFloat(b.Offset.Seconds(), 'f', 4, 64),
			strconv.FormatFloat(b.Intensity, 'f', 4, 64),
			strconv.Itoa(b.Spawned),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sessionID, nil
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(sessionID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadBeats reads the per-beat log back for plotting and export.
func (s *Store) LoadBeats(sessionID string) ([]scheduler.BeatRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, sessionID, "beats.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []scheduler.BeatRecord{}, nil
	}

	beats := make([]scheduler.BeatRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		offset, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		intensity, _ := strconv.ParseFloat(record[1], 64)
		spawned, _ := strconv.Atoi(record[2])
		beats = append(beats, scheduler.BeatRecord{
			Offset:    time.Duration(offset * float64(time.Second)),
			Intensity: intensity,
			Spawned:   spawned,
		})
	}
	return beats, nil
}
