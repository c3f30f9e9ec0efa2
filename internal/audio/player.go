// Package audio owns playback of the track being visualized. Decoding
// and output are delegated to beep; the rest of the program only asks
// whether the track is still playing.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Player streams one audio file to the default output device.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	playing  atomic.Bool
	started  time.Time
}

// Open validates and decodes an audio file by extension. It fails before
// any terminal or speaker resource is acquired.
func Open(path string) (*Player, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("audio file %q not found", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Player{file: f, streamer: streamer, format: format}, nil
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q (wav, mp3, flac, ogg)", filepath.Ext(path))
	}
}

// Start initializes the speaker and begins playback. The done callback
// flips the playing flag, which gates the render loop.
func (p *Player) Start() error {
	bufSize := p.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(p.format.SampleRate, bufSize); err != nil {
		return fmt.Errorf("audio output: %w", err)
	}

	p.playing.Store(true)
	p.started = time.Now()
	speaker.Play(beep.Seq(p.streamer, beep.Callback(func() {
		p.playing.Store(false)
	})))
	return nil
}

// Playing reports whether the track is still being streamed.
func (p *Player) Playing() bool { return p.playing.Load() }

// Duration is the total track length.
func (p *Player) Duration() time.Duration {
	n := p.format.SampleRate.N(time.Second)
	if n == 0 {
		return 0
	}
	return time.Duration(p.streamer.Len()) * time.Second / time.Duration(n)
}

// Stop tears playback down. Safe to call once after the loop exits.
func (p *Player) Stop() {
	speaker.Clear()
	p.playing.Store(false)
	p.streamer.Close()
	p.file.Close()
}
