// Package tui runs the render loop: a bubbletea program ticking at the
// mode's target frame rate, compositing effects onto a character grid
// and drawing the status chrome around it.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/beatviz/internal/effect"
	"github.com/san-kum/beatviz/internal/mode"
	"github.com/san-kum/beatviz/internal/scheduler"
	"github.com/san-kum/beatviz/internal/spawner"
	"github.com/san-kum/beatviz/internal/tracker"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	statusRows    = 3
	bannerWindow  = 100 * time.Millisecond
	errorHold     = 2 * time.Second
)

type TickMsg time.Time

type errExitMsg struct{}

// Playback is what the renderer asks of the audio layer: whether to keep
// looping, and the track length for the status line.
type Playback interface {
	Playing() bool
	Duration() time.Duration
}

// Model is the bubbletea model for one visualization session.
type Model struct {
	sched  *scheduler.Scheduler
	spawn  *spawner.Spawner
	player Playback
	params mode.Params
	theme  Theme

	md        mode.Mode
	modeName  string
	audioName string
	synced    bool

	grid        *effect.Grid
	backgrounds []effect.Background
	bgRNG       *rand.Rand

	width, height int
	frame         int
	live          []tracker.Entry
	tickFrame     int
	start         time.Time
	started       bool

	err      error
	quitting bool
	farewell string
}

func NewModel(sched *scheduler.Scheduler, spawn *spawner.Spawner, player Playback, p mode.Params, m mode.Mode, theme Theme, audioName string, synced bool, bgSeed int64) Model {
	model := Model{
		sched:     sched,
		spawn:     spawn,
		player:    player,
		params:    p,
		theme:     theme,
		md:        m,
		modeName:  m.String(),
		audioName: audioName,
		synced:    synced,
		width:     defaultWidth,
		height:    defaultHeight,
		bgRNG:     rand.New(rand.NewSource(bgSeed)),
	}
	model.rebuild(m)
	return model
}

// rebuild sets up the grid and persistent backgrounds for the current size.
func (m *Model) rebuild(md mode.Mode) {
	gh := m.height - statusRows
	if gh < 5 {
		gh = 5
	}
	m.grid = effect.NewGrid(m.width, gh)
	m.spawn.Resize(m.width, gh)

	m.backgrounds = []effect.Background{effect.NewRain(m.width, gh, m.bgRNG)}
	if md == mode.Insane {
		m.backgrounds = append(m.backgrounds, effect.NewStars(m.width, gh, m.width*gh/40, m.bgRNG))
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.params.FrameTime())
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			m.quitting = true
			m.farewell = "Thanks for watching!"
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuild(m.md)
		return m, nil

	case TickMsg:
		if m.quitting || m.err != nil {
			return m, nil
		}
		if !m.player.Playing() {
			m.quitting = true
			m.farewell = "Track finished. Thanks for watching!"
			return m, tea.Quit
		}
		if err := m.safeAdvance(time.Time(msg)); err != nil {
			// show the error briefly, then exit; no retry
			m.err = err
			return m, tea.Tick(errorHold, func(time.Time) tea.Msg { return errExitMsg{} })
		}
		return m, tick(m.params.FrameTime())

	case errExitMsg:
		return m, tea.Quit
	}
	return m, nil
}

// safeAdvance runs one frame and converts a panic anywhere in the effect
// pipeline into an error so the loop can exit cleanly.
func (m *Model) safeAdvance(now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render error: %v", r)
		}
	}()

	if !m.started {
		m.start = now
		m.started = true
	}

	res := m.sched.Tick(now, m.frame)
	m.live = res.Live
	m.tickFrame = m.frame
	for _, bg := range m.backgrounds {
		bg.Advance()
	}
	m.frame++
	return nil
}

func (m Model) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(m.theme.Banner).
			Render(fmt.Sprintf("\n  error: %v\n\n  shutting down...\n", m.err))
	}
	if m.quitting {
		return lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.farewell) + "\n"
	}

	m.grid.Clear()
	for _, bg := range m.backgrounds {
		bg.Draw(m.grid)
	}
	for _, entry := range m.live {
		entry.Effect.Draw(m.grid, entry.Age(m.tickFrame))
	}

	var b strings.Builder
	b.WriteString(m.grid.String())
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	elapsed := time.Duration(0)
	if m.started {
		elapsed = time.Since(m.start)
	}
	fps := 0
	if sec := elapsed.Seconds(); sec > 0 {
		fps = int(float64(m.frame) / sec)
	}

	rule := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(strings.Repeat("═", m.width))

	source := "simulated 120 BPM"
	if m.synced {
		source = "onset sync"
	}
	info := fmt.Sprintf(" %s │ %s │ beats %d │ fx %d │ %d fps │ %.1fs/%.1fs │ %s",
		m.audioName, m.modeName, m.sched.BeatCount(), m.sched.ActiveEffects(), fps,
		elapsed.Seconds(), m.player.Duration().Seconds(), source)
	status := lipgloss.NewStyle().Foreground(m.theme.Text).Render(info)

	line := status
	if m.started && time.Since(m.sched.LastBeat()) < bannerWindow {
		banner := lipgloss.NewStyle().
			Foreground(m.theme.Banner).
			Background(m.theme.BannerBackground).
			Bold(true).
			Render("▌▌ BEAT! ▌▌")
		pad := m.width - lipgloss.Width(status) - lipgloss.Width(banner) - 2
		if pad < 1 {
			pad = 1
		}
		line = status + strings.Repeat(" ", pad) + banner
	}

	help := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(" q: quit")
	return rule + "\n" + line + "\n" + help
}
