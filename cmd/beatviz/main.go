package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/beatviz/internal/analysis"
	"github.com/san-kum/beatviz/internal/audio"
	"github.com/san-kum/beatviz/internal/clock"
	"github.com/san-kum/beatviz/internal/config"
	"github.com/san-kum/beatviz/internal/export"
	"github.com/san-kum/beatviz/internal/metrics"
	"github.com/san-kum/beatviz/internal/mode"
	"github.com/san-kum/beatviz/internal/scheduler"
	"github.com/san-kum/beatviz/internal/spawner"
	"github.com/san-kum/beatviz/internal/storage"
	"github.com/san-kum/beatviz/internal/tui"
)

var (
	dataDir    string
	modeName   string
	themeName  string
	configFile string
	preset     string
	seed       int64
	sync       bool
	noSave     bool
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beatviz",
		Short: "beat-driven ascii music visualizer",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beatviz", "data directory")

	playCmd := &cobra.Command{
		Use:   "play [audio_file]",
		Short: "play a track with the visualizer",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().StringVarP(&modeName, "mode", "m", "standard", "visualization mode (simple, standard, insane)")
	playCmd.Flags().StringVar(&themeName, "theme", "neon", "UI theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	playCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	playCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	playCmd.Flags().BoolVar(&sync, "sync", false, "sync beats to detected onsets instead of fixed 120 BPM")
	playCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the session summary")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [audio_file]",
		Short: "detect onsets and estimate tempo",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export a session with its beat log as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVar(&svgOut, "svg", "", "write a beat chart SVG to this path instead of JSON")

	statsCmd := &cobra.Command{
		Use:   "stats [session_id]",
		Short: "summary statistics for a saved session",
		Args:  cobra.ExactArgs(1),
		RunE:  sessionStats,
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list visualization modes",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODE\tBEAT\tSUB-BEAT\tFPS\tMAX FX")
			for _, name := range mode.Names() {
				m, _ := mode.Parse(name)
				p := mode.Table(m)
				sub := "off"
				if p.SubBeatsEnabled() {
					sub = p.SubBeatInterval.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", name, p.BeatInterval, sub, p.TargetFPS, p.MaxEffects)
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, analyzeCmd, listCmd, exportCmd, statsCmd, modesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveParams layers preset, config file, and flags over the mode table.
func resolveParams(cmd *cobra.Command) (mode.Mode, mode.Params, *config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(modeName, preset)
		if p == nil {
			return 0, mode.Params{}, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(modeName))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return 0, mode.Params{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return 0, mode.Params{}, nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") || cfg.Mode == "" {
		cfg.Mode = modeName
	}
	if cmd.Flags().Changed("theme") || cfg.Theme == "" {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("sync") {
		cfg.Sync = sync
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	m, err := mode.Parse(cfg.Mode)
	if err != nil {
		return 0, mode.Params{}, nil, err
	}

	return m, cfg.Apply(mode.Table(m)), cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	audioFile := args[0]

	// validate everything before any terminal or speaker resource exists
	m, params, cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	player, err := audio.Open(audioFile)
	if err != nil {
		return err
	}

	var source clock.Source
	var tempo float64
	if cfg.Sync {
		fmt.Println("analyzing track for onsets...")
		pcm, err := audio.DecodePCM(audioFile)
		if err != nil {
			return err
		}
		onsets := analysis.Detect(pcm.Samples, pcm.SampleRate)
		if len(onsets.Times) == 0 {
			return fmt.Errorf("no onsets detected in %s; try without --sync", audioFile)
		}
		tempo = onsets.BPM
		fmt.Printf("detected %d onsets, ~%.0f BPM\n", len(onsets.Times), onsets.BPM)
		source = clock.NewOnset(onsets.Times, params.SubBeatInterval)
	} else {
		source = clock.New(params.BeatInterval, params.SubBeatInterval)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	spawn := spawner.New(params, 100, 30, rng)
	sched := scheduler.New(params, source, spawn)

	if err := player.Start(); err != nil {
		return err
	}
	defer player.Stop()

	model := tui.NewModel(sched, spawn, player, params, m, tui.GetTheme(cfg.Theme), filepath.Base(audioFile), cfg.Sync, cfg.Seed)

	start := time.Now()
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return err
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	sessionID, err := st.Save(storage.SessionMetadata{
		AudioFile: filepath.Base(audioFile),
		Mode:      m.String(),
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Duration:  time.Since(start),
		BeatCount: sched.BeatCount(),
		Spawned:   sched.TotalSpawned(),
		Synced:    cfg.Sync,
		TempoBPM:  tempo,
	}, sched.BeatLog())
	if err != nil {
		return err
	}
	fmt.Printf("session saved: %s\n", sessionID)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	audioFile := args[0]

	fmt.Printf("decoding %s...\n", audioFile)
	pcm, err := audio.DecodePCM(audioFile)
	if err != nil {
		return err
	}

	trackLen := float64(len(pcm.Samples)) / float64(pcm.SampleRate)
	fmt.Printf("samples: %d (%.1fs @ %d Hz)\n\n", len(pcm.Samples), trackLen, pcm.SampleRate)

	onsets := analysis.Detect(pcm.Samples, pcm.SampleRate)
	if len(onsets.Envelope) == 0 {
		return fmt.Errorf("track too short to analyze")
	}

	// downsample the envelope to terminal width
	plotData := downsample(onsets.Envelope, 120)
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(100),
		asciigraph.Caption("onset envelope (spectral flux)"),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("onsets detected: %d\n", len(onsets.Times))
	if onsets.BPM > 0 {
		fmt.Printf("tempo estimate: %.1f BPM (beat every %.0f ms)\n", onsets.BPM, float64(time.Minute)/onsets.BPM/float64(time.Millisecond))
	} else {
		fmt.Println("tempo estimate: n/a (too few onsets)")
	}
	return nil
}

func downsample(v []float64, n int) []float64 {
	if len(v) <= n {
		return v
	}
	out := make([]float64, n)
	bucket := float64(len(v)) / float64(n)
	for i := 0; i < n; i++ {
		lo := int(float64(i) * bucket)
		hi := int(float64(i+1) * bucket)
		if hi > len(v) {
			hi = len(v)
		}
		maxV := 0.0
		for _, x := range v[lo:hi] {
			if x > maxV {
				maxV = x
			}
		}
		out[i] = maxV
	}
	return out
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRACK\tMODE\tTIME\tDURATION\tBEATS\tFX")

	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fs\t%d\t%d\n",
			s.ID,
			s.AudioFile,
			s.Mode,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Duration.Seconds(),
			s.BeatCount,
			s.Spawned,
		)
	}

	return w.Flush()
}

func exportSession(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(sessionID)
	if err != nil {
		return err
	}
	beats, err := st.LoadBeats(sessionID)
	if err != nil {
		return err
	}

	if svgOut != "" {
		svg := export.BeatChartSVG(beats, 800, 300)
		if svg == "" {
			return fmt.Errorf("session %s has too few beats to chart", sessionID)
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("beat chart written: %s\n", svgOut)
		return nil
	}

	return storage.ExportJSONStdout(meta, beats)
}

func sessionStats(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(sessionID)
	if err != nil {
		return err
	}
	beats, err := st.LoadBeats(sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("%s  (%s, %s)\n\n", meta.ID, meta.AudioFile, meta.Mode)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "beats\t%d\n", meta.BeatCount)
	fmt.Fprintf(w, "effects spawned\t%d\n", meta.Spawned)
	vals := metrics.Compute(beats)
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, vals[name])
	}
	return w.Flush()
}
