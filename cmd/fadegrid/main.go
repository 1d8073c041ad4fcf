package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fadegrid/internal/config"
	"github.com/san-kum/fadegrid/internal/fade"
	"github.com/san-kum/fadegrid/internal/layout"
	"github.com/san-kum/fadegrid/internal/logging"
	"github.com/san-kum/fadegrid/internal/tui"
)

var (
	configFile string
	preset     string
	delayMS    int
	staggerMS  int
	scaleStart float64
	theme      string
	message    string
	logFile    string
	logLevel   string
	// grid command
	tileSize   int
	padding    int
	animations bool
)

// main registers the commands and starts the terminal grid when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fadegrid",
		Short:        "animated fade-in tile grid for the terminal",
		SilenceUsage: true,
		RunE:         runGrid,
	}
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "show the animated grid",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}
	addRunFlags(runCmd)

	gridCmd := &cobra.Command{
		Use:   "grid [width] [height]",
		Short: "compute the grid for a viewport in pixels",
		Args:  cobra.ExactArgs(2),
		RunE:  printGrid,
	}
	gridCmd.Flags().IntVar(&tileSize, "tile", layout.DefaultTileSize, "tile size in pixels")
	gridCmd.Flags().IntVar(&padding, "padding", layout.DefaultPadding, "padding in pixels")
	gridCmd.Flags().IntVar(&staggerMS, "stagger", config.DefaultStaggerMS, "entrance stagger per tile (ms)")
	gridCmd.Flags().BoolVar(&animations, "animations", false, "print the css animation of every tile")

	waveCmd := &cobra.Command{
		Use:   "wave [HH:MM]",
		Short: "show the wave period for a time of day",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printWave,
	}

	cssCmd := &cobra.Command{
		Use:   "css",
		Short: "print the keyframe stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), layout.Stylesheet(scaleStart))
			return nil
		},
	}
	cssCmd.Flags().Float64Var(&scaleStart, "scale-start", config.DefaultScaleStart, "entrance start scale")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fadegrid.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a timing preset")
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list timing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), header("timing presets"))
			for _, name := range config.ListPresets() {
				t := config.Presets[name]
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s delay=%dms stagger=%dms scale=%.2f debounce=%dms\n",
					name, t.DelayMS, t.StaggerMS, t.ScaleStart, t.DebounceMS)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, gridCmd, waveCmd, cssCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a timing preset")
	cmd.Flags().IntVar(&delayMS, "delay", config.DefaultDelayMS, "delay before the entrance animation (ms)")
	cmd.Flags().IntVar(&staggerMS, "stagger", config.DefaultStaggerMS, "entrance stagger per tile (ms)")
	cmd.Flags().Float64Var(&scaleStart, "scale-start", config.DefaultScaleStart, "entrance start scale")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	cmd.Flags().StringVar(&message, "message", config.DefaultMessage, "overlay text")
	cmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogFile, "log file (empty disables logging)")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Timing.DelayMS = delayMS
	}
	if flags.Changed("stagger") {
		cfg.Timing.StaggerMS = staggerMS
	}
	if flags.Changed("scale-start") {
		cfg.Timing.ScaleStart = scaleStart
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("message") {
		cfg.Display.Message = message
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(tui.ThemeNames(), cfg.Display.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Display.Theme, tui.ThemeNames())
	}
	return cfg, nil
}

// header renders a section title in the default theme's tile colours.
func header(text string) string {
	return tui.GradientText(text, tui.ThemeEmerald.Tree, tui.ThemeEmerald.Tile)
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	clk := clock.New()
	widget := fade.New(fade.Options{
		Timing: fade.Timing{
			Delay:      cfg.Delay(),
			Stagger:    cfg.Stagger(),
			ScaleStart: cfg.Timing.ScaleStart,
		},
		Clock:    clk,
		TileSize: cfg.Layout.TileSize,
		Padding:  cfg.Layout.Padding,
		Debounce: cfg.Debounce(),
		Logger:   log,
	})
	log.WithField("wave", widget.WaveDuration()).Info("starting")

	err = tui.Run(tui.Options{
		Widget:  widget,
		Clock:   clk,
		Layout:  cfg.Layout,
		Theme:   cfg.Display.Theme,
		Message: cfg.Display.Message,
		FPS:     cfg.Display.FPS,
		Logger:  log,
	})
	if err != nil {
		log.WithError(err).Error("terminal ui failed")
		return err
	}
	log.Info("stopped")
	return nil
}

func printGrid(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", args[1], err)
	}

	g := layout.ComputeGrid(width, height, tileSize, padding)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cols=%d rows=%d tiles=%d\n", g.Cols, g.Rows, g.Tiles())

	if animations {
		sched := layout.Schedule{
			Stagger: time.Duration(staggerMS) * time.Millisecond,
			Wave:    layout.WaveDuration(time.Now()),
		}
		for i := 0; i < g.Tiles(); i++ {
			col, row := g.Position(i)
			fmt.Fprintf(out, "%4d (%d,%d) %s\n", i, col, row, sched.TileAnimation(i))
		}
	}
	return nil
}

func printWave(cmd *cobra.Command, args []string) error {
	at, err := parseTimeOfDay(args, time.Now())
	if err != nil {
		return err
	}
	d := layout.WaveDuration(at)

	const samples = 60
	curve := make([]float64, samples+1)
	for i := range curve {
		curve[i] = layout.WaveScale(float64(i) / samples)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, header("wave at "+at.Format("15:04")))
	fmt.Fprintf(out, "wave=%v  phase step=%v\n\n", d, d/layout.WavePhaseDivisor)
	fmt.Fprintln(out, asciigraph.Plot(curve,
		asciigraph.Height(8),
		asciigraph.Width(samples),
		asciigraph.Precision(2),
		asciigraph.Caption("tile scale over one wave period")))
	return nil
}

// parseTimeOfDay reads an optional HH:MM argument, defaulting to now.
func parseTimeOfDay(args []string, now time.Time) (time.Time, error) {
	if len(args) == 0 {
		return now, nil
	}
	t, err := time.Parse("15:04", args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q (want HH:MM): %w", args[0], err)
	}
	return t, nil
}
