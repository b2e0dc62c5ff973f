package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"glowgrid/internal/config"
	"glowgrid/internal/engine"
	"glowgrid/internal/export"
	"glowgrid/internal/grid"
	"glowgrid/internal/palette"
	"glowgrid/internal/tui"
)

var (
	configFile string
	width      int
	height     int
	layout     string
	fps        int
	paletteArg string
	preload    []string
	seed       int64
	ticks      int
	outFile    string
	cellSize   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glowgrid",
		Short: "LED matrix animation engine with a terminal front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI("")
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "render a mode live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName := ""
			if len(args) > 0 {
				modeName = args[0]
			}
			return runTUI(modeName)
		},
	}
	addGeometryFlags(runCmd)
	runCmd.Flags().StringArrayVar(&preload, "text", nil, "queue text before starting (repeatable)")

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list display modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine("")
			if err != nil {
				return err
			}
			for _, name := range eng.ModeNames() {
				fmt.Println(name)
			}
			fmt.Println("text (input driven)")
			return nil
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range palette.Names() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [mode]",
		Short: "run a mode headless and plot per-tick activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchMode(args[0])
		},
	}
	addGeometryFlags(benchCmd)
	benchCmd.Flags().IntVar(&ticks, "ticks", 200, "ticks to simulate")

	snapCmd := &cobra.Command{
		Use:   "snap [mode]",
		Short: "render a mode headless and write an SVG snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapMode(args[0])
		},
	}
	addGeometryFlags(snapCmd)
	snapCmd.Flags().IntVar(&ticks, "ticks", 50, "ticks to simulate before the snapshot")
	snapCmd.Flags().StringVar(&outFile, "out", "frame.svg", "output file")
	snapCmd.Flags().IntVar(&cellSize, "cell", 16, "SVG pixels per LED")
	snapCmd.Flags().StringArrayVar(&preload, "text", nil, "queue text before rendering (repeatable)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "glowgrid.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, modesCmd, palettesCmd, benchCmd, snapCmd, configCmd)
	return rootCmd
}

func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, "matrix width (overrides config)")
	cmd.Flags().IntVar(&height, "height", 0, "matrix height (overrides config)")
	cmd.Flags().StringVar(&layout, "layout", "", "wiring layout: row or serpentine")
	cmd.Flags().IntVar(&fps, "fps", 0, "refresh rate")
	cmd.Flags().StringVar(&paletteArg, "palette", "", "starting palette")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for stochastic modes")
}

// loadConfig merges the config file (or defaults) with command line flags.
func loadConfig(modeName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if layout != "" {
		cfg.Layout = layout
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if paletteArg != "" {
		cfg.Palette = paletteArg
	}
	if modeName != "" {
		cfg.Mode = modeName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildEngine(modeName string) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(modeName)
	if err != nil {
		return nil, nil, err
	}
	opts := cfg.EngineOptions()
	opts.Seed = seed
	eng, err := engine.New(cfg.Grid(), opts)
	if err != nil {
		return nil, nil, err
	}
	for _, text := range preload {
		eng.PushText(text, uint8(cfg.TextRepeat), 0)
	}
	return eng, cfg, nil
}

func runTUI(modeName string) error {
	eng, cfg, err := buildEngine(modeName)
	if err != nil {
		return err
	}
	return tui.Run(eng, cfg.FPS)
}

// headlessClock forces the frame gate open on every step so headless runs
// advance one simulation step per Step call regardless of mode intervals.
func headlessClock() func() time.Time {
	t := time.Now()
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func benchMode(modeName string) error {
	cfg, err := loadConfig(modeName)
	if err != nil {
		return err
	}
	opts := cfg.EngineOptions()
	opts.Seed = seed
	opts.Clock = headlessClock()
	eng, err := engine.New(cfg.Grid(), opts)
	if err != nil {
		return err
	}

	g := cfg.Grid()
	prev := make(grid.Frame, g.Size())
	activity := make([]float64, 0, ticks)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		eng.Frame().CopyTo(prev)
		eng.Step()
		changed := 0
		for j, c := range eng.Frame() {
			if c != prev[j] {
				changed++
			}
		}
		activity = append(activity, float64(changed))
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d ticks on %dx%d in %v (%v/tick)\n\n",
		modeName, ticks, g.Width, g.Height, elapsed.Round(time.Microsecond),
		(elapsed / time.Duration(ticks)).Round(time.Nanosecond))
	fmt.Println(asciigraph.Plot(activity,
		asciigraph.Height(10),
		asciigraph.Caption("changed pixels per tick")))
	return nil
}

func snapMode(modeName string) error {
	cfg, err := loadConfig(modeName)
	if err != nil {
		return err
	}
	opts := cfg.EngineOptions()
	opts.Seed = seed
	opts.Clock = headlessClock()
	eng, err := engine.New(cfg.Grid(), opts)
	if err != nil {
		return err
	}
	for _, text := range preload {
		eng.PushText(text, uint8(cfg.TextRepeat), 0)
	}

	for i := 0; i < ticks; i++ {
		eng.Step()
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteSVG(f, eng.Grid(), eng.Frame(), cellSize); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
