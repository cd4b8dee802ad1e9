package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
	"github.com/san-kum/evolab/internal/problems"
	"github.com/san-kum/evolab/internal/tui"
)

var (
	configFile string
	preset     string
	population int
	maxGen     int
	seed       int64
	delayMs    int
	mutation   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evolab",
		Short: "genetic algorithm lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Seed = time.Now().UnixNano()
			return tui.Run(cfg.Problem, cfg)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "evolve a problem headlessly and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runProblem,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "evolve a problem with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(args[0])
			if err != nil {
				return err
			}
			return tui.Run(args[0], cfg)
		},
	}
	addRunFlags(liveCmd)

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list available problems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range problems.NewRegistry().List() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				return fmt.Errorf("no presets for problem: %s", args[0])
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, problemsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&population, "population", 0, "population size")
	cmd.Flags().IntVar(&maxGen, "generations", 0, "maximum generations")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "frame delay in milliseconds")
	cmd.Flags().Float64Var(&mutation, "mutation", 0, "per-organism mutation chance")
}

// buildConfig layers flag overrides on top of preset/file/defaults.
func buildConfig(problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Problem = problem
	if population > 0 {
		cfg.PopulationSize = population
	}
	if maxGen > 0 {
		cfg.MaxGenerations = maxGen
	}
	if delayMs > 0 {
		cfg.FrameDelayMs = delayMs
	}
	if mutation > 0 {
		cfg.MutationChance = mutation
	}
	if seed != 0 {
		cfg.Seed = seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func runProblem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	sched := evo.NewManualScheduler()
	session, err := problems.NewRegistry().New(args[0], cfg, sched)
	if err != nil {
		return err
	}

	start := time.Now()
	session.Play()
	// Frames advance one at a time until the termination latch fires;
	// the cap guards against termination predicates that never trigger.
	for i := 0; i < 4*cfg.MaxGenerations+100 && session.Running(); i++ {
		sched.Advance(cfg.FrameDelay())
	}
	session.Pause()
	elapsed := time.Since(start)

	stats := session.Stats()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "problem\t%s\n", args[0])
	fmt.Fprintf(w, "generations\t%d\n", session.Generation())
	fmt.Fprintf(w, "population\t%d\n", cfg.PopulationSize)
	fmt.Fprintf(w, "seed\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "best\t%.2f\n", stats.Best)
	fmt.Fprintf(w, "mean\t%.2f\n", stats.Mean)
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed.Round(time.Millisecond))
	w.Flush()

	if history := session.History(); len(history) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("best fitness per generation"),
		))
	}

	fmt.Println()
	fmt.Print(session.BestView(80))
	return nil
}
