package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/lapsim/internal/analysis"
	"github.com/san-kum/lapsim/internal/config"
	"github.com/san-kum/lapsim/internal/sim"
	"github.com/san-kum/lapsim/internal/storage"
	"github.com/san-kum/lapsim/internal/sweep"
)

var (
	dataDir    string
	dt         float64
	configFile string
	preset     string
	runName    string
	sweepParam string
	workers    int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lapsim",
		Short: "vehicle dynamics lap time simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lapsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a single lap",
		RunE:  runLap,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().StringVar(&runName, "name", "lap", "run name for storage")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a parameter sweep",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "swept vehicle parameter")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = CPUs)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot speed trace of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file and flag overrides, in that order
// of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("param") {
		cfg.Sweep.Param = sweepParam
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sweep.Workers = workers
	}
	return cfg, nil
}

func newLogger() *zap.Logger {
	if verbose {
		l, _ := zap.NewDevelopment()
		return l
	}
	l, _ := zap.NewProduction()
	return l
}

func runLap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := cfg.BuildTrack()
	if err != nil {
		return err
	}

	s, err := sim.New(cfg.Vehicle, tr, sim.WithDt(cfg.Dt))
	if err != nil {
		return err
	}

	printVehicleSetup(cfg)

	result, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	for i, v := range result.ExitSpeeds {
		fmt.Printf("segment %d exit speed: %.1f km/h\n", i+1, v*3.6)
	}

	summary := analysis.Summarize(result.Telemetry.Points())
	fmt.Printf("\nlap time: %.3f s\n", result.LapTime)
	fmt.Printf("max speed: %.1f km/h\n", summary.MaxSpeed*3.6)
	fmt.Printf("max acceleration: %.2f g\n", summary.MaxAccelG)
	fmt.Printf("max braking: %.2f g\n", summary.MaxBrakingG)
	fmt.Printf("tire temp: %.0f-%.0f C\n", summary.MinTireTemp, summary.MaxTireTemp)
	fmt.Printf("telemetry points: %d\n", result.Telemetry.Len())

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(runName, cfg.Vehicle, cfg.Dt, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := cfg.BuildTrack()
	if err != nil {
		return err
	}

	values, err := cfg.Sweep.Expand()
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	runner := sweep.New(cfg.Vehicle, tr, cfg.Sweep.Param,
		sweep.WithDt(cfg.Dt),
		sweep.WithWorkers(cfg.Sweep.Workers),
		sweep.WithLogger(logger),
	)

	results, err := runner.Run(context.Background(), values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tlap time (s)\t\n", cfg.Sweep.Param)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%.3f\tfailed: %v\t\n", r.Param, r.Err)
			continue
		}
		fmt.Fprintf(w, "%.3f\t%.3f\t\n", r.Param, r.LapTime)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tlap time (s)\tmax speed (km/h)\ttimestamp\t")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%.3f\t%.1f\t%s\t\n",
			run.ID, run.LapTime, run.Summary.MaxSpeed*3.6,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, err := st.LoadTelemetry(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no telemetry in run: %s", args[0])
	}

	speeds := make([]float64, len(states))
	for i, s := range states {
		speeds[i] = s.Velocity * 3.6
	}

	graph := asciigraph.Plot(speeds,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("speed (km/h)"))
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func printVehicleSetup(cfg *config.Config) {
	v := cfg.Vehicle
	fmt.Println("=== Vehicle Setup ===")
	fmt.Printf("Mass: %.0f kg\n", v.Mass)
	fmt.Printf("Max Power: %.0f kW\n", v.MaxPower/1000)
	fmt.Printf("Drag Coefficient: %.2f\n", v.DragCoeff)
	fmt.Printf("Downforce Coefficient: %.2f\n", v.DownforceCoeff)
	fmt.Printf("Tire Grip: %.2f\n", v.TireGripCoeff)
	fmt.Println("=====================")
}
