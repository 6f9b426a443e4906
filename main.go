package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/adapter"
	"github.com/utkarshgarg7100/tcp-congestion-analyser/config"
	"github.com/utkarshgarg7100/tcp-congestion-analyser/logging"
	"github.com/utkarshgarg7100/tcp-congestion-analyser/usecase"
)

var cmd Cmd

// Cmd is the command line arguments.
type Cmd struct {
	// ConfigPath is the optional YAML configuration file.
	ConfigPath string
	// Input overrides the configured results file.
	Input string
	// OutputDir overrides the configured output directory.
	OutputDir string
}

var rootCmd = &cobra.Command{
	Use:   "tcpcc-analyser",
	Short: "Charts and summary tables for TCP congestion control simulation results",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runAnalysis(cmd)
	},
	SilenceUsage: true,
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print flow counts and per-variant throughput of the results file",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runOverview(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&cmd.Input, "input", "i", "", "Path to the simulation results CSV (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&cmd.OutputDir, "output-dir", "o", "", "Directory for charts and tables (overrides config)")
	rootCmd.AddCommand(overviewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd Cmd) (*config.Config, *zap.SugaredLogger, *usecase.VariantFilter, error) {
	cfg, err := config.LoadConfig(cmd.ConfigPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Input != "" {
		cfg.Input = cmd.Input
	}
	if cmd.OutputDir != "" {
		cfg.OutputDir = cmd.OutputDir
	}

	log, err := logging.Init(&cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}

	variants, err := usecase.NewVariantFilter(cfg.Variants)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, variants, nil
}

func runAnalysis(cmd Cmd) error {
	cfg, log, variants, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	size := adapter.ChartSize{
		Width:         vg.Length(cfg.Charts.WidthIn) * vg.Inch,
		Height:        vg.Length(cfg.Charts.HeightIn) * vg.Inch,
		ScatterWidth:  vg.Length(cfg.Charts.ScatterWidthIn) * vg.Inch,
		ScatterHeight: vg.Length(cfg.Charts.ScatterHeightIn) * vg.Inch,
		DPI:           cfg.Charts.DPI,
	}

	analyzer := usecase.NewAnalyzer(
		adapter.NewCsvFlowRepository(cfg.Input, cfg.MaxInputSize),
		adapter.NewPlotChartRepository(cfg.OutputDir, size),
		adapter.NewCsvSummaryRepository(filepath.Join(cfg.OutputDir, adapter.SummaryFileName)),
		adapter.NewCsvFairnessRepository(filepath.Join(cfg.OutputDir, adapter.FairnessFileName)),
		usecase.WithLog(log),
		usecase.WithVariantFilter(variants),
	)

	log.Infow("starting analysis", "input", cfg.Input, "output_dir", cfg.OutputDir)
	return analyzer.Run()
}

func runOverview(cmd Cmd) error {
	cfg, log, variants, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	overviewer := usecase.NewOverviewer(
		adapter.NewCsvFlowRepository(cfg.Input, cfg.MaxInputSize),
		[]usecase.OverviewRepository{
			adapter.NewTableOverviewRepository(os.Stdout),
			adapter.NewChartOverviewRepository(cfg.OutputDir),
		},
		usecase.WithLog(log),
		usecase.WithVariantFilter(variants),
	)

	_, err = overviewer.Run()
	return err
}
