// Package main provides the CLI entry point for courserank.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/asp28gar-eng/Dataworkflow/internal/config"
	"github.com/asp28gar-eng/Dataworkflow/pkg/courserank"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputDir  string
	sheet      string
	columns    string
	headerRow  int
	dataRow    int
	summary    bool
	workbook   bool
	strict     bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "courserank [input.xlsx]",
		Short: "Rank courses by their average survey ranking",
		Long: `courserank reads a survey extract, averages the rank each course received
(1 = best) and writes a sorted text report and a horizontal bar chart.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", defaults.OutputDir, "Directory for the report and chart")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	rootCmd.Flags().StringVar(&columns, "columns", defaults.Layout.Columns, "Course columns, e.g. L:S")
	rootCmd.Flags().IntVar(&headerRow, "header-row", defaults.Layout.HeaderRow, "Zero-based row holding the course questions")
	rootCmd.Flags().IntVar(&dataRow, "data-row", defaults.Layout.DataRow, "Zero-based row of the first response")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Also write per-course statistics as JSON")
	rootCmd.Flags().BoolVar(&workbook, "workbook", false, "Also write the rankings and a chart as xlsx")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the input file is missing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress details")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, args)

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := courserank.Run(cfg.Input, opts)
	if errors.Is(err, courserank.ErrFileNotFound) {
		fmt.Fprintf(out, "Error: File '%s' not found.\n", cfg.Input)
		if cfg.Strict {
			return err
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	for _, a := range result.Artifacts {
		fmt.Fprintf(out, "%s saved to %s\n", a.Kind, a.Path)
	}
	return nil
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}
	if flags.Changed("columns") {
		cfg.Layout.Columns = columns
	}
	if flags.Changed("header-row") {
		cfg.Layout.HeaderRow = headerRow
	}
	if flags.Changed("data-row") {
		cfg.Layout.DataRow = dataRow
	}
	if flags.Changed("summary") {
		cfg.Summary = summary
	}
	if flags.Changed("workbook") {
		cfg.Workbook = workbook
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
}
