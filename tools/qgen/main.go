package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type buildConfig struct {
	Input  string
	OutDir string
	Check  bool
	Strict bool
}

func main() {
	root := &cobra.Command{
		Use:   "qgen",
		Short: "Build and curate typing-quiz question datasets",
	}
	root.AddCommand(newBuildCommand(), newAddCommand(), newImportCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newBuildCommand() *cobra.Command {
	var cfg buildConfig

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Validate, partition, and write the question dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, wrote, err := runBuild(cfg)
			printSummary(result, cfg.OutDir, wrote, err)
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.Input, "in", "questions_edit.tsv", "source TSV table")
	cmd.Flags().StringVar(&cfg.OutDir, "out", "out", "output directory")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "validate only without writing")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "fail when any row is rejected")

	return cmd
}

func runBuild(cfg buildConfig) (BuildResult, bool, error) {
	rows, err := readTSV(cfg.Input)
	if err != nil {
		return BuildResult{}, false, err
	}

	result := Build(NewValidator(), rows)

	if err := writeOutputs(cfg.OutDir, result, !cfg.Check); err != nil {
		return result, false, err
	}
	wrote := !cfg.Check

	if cfg.Strict && result.Report.Rejected > 0 {
		return result, wrote, fmt.Errorf("strict mode: %d rows rejected", result.Report.Rejected)
	}
	return result, wrote, nil
}

func printSummary(result BuildResult, outDir string, wrote bool, runErr error) {
	for _, line := range formatSummaryLines(result, outDir, wrote) {
		switch {
		case strings.HasPrefix(line, "🚫"):
			color.New(color.FgRed).Println(line)
		case strings.HasPrefix(line, "✨"):
			color.New(color.FgHiCyan).Println(line)
		default:
			color.New(color.FgWhite).Println(line)
		}
	}
	if runErr != nil {
		color.New(color.FgHiRed).Printf("error: %v\n", runErr)
	}
}
