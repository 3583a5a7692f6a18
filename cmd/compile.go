package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hlecates/artifact-ijcar26-luna/internal/collect"
	"github.com/hlecates/artifact-ijcar26-luna/internal/config"
	"github.com/hlecates/artifact-ijcar26-luna/internal/report"
	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
	"github.com/spf13/cobra"
)

var flagOutput string

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <luna_results_dir> <abcrown_results_dir>",
		Short: "Parse both tools' job logs and write per-instance and aggregate CSVs",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompile,
	}
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory for CSVs (default from config, ./output)")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	outputDir := flagOutput
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	fmt.Println("Collecting ABCrown results...")
	abcrown := collect.Tool(result.ToolABCrown, args[1], cfg.Layout)
	fmt.Printf("Found %d total ABCrown instances\n", len(abcrown))

	fmt.Println("\nCollecting Luna results...")
	luna := collect.Tool(result.ToolLuna, args[0], cfg.Layout)
	fmt.Printf("Found %d total Luna instances\n", len(luna))

	fmt.Println("\nFiltering to common instances...")
	abcrown, luna = result.FilterCommon(abcrown, luna)

	boundsKeys := result.CommonBoundsKeys(abcrown, luna)
	finishedKeys := result.CommonFinishedKeys(abcrown, luna)
	fmt.Printf("Common instances (both tools have bounds): %d\n", len(boundsKeys))

	for _, tool := range []struct {
		name    result.Tool
		records []result.Record
	}{
		{result.ToolABCrown, abcrown},
		{result.ToolLuna, luna},
	} {
		if len(tool.records) == 0 {
			fmt.Printf("No results found for %s\n", tool.name)
			continue
		}

		instancePath := filepath.Join(outputDir, string(tool.name)+"_instances.csv")
		if err := result.WriteInstanceCSV(tool.records, instancePath); err != nil {
			return err
		}
		fmt.Printf("Wrote %d instances to %s\n", len(tool.records), instancePath)

		rows := report.Aggregate(tool.records, boundsKeys, finishedKeys)
		aggregatePath := filepath.Join(outputDir, string(tool.name)+"_aggregated.csv")
		if err := report.WriteAggregateCSV(rows, aggregatePath); err != nil {
			return err
		}
		fmt.Printf("Wrote %d benchmark aggregates to %s\n", len(rows), aggregatePath)

		if err := report.WriteSummary(tool.name, rows, os.Stdout); err != nil {
			return err
		}
	}

	fmt.Printf("\nDone! CSVs written to %s\n", outputDir)
	return nil
}
