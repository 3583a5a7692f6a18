package cmd

import (
	"github.com/hlecates/artifact-ijcar26-luna/internal/config"
	"github.com/hlecates/artifact-ijcar26-luna/internal/exact"
	"github.com/spf13/cobra"
)

var (
	flagExactInput  string
	flagExactOutput string
)

func newExactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Join both tools' instance CSVs into per-benchmark comparison files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			outputDir := flagExactInput
			if outputDir == "" {
				outputDir = cfg.Output.Dir
			}
			exactDir := flagExactOutput
			if exactDir == "" {
				exactDir = cfg.Output.ExactDir
			}
			return exact.Join(outputDir, exactDir)
		},
	}
	cmd.Flags().StringVar(&flagExactInput, "output", "", "directory holding the compile stage's CSVs (default from config, ./output)")
	cmd.Flags().StringVar(&flagExactOutput, "results", "", "directory for per-benchmark CSVs (default from config, ./exact_results)")
	return cmd
}
