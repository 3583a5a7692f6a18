package cmd

import (
	"fmt"

	"github.com/hlecates/artifact-ijcar26-luna/internal/collect"
	"github.com/hlecates/artifact-ijcar26-luna/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <results_dir>",
		Short: "List benchmarks and job counts under a results directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			infos, err := collect.Benchmarks(args[0], cfg.Layout)
			if err != nil {
				return err
			}
			fmt.Println("Benchmarks:")
			for _, info := range infos {
				fmt.Printf("  - %s (%d jobs)\n", info.Name, info.Jobs)
			}
			return nil
		},
	}
}
