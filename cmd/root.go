package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lunaresults",
		Short: "Compile Luna and AB-CROWN verification logs into comparison tables",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "lunaresults.yaml", "config file path")
	root.AddCommand(newCompileCmd())
	root.AddCommand(newExactCmd())
	root.AddCommand(newListCmd())
	return root
}
