package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/runner"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check time and overlay status of every discovered camera",
	Run: func(cmd *cobra.Command, args []string) {
		opts := config.FromViper()
		reg := mustRegistry(opts)

		rep := newRunner(opts).Run(reg.Records, runner.Request{Kind: runner.KindStatus})
		printReport(rep)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
