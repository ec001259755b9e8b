package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/runner"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

// Variables to hold flag values
var (
	tsPosition  string
	tsDayOfWeek bool
	tsFormat12h bool
	tsDryRun    bool
)

var timestampCmd = &cobra.Command{
	Use:   "timestamp-config",
	Short: "Configure the timestamp overlay on every discovered camera",
	Long: `Reads each camera's current overlay state and applies only the settings
that differ, so repeated runs make no redundant device calls.`,
	Example: `  amcrest-manager --frigate-url http://10.0.1.66:5000 timestamp-config --position tr --enable-day-week
  amcrest-manager --frigate-url http://10.0.1.66:5000 timestamp-config --format-12h --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		if !models.ValidPosition(tsPosition) {
			fmt.Printf("Error: invalid position %q (use tl, tr, bl, br)\n", tsPosition)
			os.Exit(1)
		}

		req := runner.Request{
			Kind:   runner.KindTimestamp,
			DryRun: tsDryRun,
			Overlay: runner.OverlayRequest{
				Position:  models.Position(tsPosition),
				DayOfWeek: tsDayOfWeek,
				Format12h: tsFormat12h,
			},
		}

		opts := config.FromViper()
		reg := mustRegistry(opts)

		rep := newRunner(opts).Run(reg.Records, req)
		printReport(rep)
	},
}

func init() {
	rootCmd.AddCommand(timestampCmd)

	timestampCmd.Flags().StringVar(&tsPosition, "position", "tl", "Timestamp position: tl, tr, bl, br")
	timestampCmd.Flags().BoolVar(&tsDayOfWeek, "enable-day-week", false, "Enable day of week display")
	timestampCmd.Flags().BoolVar(&tsFormat12h, "format-12h", false, "Set 12-hour time format")
	timestampCmd.Flags().BoolVar(&tsDryRun, "dry-run", false, "Show what would be done without making changes")
}
