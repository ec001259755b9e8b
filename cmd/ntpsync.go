package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/camera"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/runner"
)

// Variables to hold flag values
var (
	ntpServer       string
	ntpPort         int
	ntpEnable       bool
	ntpUpdatePeriod int
	ntpSetNow       bool
	ntpSetTime      string
	ntpDryRun       bool
)

var ntpSyncCmd = &cobra.Command{
	Use:   "ntp-sync",
	Short: "Configure NTP settings and sync camera clocks",
	Example: `  amcrest-manager --frigate-url http://10.0.1.66:5000 ntp-sync --ntp-server pool.ntp.org --ntp-enable --set-now
  amcrest-manager --frigate-url http://10.0.1.66:5000 ntp-sync --set-time "2026-08-30 12:00:00" --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		req := runner.Request{Kind: runner.KindNTPSync, DryRun: ntpDryRun}

		if ntpServer != "" {
			if err := camera.ValidateNTPServer(ntpServer); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			req.NTP.Config = &camera.NTPConfig{
				Server:       ntpServer,
				Port:         ntpPort,
				Enable:       ntpEnable,
				UpdatePeriod: ntpUpdatePeriod,
			}
		}

		switch {
		case ntpSetNow:
			req.NTP.SetNow = true
		case ntpSetTime != "":
			t, err := camera.ValidateTimeString(ntpSetTime)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			req.NTP.SetTime = &t
		}

		opts := config.FromViper()
		reg := mustRegistry(opts)

		rep := newRunner(opts).Run(reg.Records, req)
		printReport(rep)
	},
}

func init() {
	rootCmd.AddCommand(ntpSyncCmd)

	ntpSyncCmd.Flags().StringVar(&ntpServer, "ntp-server", "", "NTP server address")
	ntpSyncCmd.Flags().IntVar(&ntpPort, "ntp-port", 123, "NTP server port")
	ntpSyncCmd.Flags().BoolVar(&ntpEnable, "ntp-enable", false, "Enable NTP synchronization")
	ntpSyncCmd.Flags().IntVar(&ntpUpdatePeriod, "ntp-update-period", 60, "NTP update period in minutes")
	ntpSyncCmd.Flags().BoolVar(&ntpSetNow, "set-now", false, "Set camera clocks to the local system time")
	ntpSyncCmd.Flags().StringVar(&ntpSetTime, "set-time", "", "Set a specific time (YYYY-MM-DD HH:MM:SS)")
	ntpSyncCmd.Flags().BoolVar(&ntpDryRun, "dry-run", false, "Show what would be done without making changes")
}
