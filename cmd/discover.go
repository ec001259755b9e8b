package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover camera hosts from the Frigate configuration",
	Long: `Fetches the Frigate configuration, resolves per-host credentials, and
prints the deduplicated camera registry without contacting any camera.`,
	Example: `  amcrest-manager --frigate-url http://10.0.1.66:5000 discover
  amcrest-manager --frigate-url http://10.0.1.66:5000 discover --include front --json`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := config.FromViper()
		reg := mustRegistry(opts)

		if !jsonOutput {
			fmt.Printf("Discovered %d unique camera host(s):\n\n", len(reg.Records))
		}
		printRecords(reg.Records)
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
