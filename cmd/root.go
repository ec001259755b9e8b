package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "amcrest-manager",
	Short: "Bulk-configure Amcrest/Dahua cameras discovered from Frigate",
	Long: `Discovers camera hosts and credentials from a Frigate NVR's configuration
API and applies NTP and timestamp overlay settings to each camera over its
CGI interface.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.amcrest-manager.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	rootCmd.PersistentFlags().String("frigate-url", "", "Frigate base URL (e.g. http://10.0.1.66:5000)")
	rootCmd.PersistentFlags().String("default-user", "", "Fallback username for cameras without discovered credentials")
	rootCmd.PersistentFlags().String("default-pass", "", "Fallback password for cameras without discovered credentials")
	rootCmd.PersistentFlags().StringSlice("include", nil, "Only process cameras whose name or host contains one of these strings")
	rootCmd.PersistentFlags().Int("timeout", 10, "Request timeout in seconds")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification for Frigate")

	for _, key := range []string{"frigate-url", "default-user", "default-pass", "include", "timeout", "insecure"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}
