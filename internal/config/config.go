package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Options is the immutable per-run configuration threaded into the Frigate
// fetcher, the camera clients, and the bulk runner. It is built once from
// flags/env/config file and never mutated afterwards.
type Options struct {
	FrigateURL  string
	DefaultUser string
	DefaultPass string
	Include     []string
	Timeout     time.Duration
	Insecure    bool
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".amcrest-manager" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".amcrest-manager")
	}

	viper.SetEnvPrefix("AMCREST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// Config loaded successfully
	}
}

// FromViper collapses the current viper state into an Options value.
func FromViper() Options {
	return Options{
		FrigateURL:  strings.TrimRight(viper.GetString("frigate-url"), "/"),
		DefaultUser: viper.GetString("default-user"),
		DefaultPass: viper.GetString("default-pass"),
		Include:     viper.GetStringSlice("include"),
		Timeout:     time.Duration(viper.GetInt("timeout")) * time.Second,
		Insecure:    viper.GetBool("insecure"),
	}
}
