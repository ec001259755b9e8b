package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/discovery"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/frigate"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

// buildRegistry runs the discovery pipeline: fetch both Frigate config
// documents, resolve credentials, build the filtered registry. Either
// document being unavailable is tolerated; the other still contributes.
func buildRegistry(opts config.Options) (discovery.Registry, error) {
	nvr := frigate.New(opts.FrigateURL, opts.Timeout, opts.Insecure)

	agg, err := nvr.FetchAggregate()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	raw, err := nvr.FetchRaw()
	if err != nil {
		log.Printf("warning: could not fetch raw config (credentials may be masked): %v", err)
	}

	override := models.Credentials{Username: opts.DefaultUser, Password: opts.DefaultPass}
	return discovery.Build(agg, raw, override, opts.Include)
}

// mustRegistry exits the process when discovery yields nothing to act on.
func mustRegistry(opts config.Options) discovery.Registry {
	if opts.FrigateURL == "" {
		fmt.Println("Error: --frigate-url is required (flag, AMCREST_FRIGATE_URL, or config file).")
		os.Exit(1)
	}

	reg, err := buildRegistry(opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return reg
}

func credentialNote(rec models.CameraRecord) string {
	if rec.HasCredentials() {
		return fmt.Sprintf("user '%s'", rec.Credentials.Username)
	}
	return "none"
}
