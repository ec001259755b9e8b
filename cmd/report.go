package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/camera"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/runner"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

func newRunner(opts config.Options) *runner.Runner {
	return &runner.Runner{
		NewDevice: func(host string, creds models.Credentials) runner.Device {
			return camera.New(host, creds, opts.Timeout)
		},
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// printReport writes the per-camera results and the summary line, then exits
// non-zero when any camera failed.
func printReport(rep runner.Report) {
	if jsonOutput {
		printJSON(rep)
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "HOST\tRESULT\tDETAIL")
		fmt.Fprintln(w, "----\t------\t------")
		for _, res := range rep.Results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", res.Host, resultLabel(res), res.Message)
		}
		w.Flush()

		s := rep.Summary
		fmt.Printf("\n%d camera(s): %d ok, %d failed, %d skipped\n",
			s.Total(), s.Succeeded, s.Failed, s.Skipped)
	}

	if rep.Failed() {
		os.Exit(1)
	}
}

func resultLabel(res models.OperationResult) string {
	switch {
	case res.Skipped:
		return "SKIP"
	case res.Success:
		return "OK"
	default:
		return "FAIL"
	}
}

func printRecords(records []models.CameraRecord) {
	if jsonOutput {
		printJSON(records)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HOST\tCREDENTIALS\tSOURCE\tCAMERAS")
	fmt.Fprintln(w, "----\t-----------\t------\t-------")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			rec.Host,
			credentialNote(rec),
			rec.Source,
			strings.Join(rec.CameraNames, ", "),
		)
	}
	w.Flush()
}
