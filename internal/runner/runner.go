// Package runner drives one bulk operation across the discovered registry.
// Cameras are processed sequentially; every camera gets exactly one tagged
// result (success, skip, or fail) and no camera's failure stops the rest.
package runner

import (
	"fmt"
	"strings"
	"time"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/camera"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

// Device is the per-camera operation surface the runner drives. It is
// implemented by *camera.Client and faked in tests.
type Device interface {
	CurrentTime() (string, error)
	SetSystemTime(t time.Time) error
	NTPConfigRaw() (string, error)
	SetNTPConfig(cfg camera.NTPConfig) error
	TimestampStatus() (camera.OverlayStatus, error)
	EnableTimestamp(on bool) error
	SetTimestampPosition(p models.Position) error
	EnableDayOfWeek(on bool) error
	SetTimeFormat12h(on bool) error
}

// Kind selects which operation the run performs.
type Kind string

const (
	KindStatus    Kind = "status"
	KindNTPSync   Kind = "ntp-sync"
	KindTimestamp Kind = "timestamp-config"
)

// NTPRequest is the ntp-sync parameter set. A nil Config leaves the NTP
// block untouched; SetNow and SetTime are mutually exclusive.
type NTPRequest struct {
	Config  *camera.NTPConfig
	SetNow  bool
	SetTime *time.Time
}

// OverlayRequest is the timestamp-config parameter set.
type OverlayRequest struct {
	Position  models.Position
	DayOfWeek bool
	Format12h bool
}

// Request describes one bulk invocation.
type Request struct {
	Kind    Kind
	DryRun  bool
	NTP     NTPRequest
	Overlay OverlayRequest
}

// Report is the aggregated outcome of one run.
type Report struct {
	Results []models.OperationResult
	Summary models.RunSummary
}

// Failed reports whether any camera ended in failure.
func (r Report) Failed() bool {
	return r.Summary.Failed > 0
}

// Runner executes a Request against every record in the registry.
type Runner struct {
	// NewDevice binds a device client to one host. Injected so tests can
	// substitute fakes.
	NewDevice func(host string, creds models.Credentials) Device

	// Now supplies the clock for --set-now; defaults to time.Now.
	Now func() time.Time
}

// Run processes the records in order. Cameras without credentials are
// skipped without being contacted; dry-run requests may still issue
// read-only calls to populate the report.
func (r *Runner) Run(records []models.CameraRecord, req Request) Report {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	var rep Report
	for _, rec := range records {
		res := models.OperationResult{Host: rec.Host}

		if !rec.HasCredentials() {
			res.Skipped = true
			res.Message = "skipped: no credentials"
		} else {
			dev := r.NewDevice(rec.Host, rec.Credentials)
			switch req.Kind {
			case KindNTPSync:
				res = runNTPSync(dev, rec.Host, req, now)
			case KindTimestamp:
				res = runTimestamp(dev, rec.Host, req)
			default:
				res = runStatus(dev, rec.Host)
			}
		}

		rep.Results = append(rep.Results, res)
		rep.Summary.Add(res)
	}
	return rep
}

func runNTPSync(dev Device, host string, req Request, now func() time.Time) models.OperationResult {
	res := models.OperationResult{Host: host}
	var notes []string

	// Reading the clock is allowed even in dry-run mode.
	if t, err := dev.CurrentTime(); err == nil {
		notes = append(notes, "device time "+t)
	}

	if req.DryRun {
		res.Skipped = true
		res.Message = strings.Join(append(notes, dryRunNTPNotes(req.NTP)...), "; ")
		return res
	}

	if cfg := req.NTP.Config; cfg != nil {
		if err := dev.SetNTPConfig(*cfg); err != nil {
			res.Message = err.Error()
			return res
		}
		notes = append(notes, fmt.Sprintf("NTP set to %s:%d enabled=%v period=%dm",
			cfg.Server, cfg.Port, cfg.Enable, cfg.UpdatePeriod))
	}

	switch {
	case req.NTP.SetNow:
		if err := dev.SetSystemTime(now()); err != nil {
			res.Message = err.Error()
			return res
		}
		notes = append(notes, "clock set to local time")
		if t, err := dev.CurrentTime(); err == nil {
			notes = append(notes, "device now reports "+t)
		}
	case req.NTP.SetTime != nil:
		if err := dev.SetSystemTime(*req.NTP.SetTime); err != nil {
			res.Message = err.Error()
			return res
		}
		notes = append(notes, "clock set to "+req.NTP.SetTime.Format(camera.DeviceTimeFormat))
	}

	res.Success = true
	if len(notes) == 0 {
		notes = append(notes, "nothing to do")
	}
	res.Message = strings.Join(notes, "; ")
	return res
}

func dryRunNTPNotes(ntp NTPRequest) []string {
	var notes []string
	if cfg := ntp.Config; cfg != nil {
		notes = append(notes, fmt.Sprintf("would set NTP to %s:%d enabled=%v period=%dm",
			cfg.Server, cfg.Port, cfg.Enable, cfg.UpdatePeriod))
	}
	switch {
	case ntp.SetNow:
		notes = append(notes, "would set clock to local time")
	case ntp.SetTime != nil:
		notes = append(notes, "would set clock to "+ntp.SetTime.Format(camera.DeviceTimeFormat))
	}
	if len(notes) == 0 {
		notes = append(notes, "nothing to do")
	}
	return notes
}

// runTimestamp reads the current overlay state first and only writes the
// settings that actually drift from the request, so re-runs are no-ops.
func runTimestamp(dev Device, host string, req Request) models.OperationResult {
	res := models.OperationResult{Host: host}

	st, err := dev.TimestampStatus()
	if err != nil {
		res.Message = err.Error()
		return res
	}

	type change struct {
		note  string
		apply func() error
	}
	var changes []change

	if !st.Enabled {
		changes = append(changes, change{"enable timestamp", func() error { return dev.EnableTimestamp(true) }})
	}
	if st.Position != req.Overlay.Position {
		p := req.Overlay.Position
		changes = append(changes, change{
			"move to " + models.PositionName(p),
			func() error { return dev.SetTimestampPosition(p) },
		})
	}
	if req.Overlay.DayOfWeek && !st.DayOfWeek {
		changes = append(changes, change{"enable day of week", func() error { return dev.EnableDayOfWeek(true) }})
	}
	if req.Overlay.Format12h && !st.Format12h {
		changes = append(changes, change{"switch to 12-hour format", func() error { return dev.SetTimeFormat12h(true) }})
	}

	if req.DryRun {
		res.Skipped = true
		if len(changes) == 0 {
			res.Message = "already configured"
			return res
		}
		var notes []string
		for _, ch := range changes {
			notes = append(notes, "would "+ch.note)
		}
		res.Message = strings.Join(notes, "; ")
		return res
	}

	var applied []string
	for _, ch := range changes {
		if err := ch.apply(); err != nil {
			res.Message = err.Error()
			return res
		}
		applied = append(applied, ch.note)
	}

	res.Success = true
	if len(applied) == 0 {
		res.Message = "already configured"
	} else {
		res.Message = strings.Join(applied, "; ")
	}
	return res
}

func runStatus(dev Device, host string) models.OperationResult {
	res := models.OperationResult{Host: host}
	var notes []string

	if t, err := dev.CurrentTime(); err == nil {
		notes = append(notes, "time "+t)
	} else {
		res.Message = err.Error()
		return res
	}

	if _, err := dev.NTPConfigRaw(); err == nil {
		notes = append(notes, "NTP config readable")
	}

	st, err := dev.TimestampStatus()
	if err != nil {
		res.Message = err.Error()
		return res
	}
	notes = append(notes, fmt.Sprintf("overlay enabled=%v position=%s dayOfWeek=%v format12h=%v",
		st.Enabled, st.PositionLabel(), st.DayOfWeek, st.Format12h))

	res.Success = true
	res.Message = strings.Join(notes, "; ")
	return res
}
