package discovery

import (
	"errors"
	"sort"
	"strings"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/frigate"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

// ErrNoCameras is reported when discovery plus filtering leaves nothing to
// act on. Commands surface it and exit non-zero; it never aborts resolution
// itself.
var ErrNoCameras = errors.New("no cameras found")

// Registry is the deduplicated camera set for one run, ordered by host.
// It owns the records for the duration of the invocation only.
type Registry struct {
	Records []models.CameraRecord
}

// Build merges the aggregate document's declared cameras with credentials
// resolved from the raw document, the aggregate document, and the manual
// override, in that priority. Hosts without any credentials stay in the
// registry so status and discovery output can surface them.
//
// Either document may be absent: a nil aggregate yields an empty registry,
// an empty raw document just removes the highest-priority credential tier.
func Build(agg *frigate.AggregateConfig, rawDoc string, override models.Credentials, filters []string) (Registry, error) {
	byHost := make(map[string]*models.CameraRecord)
	var mainEndpoints []endpoint

	if agg != nil {
		for name, cam := range agg.Cameras {
			for _, in := range cam.FFmpeg.Inputs {
				ep, ok := parseStreamURL(in.Path)
				if !ok {
					continue
				}
				rec := byHost[ep.Host]
				if rec == nil {
					rec = &models.CameraRecord{Host: ep.Host, Source: models.SourceNone}
					byHost[ep.Host] = rec
				}
				rec.AddName(name)
				mainEndpoints = append(mainEndpoints, ep)
			}
		}
	}

	rawCreds := credentialsByHost(extractEndpoints(rawDoc))
	mainCreds := credentialsByHost(mainEndpoints)

	var reg Registry
	for _, rec := range byHost {
		rec.Credentials, rec.Source = resolve(rec.Host, rawCreds, mainCreds, override)
		if !matchesFilter(*rec, filters) {
			continue
		}
		reg.Records = append(reg.Records, *rec)
	}

	sort.Slice(reg.Records, func(i, j int) bool {
		return reg.Records[i].Host < reg.Records[j].Host
	})

	if len(reg.Records) == 0 {
		return reg, ErrNoCameras
	}
	return reg, nil
}

// matchesFilter applies the include-filter: case-insensitive substring match
// against the host or any camera name. An empty filter set retains everything.
func matchesFilter(rec models.CameraRecord, filters []string) bool {
	var needles []string
	for _, f := range filters {
		if f != "" {
			needles = append(needles, strings.ToLower(f))
		}
	}
	if len(needles) == 0 {
		return true
	}
	for _, needle := range needles {
		if strings.Contains(strings.ToLower(rec.Host), needle) {
			return true
		}
		for _, name := range rec.CameraNames {
			if strings.Contains(strings.ToLower(name), needle) {
				return true
			}
		}
	}
	return false
}
