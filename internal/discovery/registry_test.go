package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/discovery"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/frigate"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

func TestSharedHostMergesIntoOneRecord(t *testing.T) {
	agg := aggWith(map[string]string{
		"front_door_high": "rtsp://admin:pw@10.0.1.10:554/cam/realmonitor?channel=1&subtype=0",
		"front_door_low":  "rtsp://admin:pw@10.0.1.10:554/cam/realmonitor?channel=1&subtype=1",
		"backyard":        "rtsp://admin:pw@10.0.1.11:554/stream",
	})

	reg, err := discovery.Build(agg, "", models.Credentials{}, nil)
	require.NoError(t, err)
	require.Len(t, reg.Records, 2)

	// Records are sorted by host.
	assert.Equal(t, "10.0.1.10", reg.Records[0].Host)
	assert.Equal(t, []string{"front_door_high", "front_door_low"}, reg.Records[0].CameraNames)
	assert.Equal(t, "10.0.1.11", reg.Records[1].Host)
	assert.Equal(t, []string{"backyard"}, reg.Records[1].CameraNames)
}

func TestIncludeFilterMatchesNameOrHost(t *testing.T) {
	agg := aggWith(map[string]string{
		"front_door": "rtsp://admin:pw@10.0.1.10:554/stream",
		"backyard":   "rtsp://admin:pw@10.0.1.11:554/stream",
	})

	// Case-insensitive substring on the camera name.
	reg, err := discovery.Build(agg, "", models.Credentials{}, []string{"FRONT"})
	require.NoError(t, err)
	require.Len(t, reg.Records, 1)
	assert.Equal(t, "10.0.1.10", reg.Records[0].Host)

	// Substring on the host also matches.
	reg, err = discovery.Build(agg, "", models.Credentials{}, []string{"1.11"})
	require.NoError(t, err)
	require.Len(t, reg.Records, 1)
	assert.Equal(t, "10.0.1.11", reg.Records[0].Host)

	// Empty filter set retains everything.
	reg, err = discovery.Build(agg, "", models.Credentials{}, nil)
	require.NoError(t, err)
	assert.Len(t, reg.Records, 2)

	// Blank filter strings count as no filter.
	reg, err = discovery.Build(agg, "", models.Credentials{}, []string{""})
	require.NoError(t, err)
	assert.Len(t, reg.Records, 2)
}

func TestFilteredToNothingReportsNoCameras(t *testing.T) {
	agg := aggWith(map[string]string{
		"backyard": "rtsp://admin:pw@10.0.1.11:554/stream",
	})

	_, err := discovery.Build(agg, "", models.Credentials{}, []string{"doorbell"})
	assert.ErrorIs(t, err, discovery.ErrNoCameras)
}

func TestNilAggregateYieldsNoCameras(t *testing.T) {
	_, err := discovery.Build(nil, "rtsp://admin:pw@10.0.1.11:554/stream", models.Credentials{}, nil)
	assert.ErrorIs(t, err, discovery.ErrNoCameras)
}

func TestHostWithoutCredentialsIsKept(t *testing.T) {
	agg := aggWith(map[string]string{
		"lobby": "rtsp://*:*@10.0.1.40:554/stream",
	})

	reg, err := discovery.Build(agg, "", models.Credentials{}, nil)
	require.NoError(t, err)
	require.Len(t, reg.Records, 1)

	rec := reg.Records[0]
	assert.False(t, rec.HasCredentials())
	assert.Equal(t, models.SourceNone, rec.Source)
}

func TestNonRTSPInputsAreIgnored(t *testing.T) {
	cfg := &frigate.AggregateConfig{Cameras: map[string]frigate.CameraConfig{
		"clip": {FFmpeg: frigate.FFmpegConfig{Inputs: []frigate.StreamInput{
			{Path: "/media/archive/clip.mp4"},
		}}},
	}}

	_, err := discovery.Build(cfg, "", models.Credentials{}, nil)
	assert.ErrorIs(t, err, discovery.ErrNoCameras)
}
