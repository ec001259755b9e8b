package frigate_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/frigate"
)

func TestFetchAggregateDecodesCameras(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"cameras": {
				"front_door": {
					"ffmpeg": {"inputs": [{"path": "rtsp://*:*@10.0.1.145:554/cam/realmonitor"}]}
				}
			}
		}`)
	}))
	defer srv.Close()

	c := frigate.New(srv.URL, 2*time.Second, false)
	cfg, err := c.FetchAggregate()
	require.NoError(t, err)
	require.Contains(t, cfg.Cameras, "front_door")
	require.Len(t, cfg.Cameras["front_door"].FFmpeg.Inputs, 1)
	assert.Contains(t, cfg.Cameras["front_door"].FFmpeg.Inputs[0].Path, "10.0.1.145")
}

func TestFetchRawReturnsDocumentText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/raw", r.URL.Path)
		fmt.Fprint(w, "cameras:\n  front_door:\n    ffmpeg:\n      inputs:\n        - path: rtsp://admin:pw@10.0.1.145:554/s\n")
	}))
	defer srv.Close()

	c := frigate.New(srv.URL, 2*time.Second, false)
	raw, err := c.FetchRaw()
	require.NoError(t, err)
	assert.Contains(t, raw, "rtsp://admin:pw@10.0.1.145:554/s")
}

func TestEachSourceFailsIndependently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/config/raw" {
			// Raw endpoint is auth-protected on this instance.
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"cameras": {}}`)
	}))
	defer srv.Close()

	c := frigate.New(srv.URL, 2*time.Second, false)

	_, rawErr := c.FetchRaw()
	assert.ErrorIs(t, rawErr, frigate.ErrUnavailable)

	cfg, aggErr := c.FetchAggregate()
	require.NoError(t, aggErr)
	assert.NotNil(t, cfg)
}

func TestUnreachableServerReportsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := frigate.New(url, 500*time.Millisecond, false)
	_, err := c.FetchAggregate()
	assert.ErrorIs(t, err, frigate.ErrUnavailable)
}
