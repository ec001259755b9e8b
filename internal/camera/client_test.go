package camera_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/camera"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

func testCreds() models.Credentials {
	return models.Credentials{Username: "admin", Password: "pw"}
}

// newTestClient points a camera client at an httptest server.
func newTestClient(t *testing.T, handler http.Handler) *camera.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return camera.New(strings.TrimPrefix(srv.URL, "http://"), testCreds(), 2*time.Second)
}

func TestCurrentTimeSendsBasicAuth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "pw", pass)
		assert.Equal(t, "/cgi-bin/global.cgi", r.URL.Path)
		assert.Equal(t, "getCurrentTime", r.URL.Query().Get("action"))
		fmt.Fprint(w, "result=2026-08-30 11:22:33\n")
	}))

	got, err := c.CurrentTime()
	require.NoError(t, err)
	assert.Equal(t, "result=2026-08-30 11:22:33", got)
}

func TestUnauthorizedMapsToAuthRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.CurrentTime()
	assert.ErrorIs(t, err, camera.ErrAuthRejected)
}

func TestDeviceErrorCarriesRawResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "Error: unsupported parameter Local.TimeFormat")
	}))

	err := c.SetTimeFormat12h(true)
	require.ErrorIs(t, err, camera.ErrUnsupported)
	assert.Contains(t, err.Error(), "unsupported parameter Local.TimeFormat")
}

func TestNetworkFailureIsNotAuthRejected(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(srv.URL, "http://")
	srv.Close() // connection refused from here on

	c := camera.New(host, testCreds(), 500*time.Millisecond)
	_, err := c.CurrentTime()
	require.Error(t, err)
	assert.NotErrorIs(t, err, camera.ErrAuthRejected)
	assert.NotErrorIs(t, err, camera.ErrUnsupported)
}

func TestTimestampStatusDecoding(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("name") {
		case "VideoWidget":
			fmt.Fprint(w, strings.Join([]string{
				"table.VideoWidget[0].TimeTitle.EncodeBlend=true",
				"table.VideoWidget[0].TimeTitle.PreviewBlend=true",
				"table.VideoWidget[0].TimeTitle.ShowWeek=true",
				"table.VideoWidget[0].TimeTitle.Rect[0]=2708",
				"table.VideoWidget[0].TimeTitle.Rect[1]=233",
			}, "\n"))
		case "Local":
			fmt.Fprint(w, "table.Local.TimeFormat=12Hour\n")
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))

	st, err := c.TimestampStatus()
	require.NoError(t, err)
	assert.True(t, st.Enabled)
	assert.True(t, st.DayOfWeek)
	assert.True(t, st.Format12h)
	assert.Equal(t, models.PositionTopRight, st.Position)
	assert.Equal(t, "top-right", st.PositionLabel())
}

func TestSetTimestampPositionSendsRectangle(t *testing.T) {
	var q map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		fmt.Fprint(w, "OK")
	}))

	require.NoError(t, c.SetTimestampPosition(models.PositionTopRight))
	assert.Equal(t, "setConfig", q["action"][0])
	assert.Equal(t, "2708", q["VideoWidget[0].TimeTitle.Rect[0]"][0])
	assert.Equal(t, "233", q["VideoWidget[0].TimeTitle.Rect[1]"][0])
	assert.Equal(t, "87", q["VideoWidget[0].TimeTitle.Rect[2]"][0])
	assert.Equal(t, "671", q["VideoWidget[0].TimeTitle.Rect[3]"][0])
}

func TestSetTimestampPositionRejectsUnknownCorner(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	err := c.SetTimestampPosition("center")
	require.Error(t, err)
	assert.False(t, called, "invalid position must not reach the device")
}

func TestSetNTPConfigParameters(t *testing.T) {
	var q map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		fmt.Fprint(w, "OK")
	}))

	err := c.SetNTPConfig(camera.NTPConfig{
		Server:       "pool.ntp.org",
		Port:         123,
		Enable:       true,
		UpdatePeriod: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "pool.ntp.org", q["NTP.Address"][0])
	assert.Equal(t, "123", q["NTP.Port"][0])
	assert.Equal(t, "true", q["NTP.Enable"][0])
	assert.Equal(t, "60", q["NTP.UpdatePeriod"][0])
}

func TestValidateTimeString(t *testing.T) {
	got, err := camera.ValidateTimeString("2026-08-30 12:00:00")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())

	_, err = camera.ValidateTimeString("30/08/2026 noon")
	assert.Error(t, err)
}

func TestValidateNTPServer(t *testing.T) {
	assert.NoError(t, camera.ValidateNTPServer("pool.ntp.org"))
	assert.Error(t, camera.ValidateNTPServer(""))
	assert.Error(t, camera.ValidateNTPServer(strings.Repeat("a", 300)))
}
