// Package camera talks to a single Amcrest/Dahua device over its CGI
// parameter API. Every call authenticates with HTTP basic auth and
// distinguishes three outcomes: success, rejected credentials, and
// transport failure. The client never retries internally.
package camera

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/pkg/models"
)

// ErrAuthRejected means the device refused the credentials. Callers must not
// retry the same pair.
var ErrAuthRejected = errors.New("camera rejected credentials")

// ErrUnsupported means the device answered with a client or server error,
// usually an unsupported parameter. The raw response is attached for
// diagnosis.
var ErrUnsupported = errors.New("camera rejected request")

type Client struct {
	HTTP *resty.Client
	Host string
}

// New binds a client to one camera. The device is only contacted when an
// operation is invoked.
func New(host string, creds models.Credentials, timeout time.Duration) *Client {
	r := resty.New()
	r.SetBaseURL("http://" + host)
	r.SetTimeout(timeout)
	r.SetBasicAuth(creds.Username, creds.Password)
	r.SetHeader("User-Agent", "Amcrest-Manager/1.0")

	return &Client{HTTP: r, Host: host}
}

// get issues one CGI call and normalizes the outcome. Device replies are
// plain text (key=value lines or "OK").
func (c *Client) get(path string, params map[string]string) (string, error) {
	resp, err := c.HTTP.R().
		SetQueryParams(params).
		Get(path)

	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Host, err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return "", fmt.Errorf("%s: %w", c.Host, ErrAuthRejected)
	case resp.IsError():
		return "", fmt.Errorf("%s: %w: %s", c.Host, ErrUnsupported, strings.TrimSpace(resp.String()))
	}

	return strings.TrimSpace(resp.String()), nil
}

// parseKV splits a device config reply into key/value pairs. Keys keep their
// "table." prefix exactly as the device reports them.
func parseKV(body string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

func boolParam(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
