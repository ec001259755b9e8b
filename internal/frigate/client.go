package frigate

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUnavailable wraps any failure to reach a config endpoint. Callers treat
// an unavailable source as absent and continue with whatever else resolved.
var ErrUnavailable = errors.New("config source unavailable")

// AggregateConfig is the sanitized configuration document served by
// GET /api/config. Credentials inside stream URLs are typically masked.
type AggregateConfig struct {
	Cameras map[string]CameraConfig `json:"cameras"`
}

// CameraConfig is one logical camera entry in the aggregate document.
type CameraConfig struct {
	FFmpeg FFmpegConfig `json:"ffmpeg"`
}

// FFmpegConfig carries the stream inputs declared for a camera.
type FFmpegConfig struct {
	Inputs []StreamInput `json:"inputs"`
}

// StreamInput is a single ffmpeg input; Path is usually an rtsp:// URL with
// connection-string-style credentials.
type StreamInput struct {
	Path string `json:"path"`
}

type Client struct {
	HTTP *resty.Client
}

// New builds a client for one Frigate instance. Insecure skips TLS
// certificate verification, which is common for LAN NVRs with
// self-signed certs.
func New(baseURL string, timeout time.Duration, insecure bool) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetTimeout(timeout)
	r.SetHeader("User-Agent", "Amcrest-Manager/1.0")

	if insecure {
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{HTTP: r}
}

// FetchAggregate retrieves the sanitized JSON configuration. Failure is
// reported as ErrUnavailable; it never aborts fetching the raw document.
func (c *Client) FetchAggregate() (*AggregateConfig, error) {
	var cfg AggregateConfig

	resp, err := c.HTTP.R().
		SetResult(&cfg).
		Get("/api/config")

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: GET /api/config returned %s", ErrUnavailable, resp.Status())
	}

	return &cfg, nil
}

// FetchRaw retrieves the raw YAML configuration with unmasked credentials.
// The document is returned as text; the discovery package extracts
// credentials from it.
func (c *Client) FetchRaw() (string, error) {
	resp, err := c.HTTP.R().Get("/api/config/raw")

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: GET /api/config/raw returned %s", ErrUnavailable, resp.Status())
	}

	return resp.String(), nil
}
