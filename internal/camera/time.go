package camera

import (
	"fmt"
	"time"
)

// DeviceTimeFormat is the wire format for get/setCurrentTime.
const DeviceTimeFormat = "2006-01-02 15:04:05"

// CurrentTime reads the device clock. The reply is the device's own
// "result=..." text, returned verbatim.
func (c *Client) CurrentTime() (string, error) {
	return c.get("/cgi-bin/global.cgi", map[string]string{
		"action": "getCurrentTime",
	})
}

// SetSystemTime pushes an explicit instant to the device clock.
func (c *Client) SetSystemTime(t time.Time) error {
	_, err := c.get("/cgi-bin/global.cgi", map[string]string{
		"action": "setCurrentTime",
		"time":   t.Format(DeviceTimeFormat),
	})
	return err
}

// ValidateTimeString checks an operator-supplied instant before any device
// call is made.
func ValidateTimeString(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DeviceTimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (use YYYY-MM-DD HH:MM:SS)", s)
	}
	return t, nil
}
