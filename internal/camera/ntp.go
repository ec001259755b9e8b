package camera

import (
	"fmt"
	"strconv"
)

// NTPConfig is the device NTP parameter block.
type NTPConfig struct {
	Server       string
	Port         int
	Enable       bool
	UpdatePeriod int // minutes
}

// ValidateNTPServer rejects obviously unusable server values before a
// device call is made.
func ValidateNTPServer(server string) error {
	if server == "" || len(server) > 255 {
		return fmt.Errorf("invalid NTP server %q", server)
	}
	return nil
}

// NTPConfigRaw reads the device's NTP parameter block as key=value text.
func (c *Client) NTPConfigRaw() (string, error) {
	return c.get("/cgi-bin/configManager.cgi", map[string]string{
		"action": "getConfig",
		"name":   "NTP",
	})
}

// SetNTPConfig writes the full NTP parameter block in one call.
func (c *Client) SetNTPConfig(cfg NTPConfig) error {
	_, err := c.get("/cgi-bin/configManager.cgi", map[string]string{
		"action":           "setConfig",
		"NTP.Address":      cfg.Server,
		"NTP.Port":         strconv.Itoa(cfg.Port),
		"NTP.Enable":       boolParam(cfg.Enable),
		"NTP.UpdatePeriod": strconv.Itoa(cfg.UpdatePeriod),
	})
	return err
}
