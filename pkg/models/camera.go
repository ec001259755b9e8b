package models

import "sort"

// CredentialSource records where a camera's credentials were resolved from.
// It is informational only; resolution order is fixed in the discovery package.
type CredentialSource string

const (
	SourceRawConfig      CredentialSource = "raw_config"
	SourceMainConfig     CredentialSource = "main_config"
	SourceManualOverride CredentialSource = "manual_override"
	SourceNone           CredentialSource = "none"
)

// Credentials is a username/password pair passed through to the camera
// as HTTP basic auth. The password is never serialized.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// CameraRecord is one deduplicated camera host discovered from the NVR
// configuration, together with every logical camera name backed by it.
type CameraRecord struct {
	Host        string           `json:"host"`
	Credentials Credentials      `json:"credentials"`
	Source      CredentialSource `json:"credentialSource"`
	CameraNames []string         `json:"cameras"`
}

// HasCredentials reports whether both halves of the pair resolved.
func (r CameraRecord) HasCredentials() bool {
	return r.Credentials.Username != "" && r.Credentials.Password != ""
}

// AddName appends a camera name, keeping the set deduplicated and sorted.
func (r *CameraRecord) AddName(name string) {
	for _, n := range r.CameraNames {
		if n == name {
			return
		}
	}
	r.CameraNames = append(r.CameraNames, name)
	sort.Strings(r.CameraNames)
}
