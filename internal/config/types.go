package config

// Config is the top-level configuration structure for mvnauth.
//
// Every field has a compiled-in default (see defaults.go); a config file only
// needs to name the fields it overrides. The client secret is deliberately
// not part of this structure: it arrives through the environment or a secret
// file and never touches a config document on disk.
type Config struct {
	// TokenEndpoint is the OAuth token endpoint for the client-credentials
	// exchange. Must be HTTPS (localhost excepted, for tests).
	TokenEndpoint string `yaml:"tokenEndpoint,omitempty"`

	// ClientID is the fixed, non-secret identifier for this integration.
	ClientID string `yaml:"clientId,omitempty"`

	// Scope is appended to the token request when non-empty.
	Scope string `yaml:"scope,omitempty"`

	// MirrorServerID names the mirror entry in the rendered settings.
	MirrorServerID string `yaml:"mirrorServerId,omitempty"`

	// UploadServerID names the publish-target server entry. Empty selects
	// the mirror-only settings variant.
	UploadServerID string `yaml:"uploadServerId,omitempty"`

	// ReleaseRepoURL is the repository the mirror-only variant points at.
	ReleaseRepoURL string `yaml:"releaseRepoUrl,omitempty"`

	// DevRepoURL is the repository the dual-server variant points at.
	DevRepoURL string `yaml:"devRepoUrl,omitempty"`

	// SettingsPath is the target path for the rendered settings file
	// (default: ~/.m2/settings.xml).
	SettingsPath string `yaml:"settingsPath,omitempty"`
}
