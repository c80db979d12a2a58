package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		TokenEndpoint:  "https://idsvr.example.com/oauth/token",
		ClientID:       "maven-build-pipeline",
		MirrorServerID: "curity-repo",
		ReleaseRepoURL: "https://repo.example.com/maven-releases",
		DevRepoURL:     "https://repo.example.com/maven-dev",
		SettingsPath:   "/home/ci/.m2/settings.xml",
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	dual := validConfig()
	dual.UploadServerID = "curity-upload-repo"
	require.NoError(t, dual.Validate())
}

func TestValidate_LoopbackHTTPAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.TokenEndpoint = "http://127.0.0.1:39201/oauth/token"
	require.NoError(t, cfg.Validate())

	cfg.TokenEndpoint = "http://localhost:8080/token"
	require.NoError(t, cfg.Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "missing endpoint",
			mutate:  func(c *Config) { c.TokenEndpoint = "" },
			wantMsg: "token endpoint is required",
		},
		{
			name:    "plain HTTP endpoint",
			mutate:  func(c *Config) { c.TokenEndpoint = "http://idsvr.example.com/oauth/token" },
			wantMsg: "must use HTTPS",
		},
		{
			name:    "non-HTTP scheme",
			mutate:  func(c *Config) { c.TokenEndpoint = "ftp://idsvr.example.com/token" },
			wantMsg: "must use HTTPS",
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.ClientID = "" },
			wantMsg: "client id is required",
		},
		{
			name:    "missing mirror id",
			mutate:  func(c *Config) { c.MirrorServerID = "" },
			wantMsg: "mirror server id is required",
		},
		{
			name:    "missing settings path",
			mutate:  func(c *Config) { c.SettingsPath = "" },
			wantMsg: "settings path is required",
		},
		{
			name:    "missing release URL in mirror-only variant",
			mutate:  func(c *Config) { c.ReleaseRepoURL = "" },
			wantMsg: "release repository URL is required",
		},
		{
			name: "missing dev URL in dual-server variant",
			mutate: func(c *Config) {
				c.UploadServerID = "curity-upload-repo"
				c.DevRepoURL = ""
			},
			wantMsg: "dev repository URL is required",
		},
		{
			name: "upload id equals mirror id",
			mutate: func(c *Config) {
				c.UploadServerID = c.MirrorServerID
			},
			wantMsg: "must differ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
