package config

import (
	"fmt"
	"net/url"
)

// Validate checks that the configuration can drive a provisioning run.
// It is called once, before the environment probe and the token request, so
// a bad configuration never costs a network round trip.
func (c Config) Validate() error {
	if c.TokenEndpoint == "" {
		return fmt.Errorf("token endpoint is required")
	}
	if err := validateEndpointURL(c.TokenEndpoint); err != nil {
		return err
	}
	if c.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	if c.MirrorServerID == "" {
		return fmt.Errorf("mirror server id is required")
	}
	if c.SettingsPath == "" {
		return fmt.Errorf("settings path is required")
	}

	if c.UploadServerID != "" {
		if c.DevRepoURL == "" {
			return fmt.Errorf("dev repository URL is required when an upload server id is set")
		}
		if c.UploadServerID == c.MirrorServerID {
			return fmt.Errorf("upload server id must differ from the mirror server id")
		}
	} else if c.ReleaseRepoURL == "" {
		return fmt.Errorf("release repository URL is required")
	}

	return nil
}

// validateEndpointURL enforces HTTPS for the token endpoint.
// This prevents credential leakage over insecure connections. Loopback hosts
// are exempt so local mock servers can be used in tests.
func validateEndpointURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("token endpoint is not a valid URL: %w", err)
	}

	switch u.Scheme {
	case "https":
		return nil
	case "http":
		host := u.Hostname()
		if host == "localhost" || host == "127.0.0.1" || host == "::1" {
			return nil
		}
		return fmt.Errorf("token endpoint must use HTTPS (got: %s)", endpoint)
	default:
		return fmt.Errorf("token endpoint must use HTTPS (got: %s)", endpoint)
	}
}
