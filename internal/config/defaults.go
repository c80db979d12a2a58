package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Compiled-in defaults. The token endpoint and client id are fixed per
// deployment rather than user inputs; the server ids and repository URLs
// match the private repository topology this tool provisions for.
const (
	DefaultTokenEndpoint = "https://login.curity.io/oauth/v2/oauth-token"
	DefaultClientID      = "maven-build-pipeline"

	DefaultMirrorServerID = "curity-repo"
	DefaultUploadServerID = "curity-upload-repo"

	DefaultReleaseRepoURL = "https://nexus.ops.curity.io/repository/maven-releases"
	DefaultDevRepoURL     = "https://nexus.dev.curity.io/repository/maven-dev"
)

const settingsRelPath = ".m2/settings.xml"

// GetDefaultConfigPathOrPanic returns the default configuration directory
// (~/.config/mvnauth). It panics when the home directory cannot be resolved,
// which means the process environment is unusable anyway.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// DefaultSettingsPath returns the conventional Maven settings location,
// ~/.m2/settings.xml.
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(homeDir, settingsRelPath), nil
}

// GetDefaultConfig returns the configuration used when no config file
// overrides anything. The upload server id defaults to empty, selecting the
// mirror-only settings variant; publishing pipelines opt in explicitly.
func GetDefaultConfig() (Config, error) {
	settingsPath, err := DefaultSettingsPath()
	if err != nil {
		return Config{}, err
	}

	return Config{
		TokenEndpoint:  DefaultTokenEndpoint,
		ClientID:       DefaultClientID,
		MirrorServerID: DefaultMirrorServerID,
		ReleaseRepoURL: DefaultReleaseRepoURL,
		DevRepoURL:     DefaultDevRepoURL,
		SettingsPath:   settingsPath,
	}, nil
}
