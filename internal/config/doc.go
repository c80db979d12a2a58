// Package config holds the mvnauth configuration: the token endpoint and
// client id for the OAuth exchange, the server ids and repository URLs for
// the rendered settings document, and the target settings path.
//
// All fields carry compiled-in defaults. An optional config.yaml under
// ~/.config/mvnauth overrides individual fields for non-standard
// deployments; the client secret is never read from configuration.
package config
