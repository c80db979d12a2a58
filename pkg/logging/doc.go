// Package logging provides a structured logging system for mvnauth built on
// Go's standard slog package.
//
// All log entries carry a timestamp, a level, a subsystem identifier for
// categorization, the message, and optional error information.
//
// # Usage
//
//	import "mvnauth/pkg/logging"
//
//	// Initialize with Info level logging to stderr
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Warn("TokenClient", "Response carried no expiry")
//	logging.Error("Settings", err, "Failed to write settings file")
//
// Credentials must never be passed to this package. Token values are carried
// in redacting wrapper types that render as "[REDACTED]" under all formatting
// verbs, and the client secret is referenced only by its source, never by
// value.
package logging
