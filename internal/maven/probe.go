package maven

import (
	"context"
	"os/exec"
	"strings"

	"mvnauth/pkg/logging"
)

const mavenExecutable = "mvn"

// Hooks to allow mocking in tests
var (
	execLookPath       = exec.LookPath
	execCommandContext = exec.CommandContext
)

// CheckMaven verifies that the mvn executable is discoverable and reports a
// successful version check. It must pass before any token request is made:
// there is no point spending a network round trip when the downstream build
// cannot run.
//
// Returns a ToolUnavailableError when mvn is missing or not runnable.
func CheckMaven(ctx context.Context) error {
	if _, err := execLookPath(mavenExecutable); err != nil {
		return &ToolUnavailableError{Tool: mavenExecutable, Reason: err}
	}

	cmd := execCommandContext(ctx, mavenExecutable, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ToolUnavailableError{Tool: mavenExecutable, Reason: err}
	}

	if line, _, found := strings.Cut(string(output), "\n"); found || line != "" {
		logging.Debug("Probe", "Found %s: %s", mavenExecutable, strings.TrimSpace(line))
	}

	return nil
}
