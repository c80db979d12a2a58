package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"mvnauth/internal/maven"
	"mvnauth/internal/oauth"
	"mvnauth/pkg/logging"
)

// Exit codes for CLI commands.
// These follow common conventions so pipelines can branch on the outcome.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (invalid input, bad configuration).
	ExitCodeError = 1
	// ExitCodeToolUnavailable indicates mvn is not installed or not runnable.
	ExitCodeToolUnavailable = 2
	// ExitCodeAuthFailed indicates the token exchange failed.
	ExitCodeAuthFailed = 3
	// ExitCodeWriteFailed indicates the settings file could not be written.
	ExitCodeWriteFailed = 4
)

var verbose bool

// rootCmd represents the base command for the mvnauth application.
var rootCmd = &cobra.Command{
	Use:   "mvnauth",
	Short: "Provision Maven with short-lived private-repository credentials",
	Long: `mvnauth exchanges a client secret for a short-lived OAuth bearer token
and writes a Maven settings.xml that routes dependency resolution (and
optionally artifact publication) through a private repository, so build
pipelines never carry long-lived credentials.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mvnauth version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var toolUnavailable *maven.ToolUnavailableError
	if errors.As(err, &toolUnavailable) {
		return ExitCodeToolUnavailable
	}

	var unreachable *oauth.UnreachableError
	var rejected *oauth.ServerRejectedError
	var malformed *oauth.MalformedResponseError
	var requestErr *oauth.RequestError
	if errors.As(err, &unreachable) || errors.As(err, &rejected) ||
		errors.As(err, &malformed) || errors.As(err, &requestErr) {
		return ExitCodeAuthFailed
	}

	var writeErr *maven.WriteError
	if errors.As(err, &writeErr) {
		return ExitCodeWriteFailed
	}

	// Invalid input and everything else map to the general error code.
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
