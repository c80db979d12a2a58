package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mvnauth/internal/config"
	"mvnauth/internal/maven"
	"mvnauth/internal/oauth"
	"mvnauth/internal/provision"
)

// secretEnvVar supplies the client secret when --secret-file is not given.
const secretEnvVar = "MVNAUTH_CLIENT_SECRET"

var (
	provisionScope        string
	provisionDeploy       bool
	provisionUploadServer string
	provisionSettingsPath string
	provisionConfigPath   string
	provisionSecretFile   string
	provisionTokenFile    string
)

// provisionCmd exchanges the client secret for a bearer token and writes the
// Maven settings file.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Exchange the client secret for a token and write settings.xml",
	Long: `Provision exchanges the pipeline's client secret for a short-lived OAuth
bearer token and writes a Maven settings.xml routing all dependency
resolution through the private repository.

The client secret is read from the ` + secretEnvVar + ` environment variable,
or from a file given with --secret-file. With --deploy (or an upload server
id from configuration) the settings also contain a named publish-target
server, and the matching mvn deploy argument is printed.

On success the absolute settings path is printed to stdout. The token itself
is only written to the file given with --token-file, never logged; register
it with your pipeline's log masking before passing it on.`,
	Args: cobra.NoArgs,
	RunE: runProvision,
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVar(&provisionScope, "scope", "", "OAuth scope to request (omitted when empty)")
	provisionCmd.Flags().BoolVar(&provisionDeploy, "deploy", false, "Also provision a publish-target server entry")
	provisionCmd.Flags().StringVar(&provisionUploadServer, "upload-server", "", "Upload server id (implies --deploy)")
	provisionCmd.Flags().StringVar(&provisionSettingsPath, "settings-path", "", "Target settings file (default: ~/.m2/settings.xml)")
	provisionCmd.Flags().StringVar(&provisionConfigPath, "config", "", "Configuration directory (default: ~/.config/mvnauth)")
	provisionCmd.Flags().StringVar(&provisionSecretFile, "secret-file", "", "File containing the client secret")
	provisionCmd.Flags().StringVar(&provisionTokenFile, "token-file", "", "Write the acquired token to this file (mode 0600)")
}

func runProvision(cmd *cobra.Command, args []string) error {
	configPath := provisionConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if provisionScope != "" {
		cfg.Scope = provisionScope
	}
	if provisionSettingsPath != "" {
		cfg.SettingsPath = provisionSettingsPath
	}
	if provisionUploadServer != "" {
		cfg.UploadServerID = provisionUploadServer
	} else if provisionDeploy && cfg.UploadServerID == "" {
		cfg.UploadServerID = config.DefaultUploadServerID
	}

	secret, err := readClientSecret()
	if err != nil {
		return err
	}

	result, err := provision.NewRunner(cfg).Run(cmd.Context(), secret)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.SettingsPath)

	if provisionTokenFile != "" {
		if err := os.WriteFile(provisionTokenFile, []byte(result.Token.Value()), 0600); err != nil {
			return &maven.WriteError{Path: provisionTokenFile, Reason: err}
		}
	}

	if fragment := result.DeployCommandFragment(); fragment != "" {
		fmt.Fprintln(cmd.OutOrStdout(), fragment)
	}

	return nil
}

// readClientSecret resolves the client secret from --secret-file or the
// environment. The returned value is trimmed; an empty result fails fast
// before any network traffic.
func readClientSecret() (string, error) {
	if provisionSecretFile != "" {
		data, err := os.ReadFile(provisionSecretFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", &oauth.InvalidInputError{Field: "client secret"}
		}
		return secret, nil
	}

	secret := strings.TrimSpace(os.Getenv(secretEnvVar))
	if secret == "" {
		return "", &oauth.InvalidInputError{Field: "client secret"}
	}
	return secret, nil
}
