package provision

import (
	"context"
	"fmt"
	"strings"

	"mvnauth/internal/config"
	"mvnauth/internal/maven"
	"mvnauth/internal/oauth"
	"mvnauth/pkg/logging"
)

// Result is the outcome of a successful provisioning run.
type Result struct {
	// SettingsPath is the absolute path of the written settings file.
	SettingsPath string

	// Token is the acquired bearer token. The caller hands it to its
	// secret-output channel (and masking infrastructure); it never appears
	// in logs.
	Token oauth.RedactedToken

	// UploadServerID is set when the dual-server variant was rendered.
	UploadServerID string

	// DeployRepoURL is the repository URL a publish step should target,
	// set when the dual-server variant was rendered.
	DeployRepoURL string
}

// DeployCommandFragment returns a ready-to-use mvn argument identifying the
// upload server and repository for a subsequent publish step. Empty when the
// mirror-only variant was rendered.
func (r *Result) DeployCommandFragment() string {
	if r.UploadServerID == "" {
		return ""
	}
	return fmt.Sprintf("-DaltDeploymentRepository=%s::default::%s", r.UploadServerID, r.DeployRepoURL)
}

// Runner drives one provisioning invocation: validate inputs, probe for mvn,
// acquire a token, and materialize the settings file. It holds no state
// between invocations; the token lives only in the returned Result.
type Runner struct {
	cfg    config.Config
	client *oauth.Client

	// checkMaven is swappable in tests.
	checkMaven func(context.Context) error
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg config.Config) *Runner {
	return &Runner{
		cfg:        cfg,
		client:     oauth.NewClient(cfg.TokenEndpoint, cfg.ClientID),
		checkMaven: maven.CheckMaven,
	}
}

// Run executes the provisioning flow. Every failure is terminal for the
// invocation: configuration and input validation happen first, then the
// environment probe, and only then the single network round trip and the
// file write. On any error the settings path must not be trusted.
func (r *Runner) Run(ctx context.Context, clientSecret string) (*Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if strings.TrimSpace(clientSecret) == "" {
		return nil, &oauth.InvalidInputError{Field: "client secret"}
	}

	if err := r.checkMaven(ctx); err != nil {
		return nil, err
	}

	token, err := r.client.AcquireToken(ctx, clientSecret, r.cfg.Scope)
	if err != nil {
		return nil, err
	}

	spec := maven.SettingsSpec{
		MirrorServerID: r.cfg.MirrorServerID,
		UploadServerID: r.cfg.UploadServerID,
		ReleaseRepoURL: r.cfg.ReleaseRepoURL,
		DevRepoURL:     r.cfg.DevRepoURL,
	}

	path, err := maven.WriteSettings(token, spec, r.cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SettingsPath: path,
		Token:        token,
	}
	if spec.IsDualServer() {
		result.UploadServerID = r.cfg.UploadServerID
		result.DeployRepoURL = r.cfg.DevRepoURL
	}

	logging.Info("Provision", "Provisioned %s (variant=%s)", path, variantName(spec))
	return result, nil
}

func variantName(spec maven.SettingsSpec) string {
	if spec.IsDualServer() {
		return "dual-server"
	}
	return "mirror-only"
}
