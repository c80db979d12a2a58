package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mvnauth/pkg/logging"
)

// defaultTimeout bounds the single token request. After this the call
// resolves to an UnreachableError instead of hanging.
const defaultTimeout = 30 * time.Second

// Client performs the OAuth 2.0 client-credentials exchange against a fixed
// token endpoint.
//
// The client is single-shot by design: one POST per AcquireToken call, no
// token caching and no retries. A second call may return a different token or
// hit rate limiting, which is acceptable because each build invocation
// acquires exactly one token.
type Client struct {
	endpoint string
	clientID string

	// HTTP client for the token request
	httpClient *http.Client
}

// NewClient creates a token client for the given endpoint and client id.
func NewClient(endpoint, clientID string) *Client {
	return &Client{
		endpoint:   endpoint,
		clientID:   clientID,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTPClient creates a token client using a caller-supplied HTTP
// client. Used by tests to shorten the timeout and by deployments that need
// custom TLS settings.
func NewClientWithHTTPClient(endpoint, clientID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   endpoint,
		clientID:   clientID,
		httpClient: httpClient,
	}
}

// Endpoint returns the configured token endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// AcquireToken exchanges the client secret for a bearer token using the
// client-credentials grant.
//
// The scope parameter is appended to the form body only when non-empty; an
// empty scope is omitted entirely rather than sent as an empty string.
//
// The returned error is one of InvalidInputError, RequestError,
// UnreachableError, ServerRejectedError, or MalformedResponseError. The
// client secret never appears in any error message or log entry.
func (c *Client) AcquireToken(ctx context.Context, clientSecret, scope string) (RedactedToken, error) {
	// The CLI validates the secret before calling, but an empty secret must
	// not slip through here either: the resulting rejection would be
	// indistinguishable from a server-side problem.
	if strings.TrimSpace(clientSecret) == "" {
		return RedactedToken{}, &InvalidInputError{Field: "client secret"}
	}

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.clientID)
	data.Set("client_secret", clientSecret)
	if scope != "" {
		data.Set("scope", scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return RedactedToken{}, &RequestError{Reason: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	logging.Debug("TokenClient", "Requesting token from %s (client_id=%s, scope=%q)",
		c.endpoint, c.clientID, scope)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RedactedToken{}, &UnreachableError{Endpoint: c.endpoint, Reason: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RedactedToken{}, &UnreachableError{Endpoint: c.endpoint, Reason: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return RedactedToken{}, &ServerRejectedError{
			Endpoint: c.endpoint,
			Status:   resp.StatusCode,
			Body:     string(body),
		}
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return RedactedToken{}, &MalformedResponseError{
			Endpoint: c.endpoint,
			Reason:   fmt.Errorf("failed to parse token response: %w", err),
		}
	}

	if tokenResp.AccessToken == "" {
		return RedactedToken{}, &MalformedResponseError{
			Endpoint: c.endpoint,
			Reason:   errors.New("response contains no access_token"),
		}
	}

	logging.Debug("TokenClient", "Acquired token from %s (token_type=%s, expires_in=%d)",
		c.endpoint, tokenResp.TokenType, tokenResp.ExpiresIn)

	return NewRedactedToken(tokenResp.AccessToken), nil
}
