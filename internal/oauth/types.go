package oauth

// TokenResponse is the parsed body of a successful token endpoint response.
//
// Only AccessToken is required. The remaining standard fields are parsed for
// diagnostics but not interpreted: the token's lifetime is the build job's
// lifetime, so no expiry tracking happens here. Unknown extra fields are
// tolerated for forward compatibility.
type TokenResponse struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds, when the server reports it.
	ExpiresIn int `json:"expires_in,omitempty"`

	// Scope is the granted scope(s), when the server reports them.
	Scope string `json:"scope,omitempty"`
}
