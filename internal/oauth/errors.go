package oauth

import "fmt"

// InvalidInputError indicates the caller supplied an empty or whitespace-only
// client secret. It is raised before any network traffic so a malformed
// request never reaches the token endpoint.
type InvalidInputError struct {
	// Field names the offending input, e.g. "client secret".
	Field string
}

// Error returns a descriptive message. The message names the field but never
// includes its value.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must not be empty or whitespace-only", e.Field)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

// UnreachableError indicates no response was received from the token
// endpoint: connection failure, DNS failure, or the request timing out.
type UnreachableError struct {
	// Endpoint is the token endpoint URL that could not be reached.
	Endpoint string
	// Reason is the underlying transport error.
	Reason error
}

// Error returns a user-friendly message including the endpoint.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("token endpoint %s unreachable: %v", e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *UnreachableError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UnreachableError) Is(target error) bool {
	_, ok := target.(*UnreachableError)
	return ok
}

// ServerRejectedError indicates the token endpoint answered with a non-200
// status. The response body is carried verbatim for diagnostics; token
// endpoints return server-side JSON, never an echo of the request secret.
type ServerRejectedError struct {
	// Endpoint is the token endpoint URL.
	Endpoint string
	// Status is the HTTP status code of the response.
	Status int
	// Body is the raw response body.
	Body string
}

// Error returns a message with the status code and the server-provided body.
func (e *ServerRejectedError) Error() string {
	return fmt.Sprintf("token endpoint %s rejected the request: status %d, body: %s", e.Endpoint, e.Status, e.Body)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ServerRejectedError) Is(target error) bool {
	_, ok := target.(*ServerRejectedError)
	return ok
}

// MalformedResponseError indicates the token endpoint answered 200 but the
// body did not contain a usable access_token field.
type MalformedResponseError struct {
	// Endpoint is the token endpoint URL.
	Endpoint string
	// Reason describes what was wrong with the response.
	Reason error
}

// Error returns a message describing the malformed response.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("token endpoint %s returned a malformed response: %v", e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *MalformedResponseError) Is(target error) bool {
	_, ok := target.(*MalformedResponseError)
	return ok
}

// RequestError indicates a local failure constructing the token request, such
// as a malformed endpoint URL. No network traffic occurred.
type RequestError struct {
	// Reason is the underlying error.
	Reason error
}

// Error returns a message describing the local failure.
func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to build token request: %v", e.Reason)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RequestError) Is(target error) bool {
	_, ok := target.(*RequestError)
	return ok
}
