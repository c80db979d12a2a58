// Package oauth implements the OAuth 2.0 client-credentials exchange used to
// obtain the short-lived bearer token embedded in the generated Maven
// settings file.
//
// The package exposes a single-shot Client: one POST to the token endpoint
// per invocation, no caching, no refresh, no retries. Retry policy belongs to
// the surrounding pipeline (re-running the job acquires a fresh token).
//
// Every failure mode of the exchange maps to a distinct error type so callers
// can branch on the outcome with errors.As:
//
//   - InvalidInputError: the client secret was empty after trimming
//   - UnreachableError: no response from the token endpoint (network, timeout)
//   - ServerRejectedError: non-200 response, carries status and body
//   - MalformedResponseError: 200 response without a usable access_token
//   - RequestError: local failure building the request
//
// Tokens are returned as RedactedToken values, which cannot leak through
// logging or serialization. Error messages never contain the client secret.
package oauth
