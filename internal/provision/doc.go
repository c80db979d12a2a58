// Package provision ties the pieces of a provisioning run together: input
// validation, the mvn availability probe, the client-credentials token
// exchange, and the settings file write, in that order.
//
// The ordering is deliberate. Checks that need no network traffic run first,
// so an empty secret or a missing mvn never costs a token round trip, and a
// failed probe never leaves a half-provisioned environment.
package provision
