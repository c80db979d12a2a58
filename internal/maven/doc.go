// Package maven renders the Maven settings.xml that routes dependency
// resolution through a private repository with bearer-token authorization,
// and probes the environment for a usable mvn executable.
//
// The document is assembled as a tree of typed nodes and serialized with
// encoding/xml, never by string interpolation, so the output stays
// well-formed XML for any token content.
//
// Two document variants exist:
//
//   - Mirror-only (read): a single wildcard mirror of the release repository,
//     carrying the Authorization header inline.
//   - Dual-server (read/write): named server entries for the mirror and
//     upload ids, each carrying the Authorization header, plus a wildcard
//     mirror of the dev repository wired to the mirror-role id.
//
// The upload server id selects the variant: present means dual-server.
package maven
