package maven

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"mvnauth/internal/oauth"
	"mvnauth/pkg/logging"
)

const (
	settingsNamespace      = "http://maven.apache.org/SETTINGS/1.0.0"
	xsiNamespace           = "http://www.w3.org/2001/XMLSchema-instance"
	settingsSchemaLocation = "http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd"

	// wildcardMirrorOf redirects all dependency resolution to the mirror.
	wildcardMirrorOf = "*"

	authorizationHeader = "Authorization"
)

// SettingsSpec describes the settings document to render.
//
// UploadServerID selects the variant: when empty, the document contains a
// single mirror of ReleaseRepoURL with the Authorization header inline. When
// set, the document contains explicit server entries for both ids and a
// mirror of DevRepoURL wired to MirrorServerID.
type SettingsSpec struct {
	// MirrorServerID names the mirror entry (and, in the dual-server
	// variant, the matching server credential).
	MirrorServerID string

	// UploadServerID names the publish-target server credential. Empty
	// selects the mirror-only variant.
	UploadServerID string

	// ReleaseRepoURL is the repository URL used by the mirror-only variant.
	ReleaseRepoURL string

	// DevRepoURL is the repository URL used by the dual-server variant.
	DevRepoURL string
}

// IsDualServer reports whether the spec selects the dual-server variant.
func (s SettingsSpec) IsDualServer() bool {
	return s.UploadServerID != ""
}

// settingsDocument is the root of the rendered settings.xml tree.
type settingsDocument struct {
	XMLName        xml.Name        `xml:"settings"`
	Namespace      string          `xml:"xmlns,attr"`
	XSINamespace   string          `xml:"xmlns:xsi,attr"`
	SchemaLocation string          `xml:"xsi:schemaLocation,attr"`
	Servers        *serversSection `xml:"servers,omitempty"`
	Mirrors        mirrorsSection  `xml:"mirrors"`
}

type serversSection struct {
	Servers []serverEntry `xml:"server"`
}

type serverEntry struct {
	ID            string             `xml:"id"`
	Configuration *wagonConfiguration `xml:"configuration,omitempty"`
}

type mirrorsSection struct {
	Mirrors []mirrorEntry `xml:"mirror"`
}

type mirrorEntry struct {
	ID            string             `xml:"id"`
	Name          string             `xml:"name,omitempty"`
	URL           string             `xml:"url"`
	MirrorOf      string             `xml:"mirrorOf"`
	Configuration *wagonConfiguration `xml:"configuration,omitempty"`
}

// wagonConfiguration carries custom HTTP headers for the Maven HTTP wagon.
type wagonConfiguration struct {
	HTTPHeaders httpHeaders `xml:"httpHeaders"`
}

type httpHeaders struct {
	Properties []headerProperty `xml:"property"`
}

type headerProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// bearerHeaders builds the httpHeaders block carrying the bearer token.
// The token value becomes element text, so encoding/xml escapes any
// XML-special characters and the document stays well-formed for arbitrary
// token content.
func bearerHeaders(token oauth.RedactedToken) *wagonConfiguration {
	return &wagonConfiguration{
		HTTPHeaders: httpHeaders{
			Properties: []headerProperty{
				{
					Name:  authorizationHeader,
					Value: "Bearer " + token.Value(),
				},
			},
		},
	}
}

// RenderSettings serializes the settings document for the given spec and
// token. The result is a complete XML document including the declaration.
func RenderSettings(token oauth.RedactedToken, spec SettingsSpec) ([]byte, error) {
	doc := settingsDocument{
		Namespace:      settingsNamespace,
		XSINamespace:   xsiNamespace,
		SchemaLocation: settingsSchemaLocation,
	}

	if spec.IsDualServer() {
		doc.Servers = &serversSection{
			Servers: []serverEntry{
				{ID: spec.MirrorServerID, Configuration: bearerHeaders(token)},
				{ID: spec.UploadServerID, Configuration: bearerHeaders(token)},
			},
		}
		doc.Mirrors = mirrorsSection{
			Mirrors: []mirrorEntry{
				{
					ID:       spec.MirrorServerID,
					Name:     "Private dev repository mirror",
					URL:      spec.DevRepoURL,
					MirrorOf: wildcardMirrorOf,
				},
			},
		}
	} else {
		doc.Mirrors = mirrorsSection{
			Mirrors: []mirrorEntry{
				{
					ID:            spec.MirrorServerID,
					Name:          "Private release repository mirror",
					URL:           spec.ReleaseRepoURL,
					MirrorOf:      wildcardMirrorOf,
					Configuration: bearerHeaders(token),
				},
			},
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize settings document: %w", err)
	}

	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// WriteSettings renders the settings document and writes it to targetPath,
// creating parent directories as needed and fully replacing any existing
// file. The write goes through a temp file in the target directory followed
// by a rename, so a reader never observes a half-written document.
//
// Returns the resolved absolute path on success. Any filesystem failure
// surfaces as a WriteError and the caller must not trust the path.
func WriteSettings(token oauth.RedactedToken, spec SettingsSpec, targetPath string) (string, error) {
	content, err := RenderSettings(token, spec)
	if err != nil {
		return "", &WriteError{Path: targetPath, Reason: err}
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return "", &WriteError{Path: targetPath, Reason: err}
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &WriteError{Path: absPath, Reason: fmt.Errorf("failed to create directory %s: %w", dir, err)}
	}

	// The file carries a live credential, so it is created readable by the
	// owner only.
	tmp, err := os.CreateTemp(dir, ".settings-*.xml")
	if err != nil {
		return "", &WriteError{Path: absPath, Reason: err}
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Reason: err}
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Reason: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Reason: err}
	}

	if err := os.Rename(tmpPath, absPath); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Reason: err}
	}

	logging.Info("Settings", "Wrote settings file to %s (%d bytes)", absPath, len(content))
	return absPath, nil
}
