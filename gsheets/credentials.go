// Package gsheets provides the Google Sheets backend for the report
// pipeline: service-account credential resolution, an authenticated client
// factory, and worksheet grid fetching.
package gsheets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olyph/go-report/report"
)

const (
	// DefaultSecretFile is the well-known secret mount location.
	DefaultSecretFile = "/etc/secrets/service_account.json"
	// DefaultLocalFile is the local development fallback.
	DefaultLocalFile = "creds/service_account.json"
)

// Credentials is a resolved service-account key.
type Credentials struct {
	JSON   []byte
	Source string
}

// CredentialSource is one prioritized credential location. Resolve reports
// whether the source matched; a matched source with an error is fatal and
// stops the resolution chain.
type CredentialSource interface {
	Name() string
	Resolve() ([]byte, bool, error)
}

// RawJSONSource supplies the key as raw JSON content from configuration.
// A non-empty value always matches; malformed JSON is a fatal error.
type RawJSONSource struct {
	Content string
}

func (s RawJSONSource) Name() string { return "raw JSON content" }

func (s RawJSONSource) Resolve() ([]byte, bool, error) {
	content := strings.TrimSpace(s.Content)
	if content == "" {
		return nil, false, nil
	}
	if !json.Valid([]byte(content)) {
		return nil, true, report.NewError(report.KindInvalidCredentials, "invalid service account JSON content", nil)
	}
	return []byte(content), true, nil
}

// FileSource reads the key from a file path. An empty path or an absent
// file does not match and resolution continues with the next source.
type FileSource struct {
	Label string
	Path  string
}

func (s FileSource) Name() string {
	switch {
	case s.Label == "":
		return s.Path
	case strings.TrimSpace(s.Path) == "":
		return s.Label
	default:
		return fmt.Sprintf("%s (%s)", s.Label, s.Path)
	}
}

func (s FileSource) Resolve() ([]byte, bool, error) {
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, true, report.NewError(report.KindInternal, fmt.Sprintf("reading service account file %s", path), err)
	}
	return data, true, nil
}

// CredentialConfig names the prioritized credential locations.
type CredentialConfig struct {
	JSONContent string
	File        string
	SecretFile  string
	LocalFile   string
}

// Sources returns the resolution chain in priority order, with the
// well-known defaults applied for unset secret and local locations.
func (c CredentialConfig) Sources() []CredentialSource {
	secret := c.SecretFile
	if secret == "" {
		secret = DefaultSecretFile
	}
	local := c.LocalFile
	if local == "" {
		local = DefaultLocalFile
	}
	return []CredentialSource{
		RawJSONSource{Content: c.JSONContent},
		FileSource{Label: "credentials file", Path: c.File},
		FileSource{Label: "secret file", Path: secret},
		FileSource{Label: "local file", Path: local},
	}
}

// Resolver tries credential sources in order and stops at the first match.
type Resolver struct {
	sources []CredentialSource
}

// NewResolver creates a resolver over the given sources.
func NewResolver(sources ...CredentialSource) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the first matching credential. When no source matches it
// fails listing the locations that were checked.
func (r *Resolver) Resolve() (Credentials, error) {
	checked := make([]string, 0, len(r.sources))
	for _, src := range r.sources {
		raw, matched, err := src.Resolve()
		if err != nil {
			return Credentials{}, err
		}
		if matched {
			return Credentials{JSON: raw, Source: src.Name()}, nil
		}
		if name := src.Name(); name != "" {
			checked = append(checked, name)
		}
	}
	return Credentials{}, report.NewError(report.KindCredentialsNotFound,
		fmt.Sprintf("service account credentials not found (checked: %s): provide a service account key file or set the raw JSON content", strings.Join(checked, ", ")), nil)
}
