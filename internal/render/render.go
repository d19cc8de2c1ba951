// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/MKhiriev/coffee-shop-env/models"
)

// Format selects the rendered artifact.
type Format string

const (
	// FormatTS renders an Angular environment module.
	FormatTS Format = "ts"
	// FormatJSON renders the record as indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTS, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String values are emitted as JSON string literals, which are valid
// TypeScript for any input.
var tsTemplate = template.Must(template.New("environment.ts").
	Funcs(template.FuncMap{"quote": quote}).
	Parse(`// Code generated by envgen. DO NOT EDIT.

export const environment = {
  production: {{ .Production }},
  apiServerUrl: {{ quote .APIServerURL }},
  auth0: {
    url: {{ quote .Auth0.URL }},
    audience: {{ quote .Auth0.Audience }},
    clientId: {{ quote .Auth0.ClientID }},
    callbackURL: {{ quote .Auth0.CallbackURL }},
  }
};
`))

// Render writes env to w in the given format.
func Render(w io.Writer, env models.Environment, format Format) error {
	switch format {
	case FormatTS:
		if err := tsTemplate.Execute(w, env); err != nil {
			return fmt.Errorf("error rendering environment module: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("error encoding environment json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile renders env into path. The output goes to a temporary file in the
// same directory first and is renamed into place, so a concurrent build never
// reads a partially written file.
func WriteFile(path string, env models.Environment, format Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err = Render(tmp, env, format); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error moving rendered file into place: %w", err)
	}

	return nil
}

func quote(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
