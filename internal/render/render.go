// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
	"github.com/MKhiriev/go-site-deploy/internal/utils"
	"github.com/MKhiriev/go-site-deploy/models"
)

var templateFuncs = template.FuncMap{
	"py":     pyString,
	"pybool": pyBool,
}

var (
	settingsTmpl = template.Must(template.New("settings").Funcs(templateFuncs).Parse(settingsTemplate))
	nginxTmpl    = template.Must(template.New("nginx").Funcs(templateFuncs).Parse(nginxTemplate))
)

// Renderer renders and writes the deployment artifacts.
type Renderer struct {
	logger *logger.Logger
}

func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{logger: log}
}

// Settings renders the framework settings module for the given document.
func (r *Renderer) Settings(doc models.SiteSettings) ([]byte, error) {
	return execute(settingsTmpl, doc)
}

// Nginx renders the web-server fragment for the given document.
func (r *Renderer) Nginx(doc models.SiteSettings) ([]byte, error) {
	return execute(nginxTmpl, doc)
}

// WriteSettings renders the settings module and writes it atomically to
// path. Re-running replaces the previous artifact in full.
func (r *Renderer) WriteSettings(doc models.SiteSettings, path string) error {
	content, err := r.Settings(doc)
	if err != nil {
		return err
	}

	if err := utils.AtomicWriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	r.logger.Info().Str("path", path).Int("bytes", len(content)).Msg("settings file written")

	return nil
}

// WriteNginx renders the web-server fragment and writes it atomically to
// path.
func (r *Renderer) WriteNginx(doc models.SiteSettings, path string) error {
	content, err := r.Nginx(doc)
	if err != nil {
		return err
	}

	if err := utils.AtomicWriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("error writing web-server fragment: %w", err)
	}
	r.logger.Info().Str("path", path).Int("bytes", len(content)).Msg("web-server fragment written")

	return nil
}

func execute(tmpl *template.Template, doc models.SiteSettings) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("error rendering %s template: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}

// pyString renders a Go string as a single-quoted Python string literal.
// Backslashes and single quotes are escaped so credentials containing
// either cannot break out of the literal.
func pyString(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}

// pyBool renders a Go bool as a Python boolean literal.
func pyBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
