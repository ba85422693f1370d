package diagnostic

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Diagnostics holds all notices from one generation run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single notice.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of notice.
	Code string
	// Message is the human-readable description.
	Message string
	// Package names the generated package (if any).
	Package string
	// Path is the file or directory concerned (if any).
	Path string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning diagnostic and returns it.
func (d *Diagnostics) AddWarning(code, message, pkg, path string) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Package:  pkg,
		Path:     path,
	}
	d.Warnings = append(d.Warnings, diag)

	return diag
}

// AddInfo adds an info diagnostic and returns it.
func (d *Diagnostics) AddInfo(code, message, pkg, path string) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Package:  pkg,
		Path:     path,
	}
	d.Infos = append(d.Infos, diag)

	return diag
}

// Codes lists the codes of all diagnostics, infos first.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Infos)+len(d.Warnings))
	for _, i := range d.Infos {
		codes = append(codes, i.Code)
	}

	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

// Log writes the diagnostic to logger at the matching level.
func (d Diagnostic) Log(logger logrus.FieldLogger) {
	entry := logger.WithField("code", d.Code)
	if d.Package != "" {
		entry = entry.WithField("package", d.Package)
	}

	if d.Path != "" {
		entry = entry.WithField("path", d.Path)
	}

	switch d.Severity {
	case SeverityWarning:
		entry.Warn(d.Message)
	default:
		entry.Info(d.Message)
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Package != "" {
		prefix = append(prefix, "["+d.Package+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
