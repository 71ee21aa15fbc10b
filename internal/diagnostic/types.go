package diagnostic

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"import-planner/internal/common"
)

// Diagnostic codes.
const (
	CodePreParseFailed   = "preparse_failed"
	CodePrinterNotFound  = "printer_not_found"
	CodeFilamentFallback = "filament_fallback"
	CodeNoFilaments      = "no_filaments"
	CodeUnknownAction    = "unknown_action"
	CodeStoreWriteFailed = "store_write_failed"
	CodeRemapOutOfRange  = "remap_out_of_range"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code    string
	Message string
	Subject Subject
}

// Subject locates what a diagnostic is about. Unset fields are zero.
type Subject struct {
	// Path is the project archive.
	Path string
	// Preset is a printer or filament preset name.
	Preset string
	// Slot is a 1-based project filament slot.
	Slot int
	// Option is a settings key.
	Option string
}

// OnPath returns a subject naming a project archive.
func OnPath(path string) Subject { return Subject{Path: path} }

// OnPreset returns a subject naming a preset.
func OnPreset(name string) Subject { return Subject{Preset: name} }

// OnSlot returns a subject naming a 1-based filament slot.
func OnSlot(slot int) Subject { return Subject{Slot: slot} }

// OnOption returns a subject naming a settings key.
func OnOption(key string) Subject { return Subject{Option: key} }

// IsZero reports whether no field is set.
func (s Subject) IsZero() bool {
	return s == Subject{}
}

// String renders the set fields, e.g. `slot 2` or `preset "X1C"`.
func (s Subject) String() string {
	var parts []string

	if s.Path != "" {
		parts = append(parts, s.Path)
	}

	if s.Preset != "" {
		parts = append(parts, "preset "+strconv.Quote(s.Preset))
	}

	if s.Slot > 0 {
		parts = append(parts, "slot "+strconv.Itoa(s.Slot))
	}

	if s.Option != "" {
		parts = append(parts, "option "+s.Option)
	}

	return strings.Join(parts, " ")
}

// LogValue implements slog.LogValuer, logging only the set fields.
func (s Subject) LogValue() slog.Value {
	var attrs []slog.Attr

	if s.Path != "" {
		attrs = append(attrs, slog.String("path", s.Path))
	}

	if s.Preset != "" {
		attrs = append(attrs, slog.String("preset", s.Preset))
	}

	if s.Slot > 0 {
		attrs = append(attrs, slog.Int("slot", s.Slot))
	}

	if s.Option != "" {
		attrs = append(attrs, slog.String("option", s.Option))
	}

	return slog.GroupValue(attrs...)
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, subject Subject) {
	d.Errors = append(d.Errors, Diagnostic{DiagnosticError, code, message, subject})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, subject Subject) {
	d.Warnings = append(d.Warnings, Diagnostic{DiagnosticWarning, code, message, subject})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, subject Subject) {
	d.Infos = append(d.Infos, Diagnostic{DiagnosticInfo, code, message, subject})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Has reports whether any diagnostic carries the given code.
func (d *Diagnostics) Has(code string) bool {
	_, ok := d.Find(code)
	return ok
}

// Find returns the first diagnostic with the given code, searching errors,
// then warnings, then infos.
func (d *Diagnostics) Find(code string) (Diagnostic, bool) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				return diag, true
			}
		}
	}

	return Diagnostic{}, false
}

// All returns every diagnostic ordered by descending severity.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ForSlot returns the diagnostics about a filament slot, most severe first.
func (d *Diagnostics) ForSlot(slot int) []Diagnostic {
	if slot < 1 {
		return nil
	}

	var result []Diagnostic

	for _, diag := range d.All() {
		if diag.Subject.Slot == slot {
			result = append(result, diag)
		}
	}

	return result
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if !d.Subject.IsZero() {
		return d.Subject.String() + ": " + msg
	}

	return msg
}
