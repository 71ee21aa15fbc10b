package plan

import (
	"maps"

	"import-planner/internal/diagnostic"
	"import-planner/internal/project"
	"import-planner/internal/rank"
	"import-planner/internal/remap"
)

// ChooserRequest is everything the interactive chooser presents.
type ChooserRequest struct {
	// Path is the archive being imported.
	Path string
	// Project is the pre-parsed project info. Zero when PreParsed is false.
	Project   project.Info
	PreParsed bool
	// DefaultAction is the action preselected for the user.
	DefaultAction LoadType
	// Printers are the ranked reassignment targets.
	Printers rank.PrinterList
	// Slots hold one ranked filament candidate list per project color.
	Slots []remap.Slot
	// Diagnostics are conditions to show the user, such as a missing printer.
	Diagnostics diagnostic.Diagnostics
}

// Defaults returns the decision made by accepting the request unchanged:
// the default action with both project settings imported.
func (r ChooserRequest) Defaults() Decision {
	return Decision{
		Action:                 r.DefaultAction,
		ImportPrinterSettings:  true,
		ImportFilamentSettings: true,
	}
}

// Decision is what the user accepted.
type Decision struct {
	// Action is LoadTypeOpenProject or LoadTypeLoadGeometry.
	Action                 LoadType
	ImportPrinterSettings  bool
	ImportFilamentSettings bool
	// ReassignPrinter is the printer chosen in place of the project printer.
	ReassignPrinter string
	// FilamentRemapping maps 1-based project slots to local preset names.
	FilamentRemapping map[int]string
}

// settings converts the decision into the user-choice half of ImportSettings.
func (d Decision) settings() ImportSettings {
	s := ImportSettings{
		ImportPrinterSettings:  d.ImportPrinterSettings,
		ImportFilamentSettings: d.ImportFilamentSettings,
	}

	if !d.ImportPrinterSettings {
		s.ReassignPrinter = d.ReassignPrinter
	}

	if !d.ImportFilamentSettings && len(d.FilamentRemapping) > 0 {
		s.FilamentColorRemapping = maps.Clone(d.FilamentRemapping)
	}

	return s
}

// Chooser asks the user how to import. A false result means the user
// cancelled. Choose blocks until the user responds.
type Chooser interface {
	Choose(req ChooserRequest) (Decision, bool)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(req ChooserRequest) (Decision, bool)

// Choose implements Chooser.
func (f ChooserFunc) Choose(req ChooserRequest) (Decision, bool) {
	return f(req)
}

// Reporter receives the diagnostics of every resolve that produced any.
type Reporter interface {
	Report(path string, diags diagnostic.Diagnostics)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(path string, diags diagnostic.Diagnostics)

// Report implements Reporter.
func (f ReporterFunc) Report(path string, diags diagnostic.Diagnostics) {
	f(path, diags)
}
