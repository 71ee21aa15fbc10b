package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"import-planner/internal/plan"
	"import-planner/internal/remap"
)

// answers scripts the interactive step.
type answers struct {
	Cancel bool `yaml:"cancel"`
	// Action is "open_project" or "load_geometry"; empty keeps the default.
	Action                 string `yaml:"action,omitempty"`
	ImportPrinterSettings  *bool  `yaml:"import_printer_settings,omitempty"`
	ImportFilamentSettings *bool  `yaml:"import_filament_settings,omitempty"`
	// ReassignPrinter empty keeps the preselected printer.
	ReassignPrinter string `yaml:"reassign_printer,omitempty"`
	// MatchProjectPresets preselects slots whose project preset name has a
	// close local match before Filaments is applied.
	MatchProjectPresets bool `yaml:"match_project_presets,omitempty"`
	// Filaments picks presets by name per 1-based slot; other slots keep
	// their default selection.
	Filaments map[int]string `yaml:"filaments,omitempty"`
}

// loadChooser returns a chooser answering from path, or one accepting the
// defaults when path is empty.
func loadChooser(path string) (plan.Chooser, error) {
	if path == "" {
		return plan.ChooserFunc(func(req plan.ChooserRequest) (plan.Decision, bool) {
			return req.Defaults(), true
		}), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var a answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse answers YAML: %w", err)
	}

	return plan.ChooserFunc(a.choose), nil
}

func (a answers) choose(req plan.ChooserRequest) (plan.Decision, bool) {
	if a.Cancel {
		return plan.Decision{}, false
	}

	d := req.Defaults()

	switch a.Action {
	case plan.LoadTypeOpenProject.String():
		d.Action = plan.LoadTypeOpenProject
	case plan.LoadTypeLoadGeometry.String():
		d.Action = plan.LoadTypeLoadGeometry
	}

	if a.ImportPrinterSettings != nil {
		d.ImportPrinterSettings = *a.ImportPrinterSettings
	}

	if a.ImportFilamentSettings != nil {
		d.ImportFilamentSettings = *a.ImportFilamentSettings
	}

	if !d.ImportPrinterSettings {
		d.ReassignPrinter = a.ReassignPrinter
		if d.ReassignPrinter == "" {
			if p, ok := req.Printers.DefaultPreset(); ok {
				d.ReassignPrinter = p.Name
			}
		}
	}

	if !d.ImportFilamentSettings {
		slots := req.Slots
		if a.MatchProjectPresets {
			remap.Suggest(slots, req.Project.FilamentPresetNames)
		}

		for i := range slots {
			if name, ok := a.Filaments[slots[i].Index]; ok {
				// Unknown names keep the default selection.
				_ = slots[i].SelectName(name)
			}
		}

		d.FilamentRemapping = remap.Remapping(slots)
	}

	return d, true
}
