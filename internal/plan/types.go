package plan

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"import-planner/internal/common"
	"import-planner/internal/project"
)

// LoadType is the outcome of resolving a project archive.
// The numeric values of OpenProject and LoadGeometry are the ones persisted
// under settings.KeyImportAction.
type LoadType int

const (
	// LoadTypeUnknown means the import was abandoned.
	LoadTypeUnknown LoadType = iota
	LoadTypeOpenProject
	LoadTypeLoadGeometry
	// LoadTypeLoadConfig is reserved for config-only loads and never
	// produced by the resolver.
	LoadTypeLoadConfig
)

// String returns a human-readable load type name.
func (t LoadType) String() string {
	switch t {
	case LoadTypeUnknown:
		return "unknown"
	case LoadTypeOpenProject:
		return "open_project"
	case LoadTypeLoadGeometry:
		return "load_geometry"
	case LoadTypeLoadConfig:
		return "load_config"
	default:
		return common.UnknownStr
	}
}

// Interactive reports whether the load type can be chosen interactively.
func (t LoadType) Interactive() bool {
	return t == LoadTypeOpenProject || t == LoadTypeLoadGeometry
}

// ErrInvalidSettings is wrapped by every ImportSettings.Validate failure.
var ErrInvalidSettings = errors.New("invalid import settings")

// ImportSettings is the payload handed to the loader.
type ImportSettings struct {
	// User choices
	ImportPrinterSettings  bool           `yaml:"import_printer_settings"`
	ImportFilamentSettings bool           `yaml:"import_filament_settings"`
	ReassignPrinter        string         `yaml:"reassign_printer,omitempty"`
	FilamentColorRemapping map[int]string `yaml:"filament_color_remapping,omitempty"`

	// Pre-parsed project info
	ProjectFilamentCount       int      `yaml:"project_filament_count"`
	ProjectFilamentColors      []string `yaml:"project_filament_colors,omitempty"`
	ProjectPrinterName         string   `yaml:"project_printer_name,omitempty"`
	ProjectFilamentPresetNames []string `yaml:"project_filament_preset_names,omitempty"`
	ProjectHasPrinterSettings  bool     `yaml:"project_has_printer_settings"`
	ProjectHasFilamentSettings bool     `yaml:"project_has_filament_settings"`
}

// Clone returns a deep copy of the settings.
func (s ImportSettings) Clone() ImportSettings {
	s.FilamentColorRemapping = maps.Clone(s.FilamentColorRemapping)
	s.ProjectFilamentColors = slices.Clone(s.ProjectFilamentColors)
	s.ProjectFilamentPresetNames = slices.Clone(s.ProjectFilamentPresetNames)

	return s
}

// Validate checks the invariants between user choices and project info.
func (s ImportSettings) Validate() error {
	var errs []error

	if s.ReassignPrinter != "" && s.ImportPrinterSettings {
		errs = append(errs, fmt.Errorf("%w: printer reassigned while importing printer settings",
			ErrInvalidSettings))
	}

	if len(s.FilamentColorRemapping) > 0 && s.ImportFilamentSettings {
		errs = append(errs, fmt.Errorf("%w: filament remapping while importing filament settings",
			ErrInvalidSettings))
	}

	for _, slot := range slices.Sorted(maps.Keys(s.FilamentColorRemapping)) {
		if slot < 1 || slot > s.ProjectFilamentCount {
			errs = append(errs, fmt.Errorf("%w: remapped slot %d outside [1, %d]",
				ErrInvalidSettings, slot, s.ProjectFilamentCount))
		}
	}

	return errors.Join(errs...)
}

// geometrySettings is the payload for a geometry-only load: slot count and
// colors only, so extruder identity survives.
func geometrySettings(info project.Info) ImportSettings {
	return ImportSettings{
		ImportPrinterSettings:  false,
		ImportFilamentSettings: false,
		ProjectFilamentCount:   info.FilamentCount,
		ProjectFilamentColors:  slices.Clone(info.FilamentColors),
	}
}

// projectSettings is the payload for a full project load.
func projectSettings(info project.Info) ImportSettings {
	s := ImportSettings{
		ImportPrinterSettings:  true,
		ImportFilamentSettings: true,
	}
	s.mergeProject(info)

	return s
}

// mergeProject copies the pre-parsed project fields verbatim.
func (s *ImportSettings) mergeProject(info project.Info) {
	info = info.Clone()

	s.ProjectFilamentCount = info.FilamentCount
	s.ProjectFilamentColors = info.FilamentColors
	s.ProjectPrinterName = info.PrinterPresetName
	s.ProjectFilamentPresetNames = info.FilamentPresetNames
	s.ProjectHasPrinterSettings = info.HasPrinterSettings
	s.ProjectHasFilamentSettings = info.HasFilamentSettings
}

// normalize drops user choices that contradict the import flags or the slot
// range and returns the slots removed from the remapping.
func (s *ImportSettings) normalize() (dropped []int) {
	if s.ImportPrinterSettings {
		s.ReassignPrinter = ""
	}

	if s.ImportFilamentSettings {
		s.FilamentColorRemapping = nil
		return nil
	}

	for _, slot := range slices.Sorted(maps.Keys(s.FilamentColorRemapping)) {
		if slot < 1 || slot > s.ProjectFilamentCount {
			delete(s.FilamentColorRemapping, slot)
			dropped = append(dropped, slot)
		}
	}

	if len(s.FilamentColorRemapping) == 0 {
		s.FilamentColorRemapping = nil
	}

	return dropped
}
