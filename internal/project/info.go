package project

import "slices"

// Info is the project metadata read ahead of loading.
type Info struct {
	FilamentCount       int      `yaml:"filament_count"`
	FilamentColors      []string `yaml:"filament_colors,omitempty"`
	PrinterPresetName   string   `yaml:"printer_preset_name,omitempty"`
	FilamentPresetNames []string `yaml:"filament_preset_names,omitempty"`
	HasPrinterSettings  bool     `yaml:"has_printer_settings"`
	HasFilamentSettings bool     `yaml:"has_filament_settings"`
}

// Clone returns a deep copy of the info.
func (i Info) Clone() Info {
	i.FilamentColors = slices.Clone(i.FilamentColors)
	i.FilamentPresetNames = slices.Clone(i.FilamentPresetNames)

	return i
}

// PreParser extracts project metadata from an archive without loading it.
// A false result means the archive could not be read; the returned Info is
// then the zero value.
type PreParser interface {
	PreParse(path string) (Info, bool)
}

// PreParserFunc adapts a function to PreParser.
type PreParserFunc func(path string) (Info, bool)

// PreParse implements PreParser.
func (f PreParserFunc) PreParse(path string) (Info, bool) {
	return f(path)
}
