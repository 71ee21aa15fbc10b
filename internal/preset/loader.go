package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogVersion is the only catalog layout version understood by
// ParseCatalog. Files without a version are read as this one.
const CatalogVersion = "1"

// CatalogFile is the YAML layout of a catalog fixture.
type CatalogFile struct {
	Version   string         `yaml:"version"`
	Printers  []PresetEntry  `yaml:"printers"`
	Filaments []PresetEntry  `yaml:"filaments"`
	Selected  SelectedConfig `yaml:"selected,omitempty"`
}

// PresetEntry is one preset in a catalog fixture. Visibility and
// compatibility default to true when omitted.
type PresetEntry struct {
	Name       string `yaml:"name"`
	Label      string `yaml:"label,omitempty"`
	Vendor     string `yaml:"vendor,omitempty"`
	Type       string `yaml:"type,omitempty"`
	System     bool   `yaml:"system,omitempty"`
	Visible    *bool  `yaml:"visible,omitempty"`
	Compatible *bool  `yaml:"compatible,omitempty"`
	Default    bool   `yaml:"default,omitempty"`
}

// SelectedConfig names the active preset per class.
type SelectedConfig struct {
	Printer  string `yaml:"printer,omitempty"`
	Filament string `yaml:"filament,omitempty"`
}

// LoadCatalogFile loads a YAML catalog fixture from path.
func LoadCatalogFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return ParseCatalog(data)
}

// ParseCatalog parses YAML catalog data into a MemoryCatalog.
func ParseCatalog(data []byte) (*MemoryCatalog, error) {
	var cf CatalogFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&cf)

	if cf.Version != CatalogVersion {
		return nil, fmt.Errorf("unsupported catalog version %q (want %q)", cf.Version, CatalogVersion)
	}

	catalog := NewMemoryCatalog(toDescriptors(cf.Printers), toDescriptors(cf.Filaments))

	if cf.Selected.Printer != "" {
		if err := catalog.Select(ClassPrinter, cf.Selected.Printer); err != nil {
			return nil, fmt.Errorf("invalid catalog selection: %w", err)
		}
	}

	if cf.Selected.Filament != "" {
		if err := catalog.Select(ClassFilament, cf.Selected.Filament); err != nil {
			return nil, fmt.Errorf("invalid catalog selection: %w", err)
		}
	}

	return catalog, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *CatalogFile) {
	if cf.Version == "" {
		cf.Version = CatalogVersion
	}

	for _, entries := range [][]PresetEntry{cf.Printers, cf.Filaments} {
		for i := range entries {
			e := &entries[i]
			if e.Visible == nil {
				e.Visible = boolPtr(true)
			}

			if e.Compatible == nil {
				e.Compatible = boolPtr(true)
			}
		}
	}
}

func toDescriptors(entries []PresetEntry) []Descriptor {
	result := make([]Descriptor, 0, len(entries))

	for _, e := range entries {
		result = append(result, Descriptor{
			Name:         e.Name,
			Label:        e.Label,
			Vendor:       e.Vendor,
			Type:         e.Type,
			IsSystem:     e.System,
			IsVisible:    *e.Visible,
			IsCompatible: *e.Compatible,
			IsDefault:    e.Default,
		})
	}

	return result
}

func boolPtr(b bool) *bool {
	return &b
}
