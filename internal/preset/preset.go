package preset

import "import-planner/internal/common"

// DeviceClass selects which preset collection a query addresses.
type DeviceClass int

const (
	ClassPrinter DeviceClass = iota
	ClassFilament
)

// String returns a human-readable class name.
func (c DeviceClass) String() string {
	switch c {
	case ClassPrinter:
		return "printer"
	case ClassFilament:
		return "filament"
	default:
		return common.UnknownStr
	}
}

// Descriptor is a read-only snapshot of one installed preset.
type Descriptor struct {
	// Name is the internal preset name, unique within its class.
	Name string
	// Label is the display alias. Empty means the name is shown.
	Label string
	// Vendor is the raw vendor string from the preset config.
	Vendor string
	// Type is the material type for filaments (PLA, PETG, ...).
	Type string

	IsSystem     bool
	IsVisible    bool
	IsCompatible bool
	IsDefault    bool
}

// DisplayLabel returns the alias if set, otherwise the preset name.
func (d Descriptor) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}

	return d.Name
}

// Catalog is the query surface over installed presets.
type Catalog interface {
	// Presets returns every preset of the class in discovery order.
	Presets(class DeviceClass) []Descriptor
	// Selected returns the preset currently active for the class.
	Selected(class DeviceClass) (Descriptor, bool)
}

// Filter returns the presets accepted by keep, preserving order.
func Filter(presets []Descriptor, keep func(Descriptor) bool) []Descriptor {
	var result []Descriptor

	for _, p := range presets {
		if keep(p) {
			result = append(result, p)
		}
	}

	return result
}

// Find returns the preset with the given name.
func Find(presets []Descriptor, name string) (Descriptor, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}

	return Descriptor{}, false
}

// Offerable reports whether a filament preset may be offered for remapping:
// visible, compatible with the active printer and not a built-in default.
func Offerable(d Descriptor) bool {
	return d.IsVisible && d.IsCompatible && !d.IsDefault
}

// Reassignable reports whether a printer preset may replace the project printer.
func Reassignable(d Descriptor) bool {
	return d.IsVisible && !d.IsDefault
}
