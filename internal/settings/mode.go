package settings

import "import-planner/internal/common"

// Option keys.
const (
	// KeyLoadBehaviour holds the configured BehaviorMode string.
	KeyLoadBehaviour = "project_load_behaviour"
	// KeyImportAction holds the action chosen in the last interactive import
	// (1 = open as project, 2 = load geometry).
	KeyImportAction = "import_project_action"
)

// Recognized KeyLoadBehaviour values.
const (
	OptionLoadGeometry = "load_geometry"
	OptionAlwaysAsk    = "always_ask"
	OptionLoadAll      = "load_all"
)

// BehaviorMode is the policy for opening a project archive.
type BehaviorMode int

const (
	// OpenAsProject applies the project's embedded settings. It is the
	// default for absent and unrecognized option values.
	OpenAsProject BehaviorMode = iota
	// LoadGeometryOnly ignores the embedded settings.
	LoadGeometryOnly
	// AlwaysAsk lets the user decide per import.
	AlwaysAsk
)

// ParseBehaviorMode maps an option value to a mode. Anything other than the
// geometry and ask values, including the empty string, is OpenAsProject.
func ParseBehaviorMode(s string) BehaviorMode {
	switch s {
	case OptionLoadGeometry:
		return LoadGeometryOnly
	case OptionAlwaysAsk:
		return AlwaysAsk
	default:
		return OpenAsProject
	}
}

// String returns the option value for the mode.
func (m BehaviorMode) String() string {
	switch m {
	case OpenAsProject:
		return OptionLoadAll
	case LoadGeometryOnly:
		return OptionLoadGeometry
	case AlwaysAsk:
		return OptionAlwaysAsk
	default:
		return common.UnknownStr
	}
}

// ModeFrom reads the configured mode from store.
func ModeFrom(store Store) BehaviorMode {
	value, _ := store.String(KeyLoadBehaviour)
	return ParseBehaviorMode(value)
}
