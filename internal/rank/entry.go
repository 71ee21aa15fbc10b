package rank

import (
	"import-planner/internal/common"
	"import-planner/internal/preset"
)

// Group identifies the section a ranked entry belongs to.
type Group int

const (
	GroupUser Group = iota
	GroupSystem
)

// String returns the section header text.
func (g Group) String() string {
	switch g {
	case GroupUser:
		return "User presets"
	case GroupSystem:
		return "System presets"
	default:
		return common.UnknownStr
	}
}

// Entry is one row of a ranked list: a preset or a group marker.
type Entry struct {
	// Marker is true for non-selectable group headers.
	Marker bool
	// Group is the section of the entry.
	Group Group
	// Preset is the ranked preset. Zero for markers.
	Preset preset.Descriptor
	// Vendor is the normalized vendor of the preset.
	Vendor string
}

// Label returns the text shown for the entry.
func (e Entry) Label() string {
	if e.Marker {
		return e.Group.String()
	}

	return e.Preset.DisplayLabel()
}

// EntryList is a ranked list of presets interleaved with group markers.
type EntryList []Entry

// Presets returns the ranked presets with markers stripped.
func (l EntryList) Presets() []preset.Descriptor {
	result := make([]preset.Descriptor, 0, len(l))

	for _, e := range l {
		if !e.Marker {
			result = append(result, e.Preset)
		}
	}

	return result
}

// DefaultIndex returns the raw index of the first selectable entry,
// or -1 if the list has none.
func (l EntryList) DefaultIndex() int {
	for i, e := range l {
		if !e.Marker {
			return i
		}
	}

	return -1
}

// MarkerCount returns the number of group markers in the list.
func (l EntryList) MarkerCount() int {
	n := 0

	for _, e := range l {
		if e.Marker {
			n++
		}
	}

	return n
}

// PresetIndex converts a raw list index into an index into Presets() by
// subtracting the markers at or before it. Returns -1 for markers and
// out-of-range indices.
func (l EntryList) PresetIndex(raw int) int {
	if raw < 0 || raw >= len(l) || l[raw].Marker {
		return -1
	}

	markers := 0

	for i := 0; i <= raw; i++ {
		if l[i].Marker {
			markers++
		}
	}

	return raw - markers
}

// PresetAt returns the preset at a raw list index.
func (l EntryList) PresetAt(raw int) (preset.Descriptor, bool) {
	idx := l.PresetIndex(raw)
	if idx < 0 {
		return preset.Descriptor{}, false
	}

	return l.Presets()[idx], true
}

// IndexOf returns the raw index of the named preset, or -1.
func (l EntryList) IndexOf(name string) int {
	for i, e := range l {
		if !e.Marker && e.Preset.Name == name {
			return i
		}
	}

	return -1
}

// Labels returns the display text of every entry in order.
func (l EntryList) Labels() []string {
	result := make([]string, len(l))
	for i, e := range l {
		result[i] = e.Label()
	}

	return result
}

// Clone returns a copy that shares no backing array with l.
func (l EntryList) Clone() EntryList {
	if l == nil {
		return nil
	}

	result := make(EntryList, len(l))
	copy(result, l)

	return result
}

// First returns the first selectable preset.
func (l EntryList) First() (preset.Descriptor, bool) {
	return common.First(l.Presets())
}
