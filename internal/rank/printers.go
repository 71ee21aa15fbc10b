package rank

import (
	"sort"

	"import-planner/internal/preset"
)

// PrinterList is a ranked printer reassignment list. Groups are carried as
// an entry attribute rather than marker rows, so every entry is selectable.
type PrinterList struct {
	Entries EntryList
	// Default is the index preselected for the user, or -1 when empty.
	Default int
}

// RankPrinters orders reassignable printers: user presets first, then system
// presets, each alphabetical by name. The selected printer is the default
// when it is in the list, otherwise the first entry.
func RankPrinters(printers []preset.Descriptor, selected string) PrinterList {
	var user, system EntryList

	for _, p := range preset.Filter(printers, preset.Reassignable) {
		if p.IsSystem {
			system = append(system, Entry{Group: GroupSystem, Preset: p, Vendor: p.Vendor})
		} else {
			user = append(user, Entry{Group: GroupUser, Preset: p, Vendor: p.Vendor})
		}
	}

	byName := func(l EntryList) func(i, j int) bool {
		return func(i, j int) bool { return l[i].Preset.Name < l[j].Preset.Name }
	}
	sort.SliceStable(user, byName(user))
	sort.SliceStable(system, byName(system))

	entries := append(user, system...)

	def := -1
	if len(entries) > 0 {
		def = 0
	}

	if idx := entries.IndexOf(selected); selected != "" && idx >= 0 {
		def = idx
	}

	return PrinterList{Entries: entries, Default: def}
}

// DefaultPreset returns the preselected printer.
func (p PrinterList) DefaultPreset() (preset.Descriptor, bool) {
	if p.Default < 0 || p.Default >= len(p.Entries) {
		return preset.Descriptor{}, false
	}

	return p.Entries[p.Default].Preset, true
}
