package rank

import (
	"sort"

	"import-planner/internal/preset"
)

// Rank orders filament presets for a selection list.
//
// User presets come first, sorted by label. System presets follow, sorted by
// vendor priority, then type priority, then label. The system sort is stable
// so presets tying on all three keys keep catalog order. Each non-empty group
// is preceded by a marker entry.
func Rank(presets []preset.Descriptor, cfg Config) EntryList {
	var user, system EntryList

	for _, p := range presets {
		e := Entry{Preset: p, Vendor: cfg.NormalizeVendor(p.Vendor)}
		if p.IsSystem {
			e.Group = GroupSystem
			system = append(system, e)
		} else {
			e.Group = GroupUser
			user = append(user, e)
		}
	}

	sort.SliceStable(user, func(i, j int) bool {
		return user[i].Preset.DisplayLabel() < user[j].Preset.DisplayLabel()
	})

	sort.SliceStable(system, func(i, j int) bool {
		a, b := system[i], system[j]

		// Vendor priority
		if ra, rb := cfg.vendorRank(a.Vendor), cfg.vendorRank(b.Vendor); ra != rb {
			return ra < rb
		}

		// Type priority
		if ra, rb := cfg.typeRank(a.Preset.Type), cfg.typeRank(b.Preset.Type); ra != rb {
			return ra < rb
		}

		return a.Preset.DisplayLabel() < b.Preset.DisplayLabel()
	})

	result := make(EntryList, 0, len(presets)+2)

	if len(user) > 0 {
		result = append(result, Entry{Marker: true, Group: GroupUser})
		result = append(result, user...)
	}

	if len(system) > 0 {
		result = append(result, Entry{Marker: true, Group: GroupSystem})
		result = append(result, system...)
	}

	return result
}
