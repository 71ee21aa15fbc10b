package remap

import (
	"import-planner/internal/match"
)

// Thresholds for suggesting a slot preset from the project's preset name.
const (
	SuggestMinScore = 0.8
	SuggestMinGap   = 0.05
)

// Suggest preselects, per slot, the local preset whose name clearly matches
// the filament preset the project used for that slot. projectNames is
// indexed by slot order. Slots without a confident match keep their
// selection. It returns the number of slots changed.
func Suggest(slots []Slot, projectNames []string) int {
	changed := 0

	for i := range slots {
		idx := slots[i].Index - 1
		if idx < 0 || idx >= len(projectNames) {
			continue
		}

		best, ok := match.RankByName(projectNames[idx], slots[i].Entries.Presets()).
			HighConfidence(SuggestMinScore, SuggestMinGap)
		if !ok {
			continue
		}

		before := slots[i].Selected
		if err := slots[i].SelectName(best.Preset.Name); err == nil && slots[i].Selected != before {
			changed++
		}
	}

	return changed
}
