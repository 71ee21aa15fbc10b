package remap

import (
	"errors"
	"fmt"
	"strconv"

	"import-planner/internal/diagnostic"
	"import-planner/internal/preset"
	"import-planner/internal/rank"
)

var (
	// ErrNotSelectable is returned when a selection targets a group marker
	// or lies outside the list.
	ErrNotSelectable = errors.New("entry is not selectable")
	// ErrUnknownPreset is returned when a selection names a preset that is
	// not among the slot candidates.
	ErrUnknownPreset = errors.New("preset is not a candidate")
)

// CollectFilaments returns the filament presets offered for remapping in
// catalog order. When the catalog has no offerable preset the currently
// selected filament is returned instead, unless it is a built-in default;
// fallback reports that case.
func CollectFilaments(catalog preset.Catalog) (candidates []preset.Descriptor, fallback bool) {
	candidates = preset.Filter(catalog.Presets(preset.ClassFilament), preset.Offerable)
	if len(candidates) > 0 {
		return candidates, false
	}

	current, ok := catalog.Selected(preset.ClassFilament)
	if !ok || current.IsDefault {
		return nil, false
	}

	return []preset.Descriptor{current}, true
}

// Negotiator builds slot and printer choices for one import.
type Negotiator struct {
	catalog preset.Catalog
	ranker  *rank.Cache
}

// NewNegotiator creates a negotiator ranking through ranker.
func NewNegotiator(catalog preset.Catalog, ranker *rank.Cache) *Negotiator {
	return &Negotiator{catalog: catalog, ranker: ranker}
}

// Slots returns one ranked candidate list per project color, numbered from 1,
// each preselecting its first preset.
func (n *Negotiator) Slots(colors []string, diags *diagnostic.Diagnostics) []Slot {
	candidates, fallback := CollectFilaments(n.catalog)

	switch {
	case fallback:
		diags.AddInfo(diagnostic.CodeFilamentFallback,
			"no compatible filament presets, offering the selected filament",
			diagnostic.OnPreset(candidates[0].Name))
	case len(candidates) == 0 && len(colors) > 0:
		diags.AddWarning(diagnostic.CodeNoFilaments,
			"no filament presets available for remapping", diagnostic.Subject{})
	}

	slots := make([]Slot, 0, len(colors))

	for i, hex := range colors {
		entries := n.ranker.Rank(candidates)
		slots = append(slots, Slot{
			Index:    i + 1,
			RawColor: hex,
			Color:    ParseColor(hex),
			Entries:  entries,
			Selected: entries.DefaultIndex(),
		})
	}

	return slots
}

// PrinterChoices ranks the printers the project may be reassigned to and
// warns when the project printer is not installed locally.
func (n *Negotiator) PrinterChoices(projectPrinter string, diags *diagnostic.Diagnostics) rank.PrinterList {
	CheckProjectPrinter(n.catalog, projectPrinter, diags)

	var selected string
	if current, ok := n.catalog.Selected(preset.ClassPrinter); ok {
		selected = current.Name
	}

	return rank.RankPrinters(n.catalog.Presets(preset.ClassPrinter), selected)
}

// CheckProjectPrinter warns when a non-empty project printer name matches no
// installed printer preset, visible or not. It reports whether it matched.
func CheckProjectPrinter(catalog preset.Catalog, name string, diags *diagnostic.Diagnostics) bool {
	if name == "" {
		return true
	}

	if _, found := preset.Find(catalog.Presets(preset.ClassPrinter), name); found {
		return true
	}

	diags.AddWarning(diagnostic.CodePrinterNotFound,
		fmt.Sprintf("project printer '%s' not found", name), diagnostic.OnPreset(name))

	return false
}

// Slot is the remapping choice for one project filament.
type Slot struct {
	// Index is the 1-based project slot.
	Index int
	// RawColor is the color string from the project.
	RawColor string
	// Color is the decoded swatch color.
	Color Color
	// Entries are the ranked candidates including group markers.
	Entries rank.EntryList
	// Selected is the raw index of the chosen entry, or -1.
	Selected int
}

// Select chooses the entry at a raw list index.
func (s *Slot) Select(raw int) error {
	if s.Entries.PresetIndex(raw) < 0 {
		return fmt.Errorf("slot %d index %d: %w", s.Index, raw, ErrNotSelectable)
	}

	s.Selected = raw

	return nil
}

// SelectName chooses the candidate with the given preset name.
func (s *Slot) SelectName(name string) error {
	raw := s.Entries.IndexOf(name)
	if raw < 0 {
		return fmt.Errorf("slot %d preset %q: %w", s.Index, name, ErrUnknownPreset)
	}

	s.Selected = raw

	return nil
}

// SelectedPreset returns the chosen preset, if any.
func (s Slot) SelectedPreset() (preset.Descriptor, bool) {
	return s.Entries.PresetAt(s.Selected)
}

// Label returns a short description of the slot for display and logs.
func (s Slot) Label() string {
	return "slot " + strconv.Itoa(s.Index) + " " + s.Color.Hex()
}

// Remapping folds slot selections into a 1-based slot to preset name map.
// Slots without a selection are omitted.
func Remapping(slots []Slot) map[int]string {
	result := make(map[int]string, len(slots))

	for _, s := range slots {
		if p, ok := s.SelectedPreset(); ok {
			result[s.Index] = p.Name
		}
	}

	return result
}
