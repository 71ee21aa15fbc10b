// Package remap owns the selection rules for mapping project filament slots
// and the project printer onto locally installed presets.
//
// The interactive chooser renders what this package builds: one ranked
// candidate list per project slot with a default selection, and a ranked
// printer reassignment list. Selections made in the chooser are recorded on
// Slot values and folded back into a slot-to-preset remapping.
package remap
