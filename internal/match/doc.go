// Package match scores preset names against each other so a project's
// filament preset names can suggest local presets for remapping.
//
// Key functions:
//   - NormalizeName: folds a preset name for fuzzy comparison
//   - Distance: edit distance between two names
//   - RankByName: orders presets by similarity to a target name
package match
