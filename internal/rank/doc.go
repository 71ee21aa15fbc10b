// Package rank orders preset lists for presentation and default selection.
//
// Key functions:
//   - NormalizeVendor: collapses vendor aliases before comparison
//   - Rank: groups filament presets into user/system sections and orders
//     system presets by vendor priority, type priority and label
//   - RankPrinters: orders printer presets for reassignment
//   - Cache: memoizes Rank results for repeated identical inputs
//
// Ranked lists interleave non-selectable group markers with presets. EntryList
// converts raw list indices back into preset positions.
package rank
