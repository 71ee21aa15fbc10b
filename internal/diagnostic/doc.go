// Package diagnostic provides structured warnings and notes produced while
// planning a project import.
//
// Diagnostics never abort resolution. They are handed to the interactive
// chooser for display and logged by the resolver.
//
// Key capabilities:
//   - Pre-parse failure warnings
//   - Project printer not found warnings
//   - Filament catalog fallback notes
package diagnostic
