// Package preset describes installed printer and filament presets as seen by
// the import planner.
//
// The planner never owns presets. It reads immutable Descriptor snapshots
// through the Catalog interface, which the host application implements over
// its preset storage. MemoryCatalog and the YAML catalog loader back the CLI
// and the tests.
package preset
