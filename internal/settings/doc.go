// Package settings exposes the application options the import planner reads
// and writes: the project load behavior and the last interactive choice.
//
// The planner only talks to the Store interface. FileStore keeps options in
// a flat TOML file; MemoryStore backs the tests.
package settings
