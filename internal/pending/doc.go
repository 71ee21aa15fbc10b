// Package pending implements the single-slot handoff between the import
// resolver and the loader that applies its result.
//
// A Channel holds at most one outstanding payload. Writes overwrite, never
// queue. The resolver receives the Writer half and the loader the Reader half;
// the loader consumes a payload exactly once with Take, or with Get followed
// by Clear.
package pending
