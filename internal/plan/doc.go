// Package plan decides how a project archive is loaded and what settings the
// loader applies.
//
// Resolution pipeline:
//  1. Pre-parse the archive → project.Info (failure is absorbed, not fatal)
//  2. Pick the behavior mode: the caller override, else the configured option
//  3. Run exactly one branch:
//     - LoadGeometryOnly: geometry with the project's slot count and colors
//     - AlwaysAsk: build ranked printer and filament choices, ask the Chooser,
//     persist the chosen action
//     - OpenAsProject: apply everything the project carries
//  4. Hand the complete ImportSettings to the loader through the pending slot
//  5. Report diagnostics (missing printer, catalog fallback, parse failure)
package plan
