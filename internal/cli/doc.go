// Package cli implements the command-line presentation layer: progress
// display while backends run, the comparison summary table, result output,
// and the mapping from terminal errors to exit codes.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Print* functions echo configuration or mode information before a run.
package cli
