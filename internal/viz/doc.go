// Package viz renders inlet designs for the terminal.
//
//   - [Report]: lipgloss panel with the performance summary
//   - [ContourPlot]: asciigraph rendering of the mirrored wall
//   - [MachPlot]: Mach number along the compression
//   - [SweepTable]: one row per sweep outcome
//
// # Themes
//
// Every renderer takes a [Theme]. [ThemeByName] falls back to the default
// theme for unknown names, so a bad flag value never fails a command.
package viz
