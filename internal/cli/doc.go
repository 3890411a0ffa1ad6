// Package cli holds the presentation helpers shared by the prtl commands.
//
// Lister renders a portal config in one of the supported output formats:
//   - text: one decorated line per portal, the default tag marked
//   - table: a bordered go-pretty table
//   - plain: a borderless table suited to grep, awk and cut
//   - json and yaml: a mapping of tag to path for scripts
//
// FormatError, FormatSuccess and FormatWarning give status messages a
// consistent look. Colors are dropped automatically when the output is
// not a terminal.
package cli
