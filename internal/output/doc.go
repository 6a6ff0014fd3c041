// Package output renders object trees for the blox CLI.
//
// Rendering happens in two passes. A Printer walks an object.Object and
// produces Spans (text plus a Role); a ColorScheme then paints each span
// for the terminal. Tests can inspect spans or plain text without any
// terminal capability.
//
// # Tree layout
//
// Each field is written on its own line as "* Key: value", indented two
// spaces per nesting level:
//
//	* Group: Roblox
//	* Public: Yes
//	* Owner: {
//	  * Id: 1
//	  * Name: Roblox
//	}
//	* Tags: [a, b, ]
//
// Objects inside vectors are wrapped in parentheses and rendered at the
// vector's own level. Every vector element, including the last, is followed
// by a separator. A Description field holding an empty string renders as a
// blank line.
//
// # Formatters
//
// The tree is the default format. The same object can also be written as
// JSON or YAML (field order preserved) or as a table of flattened paths:
//
//	formatter := output.NewFormatter(output.FormatYAML)
//	formatter.Format(os.Stdout, obj)
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - the NO_COLOR environment variable
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - Markers and braces: Magenta, Bold
//   - Auto values: Blue, Bold
//   - Enum values: Black on violet
//   - Prices: Green, Bold
//   - Yes / No: Green / Red, Bold
//   - Vector elements: Yellow, Bold
package output
